package stats

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"
)

type BestSetsResponse struct {
	BestSets []BestSet `json:"bestSets"`
	Window   Window    `json:"window"`
}

type TrendResponse struct {
	ExerciseName string       `json:"exerciseName"`
	Points       []TrendPoint `json:"points"`
}

type WeeklyVolumeResponse struct {
	Weeks []WeekVolume `json:"weeks"`
}

type Handler struct {
	analyzer      *Analyzer
	defaultUserID string
}

func NewHandler(analyzer *Analyzer, defaultUserID string) *Handler {
	return &Handler{
		analyzer:      analyzer,
		defaultUserID: defaultUserID,
	}
}

func (handler *Handler) userID(r *http.Request) string {
	if u := r.URL.Query().Get("user"); u != "" {
		return u
	}
	return handler.defaultUserID
}

func (handler *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.prs")
	defer span.End()

	records, err := handler.analyzer.PersonalRecords(ctx, handler.userID(r))
	if err != nil {
		log.Errorf("failed to get personal records: %s", err)
		http.Error(w, "failed to get personal records", http.StatusInternalServerError)
		return
	}

	recordsJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("failed to marshal personal records: %s", err)
		http.Error(w, "failed to marshal personal records", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordsJson, http.StatusOK)
}

func (handler *Handler) HandleBestSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.bestsets")
	defer span.End()

	var window Window
	var err error
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		window.Days, err = strconv.Atoi(daysStr)
		if err != nil {
			http.Error(w, "failed to parse days param", http.StatusBadRequest)
			return
		}
	}
	if weeksStr := r.URL.Query().Get("weeks"); weeksStr != "" {
		window.Weeks, err = strconv.Atoi(weeksStr)
		if err != nil {
			http.Error(w, "failed to parse weeks param", http.StatusBadRequest)
			return
		}
	}
	if window.Days < 0 || window.Weeks < 0 {
		http.Error(w, "window must not be negative", http.StatusBadRequest)
		return
	}

	bestSets, err := handler.analyzer.BestSets(ctx, handler.userID(r), window)
	if err != nil {
		log.Errorf("failed to get best sets: %s", err)
		http.Error(w, "failed to get best sets", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(BestSetsResponse{
		BestSets: bestSets,
		Window:   window,
	})
	if err != nil {
		log.Errorf("failed to marshal best sets: %s", err)
		http.Error(w, "failed to marshal best sets", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.trend")
	defer span.End()

	vars := mux.Vars(r)
	exerciseName := vars["exercise"]
	if exerciseName == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	points, err := handler.analyzer.TrendSeries(ctx, handler.userID(r), exerciseName)
	if err != nil {
		log.Errorf("failed to get trend for [%s]: %s", exerciseName, err)
		http.Error(w, "failed to get trend", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(TrendResponse{
		ExerciseName: exerciseName,
		Points:       points,
	})
	if err != nil {
		log.Errorf("failed to marshal trend: %s", err)
		http.Error(w, "failed to marshal trend", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.weekly-volume")
	defer span.End()

	weeks, err := handler.analyzer.WeeklyVolume(ctx, handler.userID(r))
	if err != nil {
		log.Errorf("failed to get weekly volume: %s", err)
		http.Error(w, "failed to get weekly volume", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(WeeklyVolumeResponse{
		Weeks: weeks,
	})
	if err != nil {
		log.Errorf("failed to marshal weekly volume: %s", err)
		http.Error(w, "failed to marshal weekly volume", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.summary")
	defer span.End()

	summary, err := handler.analyzer.GetSummary(ctx, handler.userID(r))
	if err != nil {
		log.Errorf("failed to get summary: %s", err)
		http.Error(w, "failed to get summary", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal summary: %s", err)
		http.Error(w, "failed to marshal summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}
