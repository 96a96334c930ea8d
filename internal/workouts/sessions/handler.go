package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workouts"
	"github.com/2beens/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionsService interface {
	SaveWorkout(ctx context.Context, userID string, workout workouts.Workout, superset bool) (*Session, bool, error)
	Get(ctx context.Context, userID, date string) (*Session, error)
	ListAll(ctx context.Context, userID string) ([]Session, error)
	DeleteExercise(ctx context.Context, userID, date string, exerciseID int) error
	DeleteSession(ctx context.Context, userID, date string) error
	DeleteAll(ctx context.Context, userID string) (int, error)
}

type SaveWorkoutRequest struct {
	workouts.Workout
	Superset bool `json:"superset"`
}

type SaveWorkoutResponse struct {
	Session *Session `json:"session"`
	Created bool     `json:"created"`
}

type ListSessionsResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type DeleteExerciseResponse struct {
	DeletedID int `json:"deletedId"`
}

type DeleteAllResponse struct {
	Deleted int `json:"deleted"`
}

type Handler struct {
	service       sessionsService
	defaultUserID string
}

func NewHandler(service sessionsService, defaultUserID string) *Handler {
	return &Handler{
		service:       service,
		defaultUserID: defaultUserID,
	}
}

func (handler *Handler) userID(r *http.Request) string {
	if u := r.URL.Query().Get("user"); u != "" {
		return u
	}
	return handler.defaultUserID
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.save")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SaveWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("save workout, unmarshal json params: %s", err)
		http.Error(w, "save workout failed", http.StatusBadRequest)
		return
	}

	session, created, err := handler.service.SaveWorkout(ctx, handler.userID(r), req.Workout, req.Superset)
	if err != nil {
		if errors.Is(err, ErrInvalidWorkout) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to save workout [%s]: %s", req.Date, err)
		http.Error(w, "error, failed to save workout", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(SaveWorkoutResponse{
		Session: session,
		Created: created,
	})
	if err != nil {
		log.Errorf("failed to marshal saved session: %s", err)
		http.Error(w, "error, failed to save workout", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	log.Debugf("workout saved: [%s] session %d", session.Date, session.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if date == "" {
		http.Error(w, "error, date empty", http.StatusBadRequest)
		return
	}

	session, err := handler.service.Get(ctx, handler.userID(r), date)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get session [%s]: %s", date, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal session: %s", err)
		http.Error(w, "failed to marshal session", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	sessions, err := handler.service.ListAll(ctx, handler.userID(r))
	if err != nil {
		log.Errorf("list sessions error: %s", err)
		http.Error(w, "failed to get sessions", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListSessionsResponse{
		Sessions: sessions,
		Total:    len(sessions),
	})
	if err != nil {
		log.Errorf("marshal sessions error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete-exercise")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if date == "" {
		http.Error(w, "error, date empty", http.StatusBadRequest)
		return
	}
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteExercise(ctx, handler.userID(r), date, id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			log.Debugf("exercise %d not found in session [%s]", id, date)
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete exercise %d from [%s]: %s", id, date, err)
		http.Error(w, "exercise not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteExerciseResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete-session")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if date == "" {
		http.Error(w, "error, date empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteSession(ctx, handler.userID(r), date); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete session [%s]: %s", date, err)
		http.Error(w, "session not deleted", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete-all")
	defer span.End()

	deleted, err := handler.service.DeleteAll(ctx, handler.userID(r))
	if err != nil {
		log.Errorf("failed to delete all sessions: %s", err)
		http.Error(w, "sessions not deleted", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteAllResponse{
		Deleted: deleted,
	})
	if err != nil {
		log.Errorf("failed to marshal delete all response: %s", err)
		http.Error(w, "failed to marshal delete all response", http.StatusInternalServerError)
		return
	}

	log.Debugf("all sessions deleted: %d", deleted)
	pkg.WriteJSONResponseOK(w, string(respJson))
}
