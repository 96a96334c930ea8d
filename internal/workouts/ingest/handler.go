package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/sheets"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workouts"
	"github.com/2beens/liftlog/pkg"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=ingest_test

type importRunner interface {
	Run(ctx context.Context, userID string, source workouts.Source) (*Result, error)
}

// HandlerParams carries the spreadsheet coordinates both source layouts
// live at.
type HandlerParams struct {
	Runner          importRunner
	Getter          workouts.RangeGetter
	SpreadsheetID   string
	GridRange       string
	LogRange        string
	GridStartMonday time.Time
	DefaultUserID   string
}

type Handler struct {
	runner          importRunner
	getter          workouts.RangeGetter
	spreadsheetID   string
	gridRange       string
	logRange        string
	gridStartMonday time.Time
	defaultUserID   string
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		runner:          params.Runner,
		getter:          params.Getter,
		spreadsheetID:   params.SpreadsheetID,
		gridRange:       params.GridRange,
		logRange:        params.LogRange,
		gridStartMonday: params.GridStartMonday,
		defaultUserID:   params.DefaultUserID,
	}
}

func (handler *Handler) userID(r *http.Request) string {
	if u := r.URL.Query().Get("user"); u != "" {
		return u
	}
	return handler.defaultUserID
}

// HandleImport pulls the whole spreadsheet into the session store. The
// source query param picks the layout: "grid" for the weekly column grid,
// "log" for the flat per-date log (the default).
func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ingest.import")
	defer span.End()

	sourceName := r.URL.Query().Get("source")
	if sourceName == "" {
		sourceName = "log"
	}
	span.SetAttributes(attribute.String("import.source", sourceName))

	var source workouts.Source
	switch sourceName {
	case "grid":
		source = workouts.NewGridSource(
			handler.getter, handler.spreadsheetID, handler.gridRange, handler.gridStartMonday,
		)
	case "log":
		source = workouts.NewLogbookSource(
			handler.getter, handler.spreadsheetID, handler.logRange,
		)
	default:
		http.Error(w, "unknown source, use grid or log", http.StatusBadRequest)
		return
	}

	result, err := handler.runner.Run(ctx, handler.userID(r), source)
	if err != nil {
		var validationErr *workouts.ValidationError
		switch {
		case errors.Is(err, sheets.ErrReauthRequired):
			log.Warnf("import failed, google reauth required: %s", err)
			http.Error(w, "spreadsheet access expired, reauthorize", http.StatusUnauthorized)
		case errors.As(err, &validationErr):
			log.Errorf("import failed, source data invalid: %s", err)
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
		default:
			log.Errorf("import failed: %s", err)
			http.Error(w, "import failed", http.StatusInternalServerError)
		}
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal import result: %s", err)
		http.Error(w, "failed to marshal import result", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}
