package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type entriesRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, userID string, id int) error
	List(ctx context.Context, userID string) ([]Entry, error)
	Lookup(ctx context.Context, userID, name string) (string, bool, error)
}

type suggestionsSource interface {
	Get(ctx context.Context, userID string) ([]string, error)
	Invalidate(ctx context.Context, userID string)
}

type ListEntriesResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type DeleteEntryResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateEntryResponse struct {
	UpdatedID int `json:"updatedId"`
}

type SuggestionsResponse struct {
	Names []string `json:"names"`
}

type Handler struct {
	repo          entriesRepo
	suggestions   suggestionsSource
	defaultUserID string
}

func NewHandler(repo entriesRepo, suggestions suggestionsSource, defaultUserID string) *Handler {
	return &Handler{
		repo:          repo,
		suggestions:   suggestions,
		defaultUserID: defaultUserID,
	}
}

func (handler *Handler) userID(r *http.Request) string {
	if u := r.URL.Query().Get("user"); u != "" {
		return u
	}
	return handler.defaultUserID
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("new exercise entry, unmarshal json params: %s", err)
		http.Error(w, "add exercise entry failed", http.StatusBadRequest)
		return
	}

	if entry.Name == "" || entry.MuscleGroup == "" {
		http.Error(w, "error, name or muscle group empty", http.StatusBadRequest)
		return
	}
	entry.UserID = handler.userID(r)

	addedEntry, err := handler.repo.Add(ctx, entry)
	if err != nil {
		if errors.Is(err, ErrEntryExists) {
			http.Error(w, "exercise entry already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add exercise entry [%s]: %s", entry.Name, err)
		http.Error(w, "error, failed to add exercise entry", http.StatusInternalServerError)
		return
	}

	handler.suggestions.Invalidate(ctx, entry.UserID)

	addedEntryJson, err := json.Marshal(addedEntry)
	if err != nil {
		log.Errorf("failed to marshal exercise entry: %s", err)
		http.Error(w, "error, failed to add exercise entry", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise entry added: %s", addedEntryJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedEntryJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("update exercise entry, unmarshal json params: %s", err)
		http.Error(w, "update exercise entry failed", http.StatusBadRequest)
		return
	}

	if entry.Name == "" || entry.MuscleGroup == "" {
		http.Error(w, "error, name or muscle group empty", http.StatusBadRequest)
		return
	}
	entry.UserID = handler.userID(r)

	if err := handler.repo.Update(ctx, &entry); err != nil {
		switch {
		case errors.Is(err, ErrEntryNotFound):
			http.Error(w, "exercise entry not found", http.StatusNotFound)
		case errors.Is(err, ErrEntryExists):
			http.Error(w, "exercise entry already exists", http.StatusConflict)
		default:
			log.Errorf("failed to update exercise entry %d: %s", entry.ID, err)
			http.Error(w, "error, failed to update exercise entry", http.StatusInternalServerError)
		}
		return
	}

	handler.suggestions.Invalidate(ctx, entry.UserID)

	updateRespJson, err := json.Marshal(UpdateEntryResponse{
		UpdatedID: entry.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	vars := mux.Vars(r)
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

	userID := handler.userID(r)
	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "exercise entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete exercise entry %d: %s", id, err)
		http.Error(w, "exercise entry not deleted", http.StatusInternalServerError)
		return
	}

	handler.suggestions.Invalidate(ctx, userID)

	deleteRespJson, err := json.Marshal(DeleteEntryResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	entries, err := handler.repo.List(ctx, handler.userID(r))
	if err != nil {
		log.Errorf("list exercise entries error: %s", err)
		http.Error(w, "failed to get exercise entries", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListEntriesResponse{
		Entries: entries,
		Total:   len(entries),
	})
	if err != nil {
		log.Errorf("marshal exercise entries error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.suggestions")
	defer span.End()

	names, err := handler.suggestions.Get(ctx, handler.userID(r))
	if err != nil {
		log.Errorf("failed to get suggestions: %s", err)
		http.Error(w, "failed to get suggestions", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(SuggestionsResponse{
		Names: names,
	})
	if err != nil {
		log.Errorf("failed to marshal suggestions: %s", err)
		http.Error(w, "failed to marshal suggestions", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
