package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wanderjot/journal-backend/internal/command"
	"github.com/wanderjot/journal-backend/internal/datasources"
	"github.com/wanderjot/journal-backend/internal/datasources/genai"
	"github.com/wanderjot/journal-backend/internal/domain"
)

// EntryInsightGet serves a model-generated travel insight for an entry.
type EntryInsightGet struct {
	Insight *command.GenerateEntryInsight
}

func (c EntryInsightGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["entry_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("entry_id", id))

	insight, err := c.Insight.Execute(ctx, command.EntryInsightRequest{EntryID: id})
	var malformed *genai.MalformedResponseError
	switch {
	case errors.Is(err, datasources.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		return
	case errors.Is(err, genai.ErrRateLimited):
		w.WriteHeader(http.StatusTooManyRequests)
		return
	case errors.As(err, &malformed):
		logger.ErrorContext(ctx, "model returned malformed insight", "error", err)
		w.WriteHeader(http.StatusBadGateway)
		return
	case err != nil:
		logger.ErrorContext(ctx, "unable to generate entry insight", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(insight); err != nil {
		logger.ErrorContext(ctx, "unable to write insight to response", "error", err)
	}
}
