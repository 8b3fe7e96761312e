package controller

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wanderjot/journal-backend/internal/command"
	"github.com/wanderjot/journal-backend/internal/datasources"
	"github.com/wanderjot/journal-backend/internal/datasources/genai"
	"github.com/wanderjot/journal-backend/internal/domain"
)

// EntrySignalSet records a view/like/save signal against an entry and
// folds it into the caller's interest vector. Personalization being
// unavailable never fails the interaction itself.
type EntrySignalSet struct {
	RecordInterest *command.RecordInterest
}

func (c EntrySignalSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["entry_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("entry_id", id))

	kind, err := domain.ParseSignalKind(vars["kind"])
	if err != nil {
		logger.ErrorContext(ctx, "invalid signal kind", "kind", vars["kind"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_, err = c.RecordInterest.Execute(ctx, command.RecordInterestRequest{
		UserID:  domain.UserIDFromContext(r.Context()),
		EntryID: id,
		Kind:    kind,
	})
	switch {
	case errors.Is(err, datasources.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		return
	case errors.Is(err, genai.ErrRateLimited):
		// Signal lost to self-throttling; the interaction still stands.
		logger.WarnContext(ctx, "interest update deferred by rate limit")
	case err != nil:
		logger.ErrorContext(ctx, "unable to record interest signal", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
