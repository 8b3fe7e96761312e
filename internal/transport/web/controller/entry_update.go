package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wanderjot/journal-backend/internal/command"
	"github.com/wanderjot/journal-backend/internal/datasources"
	"github.com/wanderjot/journal-backend/internal/domain"
)

// EntryUpdate applies a partial edit to an entry. Only the author may
// edit; text edits also refresh the entry's derived data.
type EntryUpdate struct {
	Fetcher datasources.EntryFetcher
	Update  *command.UpdateEntry
}

type entryUpdateBody struct {
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	Region *string `json:"region"`
	Public *bool   `json:"public"`
}

func (c EntryUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["entry_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("entry_id", id))

	var body entryUpdateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode entry update", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entry, err := c.Fetcher.FetchEntry(ctx, id)
	if errors.Is(err, datasources.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch entry", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if entry.AuthorID != domain.UserIDFromContext(r.Context()) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	_, err = c.Update.Execute(ctx, command.UpdateEntryRequest{
		EntryID: id,
		Update: domain.EntryUpdate{
			Title:  body.Title,
			Body:   body.Body,
			Region: body.Region,
			Public: body.Public,
		},
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to update entry", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
