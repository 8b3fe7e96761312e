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

// EntryTranslationsGet serves an entry's title and body in a requested
// language, memoized per (entry, language).
type EntryTranslationsGet struct {
	Fetcher   datasources.EntryFetcher
	Translate *command.TranslateEntry
}

func (c EntryTranslationsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["entry_id"]
	lang := vars["lang"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("entry_id", id, "lang", lang))

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

	fields, err := c.Translate.Execute(ctx, command.TranslateEntryRequest{
		EntryID:  id,
		Language: lang,
		Fields: domain.TranslatedFields{
			domain.TranslationFieldTitle: entry.Title,
			domain.TranslationFieldBody:  entry.Body,
		},
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to translate entry", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(fields); err != nil {
		logger.ErrorContext(ctx, "unable to write translations to response", "error", err)
	}
}
