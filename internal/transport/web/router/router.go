package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wanderjot/journal-backend/internal/command"
	"github.com/wanderjot/journal-backend/internal/datasources"
	"github.com/wanderjot/journal-backend/internal/transport/web/controller"
)

type Commands struct {
	RecordInterest *command.RecordInterest
	TranslateEntry *command.TranslateEntry
	UpdateEntry    *command.UpdateEntry
	EntryInsight   *command.GenerateEntryInsight
}

func MakeRouter(
	repo datasources.JournalRepository,
	commands Commands,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	entryCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/entries/{entry_id}", controller.EntryGet{
		Fetcher:     repo,
		CacheMaxAge: entryCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/entries/{entry_id}", requireAuthMiddleware(controller.EntryUpdate{
		Fetcher: repo,
		Update:  commands.UpdateEntry,
	})).Methods(http.MethodPatch, http.MethodOptions)

	r.Handle("/v1/entries/{entry_id}/signal/{kind}", requireAuthMiddleware(controller.EntrySignalSet{
		RecordInterest: commands.RecordInterest,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/entries/{entry_id}/translations/{lang}", controller.EntryTranslationsGet{
		Fetcher:   repo,
		Translate: commands.TranslateEntry,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/entries/{entry_id}/insight", controller.EntryInsightGet{
		Insight: commands.EntryInsight,
	}).Methods(http.MethodGet, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Entries:         repo,
			CacheMaxAge:     entryCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
