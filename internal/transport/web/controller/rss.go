package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/feeds"

	"github.com/wanderjot/journal-backend/internal/datasources"
	"github.com/wanderjot/journal-backend/internal/domain"
)

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Entries         datasources.PublicEntryLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Wanderjot Public Journal",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of newly published public travel journal entries",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	limit, err := feedLimitFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse feed limit in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entries, err := c.Entries.ListLatestPublicEntries(r.Context(), limit)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch entries for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, e := range entries {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          e.ID,
			IsPermaLink: "false",
			Title:       e.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/v1/entries/%s", c.FeedHostname, e.ID)},
			Description: e.Body,
			Created:     e.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func feedLimitFromQuery(q url.Values) (int, error) {
	if !q.Has("limit") {
		return 100, nil
	}

	limit, err := strconv.ParseInt(q.Get("limit"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse limit from query: %w", err)
	}
	if limit < 1 {
		return 0, fmt.Errorf("invalid limit value [%d]", limit)
	}
	if limitCap := int64(200); limit > limitCap {
		return 0, fmt.Errorf("limit [%d] exceeds cap [%d]", limit, limitCap)
	}

	return int(limit), nil
}
