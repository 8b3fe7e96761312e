package domain

import (
	"strings"
	"time"
)

// JournalEntry is a single piece of user-submitted travel content.
// Embedding is nil until the first personalization read computes it.
type JournalEntry struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Region      string    `json:"region"`
	Public      bool      `json:"public"`
	Embedding   []float32 `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmbeddingInput builds the text sent to the embedding model:
// title, region and body in that order, newline-joined, blanks omitted.
func (e JournalEntry) EmbeddingInput() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{e.Title, e.Region, e.Body} {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// EntryUpdate carries the editable fields of an entry. Nil fields are
// left unchanged.
type EntryUpdate struct {
	Title  *string
	Body   *string
	Region *string
	Public *bool
}

// Empty reports whether the update would change nothing.
func (u EntryUpdate) Empty() bool {
	return u.Title == nil && u.Body == nil && u.Region == nil && u.Public == nil
}

// TouchesText reports whether the update changes any of the fields that
// feed the embedding input and the translation cache.
func (u EntryUpdate) TouchesText() bool {
	return u.Title != nil || u.Body != nil || u.Region != nil
}
