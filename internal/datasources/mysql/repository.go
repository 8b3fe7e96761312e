package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/wanderjot/journal-backend/internal/datasources"
	"github.com/wanderjot/journal-backend/internal/domain"
)

var _ datasources.JournalRepository = (*Repository)(nil)

// Repository stores journal entries, user interest vectors and cached
// translations in MySQL.
type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchEntry(ctx context.Context, entryID string) (domain.JournalEntry, error) {
	const query = `SELECT id, author_id, title, body, region, public, embedding, created_at, updated_at
		FROM journal_entries WHERE id = ?`

	var entry domain.JournalEntry
	var embedding []byte
	err := r.db.QueryRowContext(ctx, query, entryID).Scan(
		&entry.ID,
		&entry.AuthorID,
		&entry.Title,
		&entry.Body,
		&entry.Region,
		&entry.Public,
		&embedding,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.JournalEntry{}, fmt.Errorf("fetching entry [%s]: %w", entryID, datasources.ErrNotFound)
	}
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("fetching entry [%s]: %w", entryID, err)
	}

	if embedding != nil {
		entry.Embedding, err = bytesToFloat32Slice(embedding)
		if err != nil {
			return domain.JournalEntry{}, fmt.Errorf("decoding entry embedding: %w", err)
		}
	}

	return entry, nil
}

// UpdateEntry merge-writes an edit. A text edit clears the stored
// embedding; the next personalization read recomputes it.
func (r *Repository) UpdateEntry(ctx context.Context, entryID string, update domain.EntryUpdate) error {
	if update.Empty() {
		return nil
	}

	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update("journal_entries")

	assignments := []string{ub.Assign("updated_at", time.Now())}
	if update.Title != nil {
		assignments = append(assignments, ub.Assign("title", *update.Title))
	}
	if update.Body != nil {
		assignments = append(assignments, ub.Assign("body", *update.Body))
	}
	if update.Region != nil {
		assignments = append(assignments, ub.Assign("region", *update.Region))
	}
	if update.Public != nil {
		assignments = append(assignments, ub.Assign("public", *update.Public))
	}
	if update.TouchesText() {
		assignments = append(assignments, "embedding = NULL")
	}

	ub.Set(assignments...)
	ub.Where(ub.Equal("id", entryID))

	query, args := ub.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating entry [%s]: %w", entryID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking entry update [%s]: %w", entryID, err)
	}
	if affected == 0 {
		return fmt.Errorf("updating entry [%s]: %w", entryID, datasources.ErrNotFound)
	}

	return nil
}

func (r *Repository) PatchEntryEmbedding(ctx context.Context, entryID string, embedding []float32) error {
	const query = `UPDATE journal_entries SET embedding = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, float32SliceToBytes(embedding), entryID)
	if err != nil {
		return fmt.Errorf("patching embedding of entry [%s]: %w", entryID, err)
	}

	return nil
}

func (r *Repository) ListLatestPublicEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	sb := sqlbuilder.Select("id", "author_id", "title", "body", "region", "public", "created_at", "updated_at")
	sb.From("journal_entries")
	sb.Where(sb.Equal("public", true))
	sb.OrderBy("created_at").Desc()
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing public entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var entry domain.JournalEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.AuthorID,
			&entry.Title,
			&entry.Body,
			&entry.Region,
			&entry.Public,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning public entries: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating public entries: %w", err)
	}

	return entries, nil
}

func (r *Repository) GetUserVector(ctx context.Context, userID string) (*domain.InterestVector, error) {
	const query = `SELECT interest_vector, last_signal, vector_updated_at
		FROM user_profiles WHERE user_id = ?`

	var blob []byte
	var lastSignal sql.NullString
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&blob, &lastSignal, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting vector of user [%s]: %w", userID, err)
	}

	// A profile row can exist before the user's first signal.
	if blob == nil {
		return nil, nil
	}

	vector, err := bytesToFloat32Slice(blob)
	if err != nil {
		return nil, fmt.Errorf("decoding vector of user [%s]: %w", userID, err)
	}

	return &domain.InterestVector{
		Vector:     vector,
		LastSignal: domain.SignalKind(lastSignal.String),
		UpdatedAt:  updatedAt.Time,
	}, nil
}

// UpsertUserVector writes the vector with merge semantics: a concurrent
// first-time signal never clobbers unrelated profile columns.
func (r *Repository) UpsertUserVector(ctx context.Context, userID string, vector domain.InterestVector) error {
	const query = `INSERT INTO user_profiles (user_id, interest_vector, last_signal, vector_updated_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			interest_vector = VALUES(interest_vector),
			last_signal = VALUES(last_signal),
			vector_updated_at = VALUES(vector_updated_at)`

	_, err := r.db.ExecContext(ctx, query,
		userID,
		float32SliceToBytes(vector.Vector),
		string(vector.LastSignal),
		vector.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting vector of user [%s]: %w", userID, err)
	}

	return nil
}

func (r *Repository) GetTranslations(ctx context.Context, entryID, lang string) (domain.TranslatedFields, error) {
	const query = `SELECT field, translated_text FROM entry_translations
		WHERE entry_id = ? AND lang = ?`

	rows, err := r.db.QueryContext(ctx, query, entryID, lang)
	if err != nil {
		return nil, fmt.Errorf("reading translations of entry [%s]: %w", entryID, err)
	}
	defer func() { _ = rows.Close() }()

	fields := domain.TranslatedFields{}
	for rows.Next() {
		var field, text string
		if err := rows.Scan(&field, &text); err != nil {
			return nil, fmt.Errorf("scanning translations of entry [%s]: %w", entryID, err)
		}
		fields[field] = text
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating translations of entry [%s]: %w", entryID, err)
	}

	return fields, nil
}

// PutTranslations is idempotent; concurrent fills of the same key race
// benignly and the last writer wins.
func (r *Repository) PutTranslations(ctx context.Context, entryID, lang string, fields domain.TranslatedFields) error {
	const query = `INSERT INTO entry_translations (entry_id, lang, field, translated_text)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE translated_text = VALUES(translated_text)`

	for field, text := range fields {
		if _, err := r.db.ExecContext(ctx, query, entryID, lang, field, text); err != nil {
			return fmt.Errorf("writing translation of entry [%s] field [%s]: %w", entryID, field, err)
		}
	}

	return nil
}

func (r *Repository) DeleteTranslations(ctx context.Context, entryID string) error {
	const query = `DELETE FROM entry_translations WHERE entry_id = ?`

	if _, err := r.db.ExecContext(ctx, query, entryID); err != nil {
		return fmt.Errorf("deleting translations of entry [%s]: %w", entryID, err)
	}

	return nil
}
