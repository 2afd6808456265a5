// Package postgres implements the storage contracts on PostgreSQL via pgx.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

const entryColumns = `id, user_uid, title, content, mood, mood_emoji, tags, attachments, is_voice_note, word_count, ai_insights, created_at, updated_at`

// EntryStore persists journal entries in the entries table.
type EntryStore struct {
	pool *pgxpool.Pool
}

// NewEntryStore builds an EntryStore over the given connection pool.
func NewEntryStore(pool *pgxpool.Pool) *EntryStore {
	return &EntryStore{pool: pool}
}

func (s *EntryStore) ListEntries(ctx context.Context, userID string, limit, offset int) ([]journal.Entry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM entries
		WHERE user_uid = $1
		ORDER BY created_at DESC
	`, entryColumns)
	args := []interface{}{userID}
	if limit > 0 {
		query += " LIMIT $2 OFFSET $3"
		args = append(args, limit, offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (s *EntryStore) GetEntry(ctx context.Context, id, userID string) (*journal.Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM entries WHERE id = $1 AND user_uid = $2`, entryColumns)
	entry, err := scanEntry(s.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, storeErr(err)
	}
	return entry, nil
}

func (s *EntryStore) CreateEntry(ctx context.Context, data storage.NewEntry) (*journal.Entry, error) {
	attachments, err := marshalAttachments(data.Attachments)
	if err != nil {
		return nil, fmt.Errorf("encode attachments: %w", err)
	}

	now := time.Now()
	query := fmt.Sprintf(`
		INSERT INTO entries (user_uid, title, content, mood, mood_emoji, tags, attachments, is_voice_note, word_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING %s
	`, entryColumns)

	entry, err := scanEntry(s.pool.QueryRow(ctx, query,
		data.UserID,
		data.Title,
		data.Content,
		data.Mood,
		data.MoodEmoji,
		tagsParam(data.Tags),
		attachments,
		data.IsVoiceNote,
		journal.CountWords(data.Content),
		now,
	))
	if err != nil {
		return nil, storeErr(err)
	}
	return entry, nil
}

func (s *EntryStore) UpdateEntry(ctx context.Context, id, userID string, patch storage.EntryPatch) (*journal.Entry, error) {
	setClauses := []string{}
	args := []interface{}{}
	argCounter := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(argCounter))
		args = append(args, value)
		argCounter++
	}

	if patch.Title != nil {
		addSet("title", *patch.Title)
	}
	if patch.Content != nil {
		addSet("content", *patch.Content)
		addSet("word_count", journal.CountWords(*patch.Content))
	}
	if patch.Mood != nil {
		addSet("mood", *patch.Mood)
	}
	if patch.MoodEmoji != nil {
		addSet("mood_emoji", *patch.MoodEmoji)
	}
	if patch.Tags != nil {
		addSet("tags", tagsParam(*patch.Tags))
	}
	if patch.Attachments != nil {
		attachments, err := marshalAttachments(*patch.Attachments)
		if err != nil {
			return nil, fmt.Errorf("encode attachments: %w", err)
		}
		addSet("attachments", attachments)
	}
	if patch.IsVoiceNote != nil {
		addSet("is_voice_note", *patch.IsVoiceNote)
	}
	if patch.AIInsights != nil {
		addSet("ai_insights", []byte(patch.AIInsights))
	}
	if len(setClauses) == 0 {
		return s.GetEntry(ctx, id, userID)
	}
	addSet("updated_at", time.Now())

	query := fmt.Sprintf(`
		UPDATE entries SET %s
		WHERE id = $%d AND user_uid = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argCounter, argCounter+1, entryColumns)
	args = append(args, id, userID)

	entry, err := scanEntry(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, storeErr(err)
	}
	return entry, nil
}

func (s *EntryStore) DeleteEntry(ctx context.Context, id, userID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM entries WHERE id = $1 AND user_uid = $2`, id, userID)
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *EntryStore) ListEntriesInRange(ctx context.Context, userID string, start, end time.Time) ([]journal.Entry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM entries
		WHERE user_uid = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at DESC
	`, entryColumns)

	rows, err := s.pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]journal.Entry, error) {
	entries := []journal.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, storeErr(err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (*journal.Entry, error) {
	var (
		entry           journal.Entry
		attachmentsJSON []byte
		insightsJSON    []byte
	)
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Title,
		&entry.Content,
		&entry.Mood,
		&entry.MoodEmoji,
		&entry.Tags,
		&attachmentsJSON,
		&entry.IsVoiceNote,
		&entry.WordCount,
		&insightsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(attachmentsJSON) > 0 {
		if err := json.Unmarshal(attachmentsJSON, &entry.Attachments); err != nil {
			return nil, fmt.Errorf("decode attachments: %w", err)
		}
	}
	if len(insightsJSON) > 0 {
		entry.AIInsights = json.RawMessage(insightsJSON)
	}
	return &entry, nil
}

func marshalAttachments(attachments []journal.Attachment) ([]byte, error) {
	if len(attachments) == 0 {
		return nil, nil
	}
	return json.Marshal(attachments)
}

// tagsParam keeps empty tag lists as empty arrays rather than NULL columns.
func tagsParam(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
}
