package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

const moodLogColumns = `id, user_uid, entry_id, mood, mood_emoji, tags, notes, created_at`

// MoodLogStore persists mood check-ins in the mood_logs table.
type MoodLogStore struct {
	pool *pgxpool.Pool
}

// NewMoodLogStore builds a MoodLogStore over the given connection pool.
func NewMoodLogStore(pool *pgxpool.Pool) *MoodLogStore {
	return &MoodLogStore{pool: pool}
}

func (s *MoodLogStore) ListMoodLogs(ctx context.Context, userID string, limit int) ([]journal.MoodLog, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM mood_logs
		WHERE user_uid = $1
		ORDER BY created_at DESC
	`, moodLogColumns)
	args := []interface{}{userID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	return scanMoodLogs(rows)
}

func (s *MoodLogStore) CreateMoodLog(ctx context.Context, data storage.NewMoodLog) (*journal.MoodLog, error) {
	query := fmt.Sprintf(`
		INSERT INTO mood_logs (user_uid, entry_id, mood, mood_emoji, tags, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, moodLogColumns)

	log, err := scanMoodLog(s.pool.QueryRow(ctx, query,
		data.UserID,
		data.EntryID,
		data.Mood,
		data.MoodEmoji,
		tagsParam(data.Tags),
		data.Notes,
		time.Now(),
	))
	if err != nil {
		return nil, storeErr(err)
	}
	return log, nil
}

func (s *MoodLogStore) ListMoodLogsInRange(ctx context.Context, userID string, start, end time.Time) ([]journal.MoodLog, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM mood_logs
		WHERE user_uid = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at DESC
	`, moodLogColumns)

	rows, err := s.pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	return scanMoodLogs(rows)
}

func scanMoodLogs(rows pgx.Rows) ([]journal.MoodLog, error) {
	logs := []journal.MoodLog{}
	for rows.Next() {
		log, err := scanMoodLog(rows)
		if err != nil {
			return nil, storeErr(err)
		}
		logs = append(logs, *log)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return logs, nil
}

func scanMoodLog(row pgx.Row) (*journal.MoodLog, error) {
	var log journal.MoodLog
	err := row.Scan(
		&log.ID,
		&log.UserID,
		&log.EntryID,
		&log.Mood,
		&log.MoodEmoji,
		&log.Tags,
		&log.Notes,
		&log.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &log, nil
}
