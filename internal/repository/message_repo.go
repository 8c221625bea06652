package repository

import (
	"context"
	"fmt"

	"tardis-journal/internal/model"
)

type MessageRepository struct {
	db DB
}

func NewMessageRepository(db DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, fromUserID int64, toUserID int64, body string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO messages (from_user_id, to_user_id, body)
		 VALUES ($1, $2, $3) RETURNING id`,
		fromUserID, toUserID, body).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create message: %w", err)
	}
	return id, nil
}

func (r *MessageRepository) ListForUser(ctx context.Context, userID int64) ([]model.MessageEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, from_user_id, body, created_at
		 FROM messages WHERE to_user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]model.MessageEntry, 0)
	for rows.Next() {
		var m model.MessageEntry
		if err := rows.Scan(&m.ID, &m.FromUserID, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
