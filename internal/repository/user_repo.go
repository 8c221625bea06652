package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"tardis-journal/internal/model"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx,
		`SELECT id, login, password_hash, character_id, created_at
		 FROM users WHERE login = $1`, strings.TrimSpace(login)).
		Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CharacterID, &u.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by login: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx,
		`SELECT id, login, password_hash, character_id, created_at
		 FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CharacterID, &u.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// FindOwnerID returns the id of the user owning the character, or nil when
// the character has no owner.
func (r *UserRepository) FindOwnerID(ctx context.Context, characterID int64) (*int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`SELECT id FROM users WHERE character_id = $1`, characterID).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find character owner: %w", err)
	}
	return &id, nil
}

func (r *UserRepository) ExistsByLogin(ctx context.Context, q Querier, login string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE login = $1)`,
		strings.TrimSpace(login)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check login exists: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, q Querier, login string, passwordHash string, characterID int64) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO users (login, password_hash, character_id)
		 VALUES ($1, $2, $3) RETURNING id`,
		login, passwordHash, characterID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}
