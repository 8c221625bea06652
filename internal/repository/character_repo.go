package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"tardis-journal/internal/model"
)

type CharacterRepository struct {
	db DB
}

func NewCharacterRepository(db DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) FindByID(ctx context.Context, id int64) (model.Character, error) {
	var c model.Character
	err := r.db.QueryRow(ctx,
		`SELECT id, name, age, state, relationship, race_id
		 FROM characters WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Age, &c.State, &c.Relationship, &c.RaceID)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Character{}, model.ErrCharacterNotFound
	}
	if err != nil {
		return model.Character{}, fmt.Errorf("find character by id: %w", err)
	}
	return c, nil
}

func (r *CharacterRepository) List(ctx context.Context) ([]model.CharacterSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, age, state, relationship FROM characters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	characters := make([]model.CharacterSummary, 0)
	for rows.Next() {
		var c model.CharacterSummary
		if err := rows.Scan(&c.ID, &c.Name, &c.Age, &c.State, &c.Relationship); err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		characters = append(characters, c)
	}
	return characters, rows.Err()
}

func (r *CharacterRepository) RaceName(ctx context.Context, raceID int64) (string, error) {
	var name string
	err := r.db.QueryRow(ctx, `SELECT name FROM races WHERE id = $1`, raceID).Scan(&name)
	if err != nil {
		return "", fmt.Errorf("find race: %w", err)
	}
	return name, nil
}

// FindDoctor returns the doctor satellite row for a character, or nil when
// no such row exists.
func (r *CharacterRepository) FindDoctor(ctx context.Context, characterID int64) (*model.Doctor, error) {
	var d model.Doctor
	err := r.db.QueryRow(ctx,
		`SELECT id, character_id, appearance, personality
		 FROM doctors WHERE character_id = $1`, characterID).
		Scan(&d.ID, &d.CharacterID, &d.Appearance, &d.Personality)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return &d, nil
}

func (r *CharacterRepository) FindEnemy(ctx context.Context, characterID int64) (*model.Enemy, error) {
	var e model.Enemy
	err := r.db.QueryRow(ctx,
		`SELECT id, character_id, reason FROM enemies WHERE character_id = $1`, characterID).
		Scan(&e.ID, &e.CharacterID, &e.Reason)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find enemy: %w", err)
	}
	return &e, nil
}

// GetOrCreateRace resolves a race name to its row id, inserting the row if
// needed. The upsert keeps it a single statement inside the signup
// transaction.
func (r *CharacterRepository) GetOrCreateRace(ctx context.Context, q Querier, name string) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO races (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get or create race: %w", err)
	}
	return id, nil
}

func (r *CharacterRepository) Create(ctx context.Context, q Querier, c model.Character) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO characters (name, age, state, relationship, race_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.Name, c.Age, c.State, c.Relationship, c.RaceID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create character: %w", err)
	}
	return id, nil
}

func (r *CharacterRepository) CreateDoctor(ctx context.Context, q Querier, characterID int64, appearance string, personality string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO doctors (character_id, appearance, personality) VALUES ($1, $2, $3)`,
		characterID, appearance, personality)
	if err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}
	return nil
}

func (r *CharacterRepository) CreateEnemy(ctx context.Context, q Querier, characterID int64, reason string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO enemies (character_id, reason) VALUES ($1, $2)`,
		characterID, reason)
	if err != nil {
		return fmt.Errorf("create enemy: %w", err)
	}
	return nil
}
