package repository

import (
	"context"
	"fmt"

	"tardis-journal/internal/model"
)

type JourneyRepository struct {
	db DB
}

func NewJourneyRepository(db DB) *JourneyRepository {
	return &JourneyRepository{db: db}
}

func (r *JourneyRepository) ListByCharacter(ctx context.Context, characterID int64) ([]model.JourneyEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.planet_id, t.universe_time, j.doctor_id, j.description
		 FROM journeys j
		 JOIN character_in_journey cij ON cij.journey_id = j.id
		 JOIN times t ON t.id = j.time_id
		 WHERE cij.character_id = $1
		 ORDER BY j.id`, characterID)
	if err != nil {
		return nil, fmt.Errorf("list journeys: %w", err)
	}
	defer rows.Close()

	journeys := make([]model.JourneyEntry, 0)
	for rows.Next() {
		var j model.JourneyEntry
		if err := rows.Scan(&j.ID, &j.PlanetID, &j.Time, &j.DoctorID, &j.Description); err != nil {
			return nil, fmt.Errorf("scan journey: %w", err)
		}
		journeys = append(journeys, j)
	}
	return journeys, rows.Err()
}

// CreateTime inserts a fresh time pair. Both halves are set from the same
// request value until clients start sending them separately.
func (r *JourneyRepository) CreateTime(ctx context.Context, q Querier, universeTime string, planetTime string) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO times (universe_time, planet_time) VALUES ($1, $2) RETURNING id`,
		universeTime, planetTime).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create time: %w", err)
	}
	return id, nil
}

func (r *JourneyRepository) Create(ctx context.Context, q Querier, j model.Journey) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO journeys (planet_id, time_id, doctor_id, description)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		j.PlanetID, j.TimeID, j.DoctorID, j.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create journey: %w", err)
	}
	return id, nil
}

func (r *JourneyRepository) LinkCharacter(ctx context.Context, q Querier, characterID int64, journeyID int64) error {
	_, err := q.Exec(ctx,
		`INSERT INTO character_in_journey (character_id, journey_id) VALUES ($1, $2)`,
		characterID, journeyID)
	if err != nil {
		return fmt.Errorf("link character to journey: %w", err)
	}
	return nil
}
