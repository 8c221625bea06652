package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"tardis-journal/internal/model"
	"tardis-journal/internal/repository"
	"tardis-journal/pkg/apierror"
)

// JourneyService reads and records journeys for a character. The time row,
// the journey row and the character link are written in one transaction.
type JourneyService struct {
	db       repository.DB
	journeys *repository.JourneyRepository
}

func NewJourneyService(db repository.DB, journeys *repository.JourneyRepository) *JourneyService {
	return &JourneyService{db: db, journeys: journeys}
}

func (s *JourneyService) ListForCharacter(ctx context.Context, characterID int64) ([]model.JourneyEntry, error) {
	return s.journeys.ListByCharacter(ctx, characterID)
}

// Add records a journey for the character and returns the new journey id.
// Any failure rolls the whole triple back; no partial rows survive.
func (s *JourneyService) Add(ctx context.Context, characterID int64, req model.JourneyRequest) (int64, error) {
	if strings.TrimSpace(req.Time) == "" {
		return 0, apierror.Validation("time is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return 0, apierror.Validation("description is required")
	}

	var journeyID int64
	err := repository.InTx(ctx, s.db, func(tx pgx.Tx) error {
		timeID, err := s.journeys.CreateTime(ctx, tx, req.Time, req.Time)
		if err != nil {
			return err
		}

		journeyID, err = s.journeys.Create(ctx, tx, model.Journey{
			PlanetID:    req.Planet,
			TimeID:      timeID,
			DoctorID:    req.Doctor,
			Description: req.Description,
		})
		if err != nil {
			return err
		}

		return s.journeys.LinkCharacter(ctx, tx, characterID, journeyID)
	})
	if err != nil {
		return 0, apierror.Internal("Failed to create journey: " + err.Error())
	}

	return journeyID, nil
}
