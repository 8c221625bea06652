package service

import (
	"context"

	"tardis-journal/internal/model"
	"tardis-journal/internal/repository"
)

type CharacterService struct {
	characters *repository.CharacterRepository
	users      *repository.UserRepository
}

func NewCharacterService(characters *repository.CharacterRepository, users *repository.UserRepository) *CharacterService {
	return &CharacterService{characters: characters, users: users}
}

func (s *CharacterService) List(ctx context.Context) ([]model.CharacterSummary, error) {
	return s.characters.List(ctx)
}

// Get assembles the character detail view: base attributes, race name, the
// owning user id when one exists, and the relationship-specific fields.
func (s *CharacterService) Get(ctx context.Context, id int64) (model.CharacterDetail, error) {
	character, err := s.characters.FindByID(ctx, id)
	if err != nil {
		return model.CharacterDetail{}, err
	}

	race, err := s.characters.RaceName(ctx, character.RaceID)
	if err != nil {
		return model.CharacterDetail{}, err
	}

	ownerID, err := s.users.FindOwnerID(ctx, character.ID)
	if err != nil {
		return model.CharacterDetail{}, err
	}

	detail := model.CharacterDetail{
		Name:         character.Name,
		Age:          character.Age,
		State:        character.State,
		Relationship: character.Relationship,
		UserID:       ownerID,
		Race:         race,
	}

	switch character.Relationship {
	case model.RelationshipDoctor:
		doctor, err := s.characters.FindDoctor(ctx, character.ID)
		if err != nil {
			return model.CharacterDetail{}, err
		}
		if doctor != nil {
			detail.Appearance = &doctor.Appearance
			detail.Personality = &doctor.Personality
		}
	case model.RelationshipEnemy:
		enemy, err := s.characters.FindEnemy(ctx, character.ID)
		if err != nil {
			return model.CharacterDetail{}, err
		}
		if enemy != nil {
			detail.Reason = &enemy.Reason
		}
	}

	return detail, nil
}
