package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"tardis-journal/internal/model"
	"tardis-journal/internal/repository"
	"tardis-journal/pkg/apierror"
)

const bcryptCost = 12

// AccountService owns the signup write path: race, character, relationship
// satellite and user rows are created in a single transaction.
type AccountService struct {
	db         repository.DB
	users      *repository.UserRepository
	characters *repository.CharacterRepository
}

func NewAccountService(db repository.DB, users *repository.UserRepository, characters *repository.CharacterRepository) *AccountService {
	return &AccountService{db: db, users: users, characters: characters}
}

// Signup registers a new user with their character and returns the new user
// id. A duplicate login leaves no rows behind: the transaction rolls back,
// and the UNIQUE constraint on users.login backstops the in-transaction
// existence check against concurrent signups.
func (s *AccountService) Signup(ctx context.Context, req model.SignupRequest) (int64, error) {
	if err := validateSignup(req); err != nil {
		return 0, err
	}

	// Hashing is slow on purpose; keep it outside the transaction.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return 0, apierror.Internal(err.Error())
	}

	login := strings.TrimSpace(req.Login)

	var userID int64
	err = repository.InTx(ctx, s.db, func(tx pgx.Tx) error {
		exists, err := s.users.ExistsByLogin(ctx, tx, login)
		if err != nil {
			return err
		}
		if exists {
			return model.ErrUserAlreadyExists
		}

		raceID, err := s.characters.GetOrCreateRace(ctx, tx, req.Race)
		if err != nil {
			return err
		}

		characterID, err := s.characters.Create(ctx, tx, model.Character{
			Name:         req.Name,
			Age:          req.Age,
			State:        model.StateAlive,
			Relationship: req.Relationship,
			RaceID:       raceID,
		})
		if err != nil {
			return err
		}

		switch req.Relationship {
		case model.RelationshipDoctor:
			if err := s.characters.CreateDoctor(ctx, tx, characterID, req.Appearance, req.Personality); err != nil {
				return err
			}
		case model.RelationshipEnemy:
			if err := s.characters.CreateEnemy(ctx, tx, characterID, req.Reason); err != nil {
				return err
			}
		}

		userID, err = s.users.Create(ctx, tx, login, string(hash), characterID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrUserAlreadyExists) || isUniqueViolation(err) {
			return 0, apierror.Conflict("User already exists")
		}
		var apiErr *apierror.APIError
		if errors.As(err, &apiErr) {
			return 0, err
		}
		return 0, apierror.Internal(err.Error())
	}

	return userID, nil
}

func validateSignup(req model.SignupRequest) error {
	switch {
	case strings.TrimSpace(req.Login) == "":
		return apierror.Validation("login is required")
	case req.Password == "":
		return apierror.Validation("password is required")
	case strings.TrimSpace(req.Name) == "":
		return apierror.Validation("name is required")
	case strings.TrimSpace(req.Race) == "":
		return apierror.Validation("race is required")
	case strings.TrimSpace(req.Relationship) == "":
		return apierror.Validation("relationship is required")
	case req.Age < 0:
		return apierror.Validation("age must not be negative")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
