package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tardis-journal/internal/model"
	"tardis-journal/internal/repository"
)

func newAccountService(t *testing.T) (pgxmock.PgxPoolIface, *AccountService) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	svc := NewAccountService(mock,
		repository.NewUserRepository(mock),
		repository.NewCharacterRepository(mock))
	return mock, svc
}

func signupRequest() model.SignupRequest {
	return model.SignupRequest{
		Login:        "rose",
		Password:     "p1",
		Name:         "Rose",
		Race:         "human",
		Age:          19,
		Relationship: "companion",
	}
}

func idRow(id int64) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id"}).AddRow(id)
}

func existsRow(exists bool) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"exists"}).AddRow(exists)
}

func TestAccountService_Signup(t *testing.T) {
	t.Run("creates race, character and user in one transaction", func(t *testing.T) {
		mock, svc := newAccountService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS`).WithArgs("rose").WillReturnRows(existsRow(false))
		mock.ExpectQuery(`INSERT INTO races`).WithArgs("human").WillReturnRows(idRow(3))
		mock.ExpectQuery(`INSERT INTO characters`).
			WithArgs("Rose", 19, "alive", "companion", int64(3)).
			WillReturnRows(idRow(11))
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("rose", pgxmock.AnyArg(), int64(11)).
			WillReturnRows(idRow(42))
		mock.ExpectCommit()

		userID, err := svc.Signup(context.Background(), signupRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("doctor relationship writes the doctor satellite row", func(t *testing.T) {
		mock, svc := newAccountService(t)

		req := signupRequest()
		req.Relationship = "doctor"
		req.Appearance = "tenth"
		req.Personality = "brooding"

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS`).WithArgs("rose").WillReturnRows(existsRow(false))
		mock.ExpectQuery(`INSERT INTO races`).WithArgs("human").WillReturnRows(idRow(3))
		mock.ExpectQuery(`INSERT INTO characters`).
			WithArgs("Rose", 19, "alive", "doctor", int64(3)).
			WillReturnRows(idRow(11))
		mock.ExpectExec(`INSERT INTO doctors`).
			WithArgs(int64(11), "tenth", "brooding").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("rose", pgxmock.AnyArg(), int64(11)).
			WillReturnRows(idRow(42))
		mock.ExpectCommit()

		_, err := svc.Signup(context.Background(), req)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate login rolls back and leaves no rows", func(t *testing.T) {
		mock, svc := newAccountService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS`).WithArgs("rose").WillReturnRows(existsRow(true))
		mock.ExpectRollback()

		_, err := svc.Signup(context.Background(), signupRequest())
		requireAPIError(t, err, http.StatusBadRequest, "User already exists")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure after the character insert rolls the whole group back", func(t *testing.T) {
		mock, svc := newAccountService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS`).WithArgs("rose").WillReturnRows(existsRow(false))
		mock.ExpectQuery(`INSERT INTO races`).WithArgs("human").WillReturnRows(idRow(3))
		mock.ExpectQuery(`INSERT INTO characters`).
			WithArgs("Rose", 19, "alive", "companion", int64(3)).
			WillReturnRows(idRow(11))
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("rose", pgxmock.AnyArg(), int64(11)).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := svc.Signup(context.Background(), signupRequest())
		requireAPIError(t, err, http.StatusInternalServerError, "create user: connection reset")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation from a concurrent signup maps to the duplicate error", func(t *testing.T) {
		mock, svc := newAccountService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS`).WithArgs("rose").WillReturnRows(existsRow(false))
		mock.ExpectQuery(`INSERT INTO races`).WithArgs("human").WillReturnRows(idRow(3))
		mock.ExpectQuery(`INSERT INTO characters`).
			WithArgs("Rose", 19, "alive", "companion", int64(3)).
			WillReturnRows(idRow(11))
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("rose", pgxmock.AnyArg(), int64(11)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
		mock.ExpectRollback()

		_, err := svc.Signup(context.Background(), signupRequest())
		requireAPIError(t, err, http.StatusBadRequest, "User already exists")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing required fields are rejected before touching the database", func(t *testing.T) {
		_, svc := newAccountService(t)

		for _, mutate := range []func(*model.SignupRequest){
			func(r *model.SignupRequest) { r.Login = "" },
			func(r *model.SignupRequest) { r.Password = "" },
			func(r *model.SignupRequest) { r.Name = "" },
			func(r *model.SignupRequest) { r.Race = "" },
			func(r *model.SignupRequest) { r.Relationship = "" },
		} {
			req := signupRequest()
			mutate(&req)

			_, err := svc.Signup(context.Background(), req)
			require.Error(t, err)
		}
	})
}
