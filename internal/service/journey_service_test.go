package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tardis-journal/internal/model"
	"tardis-journal/internal/repository"
	"tardis-journal/pkg/apierror"
)

func newJourneyService(t *testing.T) (pgxmock.PgxPoolIface, *JourneyService) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewJourneyService(mock, repository.NewJourneyRepository(mock))
}

func journeyRequest() model.JourneyRequest {
	return model.JourneyRequest{
		Planet:      3,
		Time:        "1969",
		Doctor:      4,
		Description: "Blitz",
	}
}

func TestJourneyService_Add(t *testing.T) {
	t.Run("writes time, journey and link in one transaction", func(t *testing.T) {
		mock, svc := newJourneyService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO times`).
			WithArgs("1969", "1969").
			WillReturnRows(idRow(5))
		mock.ExpectQuery(`INSERT INTO journeys`).
			WithArgs(int64(3), int64(5), int64(4), "Blitz").
			WillReturnRows(idRow(9))
		mock.ExpectExec(`INSERT INTO character_in_journey`).
			WithArgs(int64(7), int64(9)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		journeyID, err := svc.Add(context.Background(), 7, journeyRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(9), journeyID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure at the link insert rolls all three back", func(t *testing.T) {
		mock, svc := newJourneyService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO times`).
			WithArgs("1969", "1969").
			WillReturnRows(idRow(5))
		mock.ExpectQuery(`INSERT INTO journeys`).
			WithArgs(int64(3), int64(5), int64(4), "Blitz").
			WillReturnRows(idRow(9))
		mock.ExpectExec(`INSERT INTO character_in_journey`).
			WithArgs(int64(7), int64(9)).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := svc.Add(context.Background(), 7, journeyRequest())

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Contains(t, apiErr.Detail, "Failed to create journey")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure at the time insert never reaches the journey insert", func(t *testing.T) {
		mock, svc := newJourneyService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO times`).
			WithArgs("1969", "1969").
			WillReturnError(errors.New("out of connections"))
		mock.ExpectRollback()

		_, err := svc.Add(context.Background(), 7, journeyRequest())
		require.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty time is rejected before opening a transaction", func(t *testing.T) {
		_, svc := newJourneyService(t)

		req := journeyRequest()
		req.Time = ""

		_, err := svc.Add(context.Background(), 7, req)
		require.Error(t, err)
	})
}

func TestJourneyService_ListForCharacter(t *testing.T) {
	t.Parallel()

	mock, svc := newJourneyService(t)

	rows := pgxmock.NewRows([]string{"id", "planet_id", "universe_time", "doctor_id", "description"}).
		AddRow(int64(9), int64(3), "1969", int64(4), "Blitz")
	mock.ExpectQuery(`SELECT j.id, j.planet_id, t.universe_time`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	journeys, err := svc.ListForCharacter(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, int64(3), journeys[0].PlanetID)
	assert.Equal(t, int64(4), journeys[0].DoctorID)
	assert.Equal(t, "1969", journeys[0].Time)
	assert.Equal(t, "Blitz", journeys[0].Description)

	assert.NoError(t, mock.ExpectationsWereMet())
}
