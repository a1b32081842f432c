package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-audit-service/internal/domain/entity"
	domainrepo "flight-audit-service/internal/domain/repository"
	"flight-audit-service/pkg/logger"
)

func writeCsv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flights.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVFlightRecordRepositoryFindAll(t *testing.T) {
	path := writeCsv(t, "id,aircraft_registration,flight_number,departure_airport,arrival_airport\n"+
		"1,N1,AA1,JFK,LAX\n"+
		"2,N1,AA2,LAX,\n")
	repo := NewCSVFlightRecordRepository(path, logger.NewNopLogger())

	records, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "AA1", records[0].FlightNumber)
	assert.Nil(t, records[1].ArrivalAirport)
}

func TestCSVFlightRecordRepositoryErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		repo := NewCSVFlightRecordRepository(filepath.Join(t.TempDir(), "nope.csv"), logger.NewNopLogger())
		_, err := repo.FindAll(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad row", func(t *testing.T) {
		path := writeCsv(t, "flight_number,arrival_datetime\nAA1,not-a-time\n")
		repo := NewCSVFlightRecordRepository(path, logger.NewNopLogger())
		_, err := repo.FindAll(context.Background())
		assert.ErrorIs(t, err, domainrepo.ErrDecode)
	})

	t.Run("read only", func(t *testing.T) {
		repo := NewCSVFlightRecordRepository(writeCsv(t, ""), logger.NewNopLogger())
		err := repo.SaveAll(context.Background(), []entity.FlightRecord{{FlightNumber: "AA1"}})
		assert.ErrorIs(t, err, domainrepo.ErrReadOnly)
	})
}
