package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-audit-service/internal/domain/repository"
)

const sampleCsv = `id,aircraft_registration,aircraft_type,flight_number,departure_airport,departure_datetime,arrival_airport,arrival_datetime
1,N123,B738,AA100,JFK,2024-03-01T08:00:00,LAX,2024-03-01T10:00:00
2,,A320,AA200,, 2024-03-01 11:30,SFO,
`

func TestParseFlightsCsv(t *testing.T) {
	records, err := ParseFlightsCsv(strings.NewReader(sampleCsv))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "AA100", first.FlightNumber)
	require.NotNil(t, first.AircraftRegistration)
	assert.Equal(t, "N123", *first.AircraftRegistration)
	require.NotNil(t, first.DepartureDateTime)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), *first.DepartureDateTime)

	second := records[1]
	assert.Nil(t, second.AircraftRegistration)
	assert.Nil(t, second.DepartureAirport)
	assert.Nil(t, second.ArrivalDateTime)
	require.NotNil(t, second.DepartureDateTime)
	assert.Equal(t, time.Date(2024, 3, 1, 11, 30, 0, 0, time.UTC), *second.DepartureDateTime)
}

func TestParseFlightsCsvEmptyInput(t *testing.T) {
	records, err := ParseFlightsCsv(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseFlightsCsvBadTimestamp(t *testing.T) {
	input := "flight_number,departure_datetime\nAA1,yesterday\n"

	_, err := ParseFlightsCsv(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDecode)
	assert.Contains(t, err.Error(), "line 2")
}

func TestWriteFlightsCsvRoundTrip(t *testing.T) {
	records, err := ParseFlightsCsv(strings.NewReader(sampleCsv))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteFlightsCsv(&buf, records))
	assert.True(t, strings.HasPrefix(buf.String(), "id,aircraft_registration,aircraft_type,flight_number,"))

	again, err := ParseFlightsCsv(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, again)
}
