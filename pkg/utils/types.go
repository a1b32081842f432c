package utils

// flightRow mirrors one row of a flight CSV file. Every column is read as text
// so that empty cells can be mapped to absent values.
type flightRow struct {
	ID                   string `csv:"id"`
	AircraftRegistration string `csv:"aircraft_registration"`
	AircraftType         string `csv:"aircraft_type"`
	FlightNumber         string `csv:"flight_number"`
	DepartureAirport     string `csv:"departure_airport"`
	DepartureDateTime    string `csv:"departure_datetime"`
	ArrivalAirport       string `csv:"arrival_airport"`
	ArrivalDateTime      string `csv:"arrival_datetime"`
}

// Accepted timestamp layouts. Timestamps carry no zone and are read as UTC.
var DATETIME_LAYOUTS = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

const DATETIME_LAYOUT = "2006-01-02T15:04:05"
