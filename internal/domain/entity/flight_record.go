// internal/domain/entity/flight_record.go
package entity

import (
	"time"
)

// FlightRecord is one observed flight leg. Optional values are pointers so that
// an absent value can be told apart from a zero one.
type FlightRecord struct {
	ID                   string     `json:"id" bson:"_id,omitempty"`
	AircraftRegistration *string    `json:"aircraftRegistration" bson:"aircraftRegistration"`
	AircraftType         *string    `json:"aircraftType" bson:"aircraftType"`
	FlightNumber         string     `json:"flightNumber" bson:"flightNumber"`
	DepartureAirport     *string    `json:"departureAirport" bson:"departureAirport"`
	ArrivalAirport       *string    `json:"arrivalAirport" bson:"arrivalAirport"`
	DepartureDateTime    *time.Time `json:"departureDateTime" bson:"departureDateTime"`
	ArrivalDateTime      *time.Time `json:"arrivalDateTime" bson:"arrivalDateTime"`
}

// Registration returns the aircraft registration and whether it is usable as a
// grouping key.
func (f FlightRecord) Registration() (string, bool) {
	return presentString(f.AircraftRegistration)
}

// FlightKey returns the flight number and whether it is usable as a grouping key.
func (f FlightRecord) FlightKey() (string, bool) {
	return f.FlightNumber, f.FlightNumber != ""
}

// HasDepartureAirport reports whether the departure airport is present and non-empty.
func (f FlightRecord) HasDepartureAirport() bool {
	_, ok := presentString(f.DepartureAirport)
	return ok
}

// HasArrivalAirport reports whether the arrival airport is present and non-empty.
func (f FlightRecord) HasArrivalAirport() bool {
	_, ok := presentString(f.ArrivalAirport)
	return ok
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// TimePtr returns a pointer to a copy of t.
func TimePtr(t time.Time) *time.Time {
	return &t
}

// DisplayString renders an optional value for human readable output.
func DisplayString(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}

func presentString(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}
