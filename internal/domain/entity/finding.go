// internal/domain/entity/finding.go
package entity

import (
	"fmt"
	"time"
)

// Rule identifies the detection rule that produced a finding.
type Rule string

const (
	RuleMissingData       Rule = "missing_data"
	RuleMissingFlight     Rule = "missing_flight"
	RuleAirportTransition Rule = "airport_transition"
	RuleTimeSequence      Rule = "time_sequence"
	RuleTurnaround        Rule = "turnaround_time"
	RuleFlightNumber      Rule = "flight_number"
)

// Title is the section header used when the rule's findings are rendered.
func (r Rule) Title() string {
	switch r {
	case RuleMissingData:
		return "Missing Data:"
	case RuleMissingFlight:
		return "Missing Flights:"
	case RuleAirportTransition:
		return "Airport Transition Inconsistencies:"
	case RuleTimeSequence:
		return "Time Sequence Inconsistencies:"
	case RuleTurnaround:
		return "Unrealistic Turnaround Times:"
	case RuleFlightNumber:
		return "Flight Number Inconsistencies:"
	}
	return string(r) + ":"
}

// FindingKind narrows a finding within its rule.
type FindingKind string

const (
	KindMissingDepartureAirport  FindingKind = "missing_departure_airport"
	KindMissingArrivalAirport    FindingKind = "missing_arrival_airport"
	KindMissingDepartureDateTime FindingKind = "missing_departure_datetime"
	KindMissingArrivalDateTime   FindingKind = "missing_arrival_datetime"
	KindChainGap                 FindingKind = "chain_gap"
	KindAirportMismatch          FindingKind = "airport_mismatch"
	KindArrivalBeforeDeparture   FindingKind = "arrival_before_departure"
	KindShortTurnaround          FindingKind = "short_turnaround"
	KindMetadataMismatch         FindingKind = "metadata_mismatch"
	KindFlightNumberOverlap      FindingKind = "flight_number_overlap"
)

const messageTimeLayout = "2006-01-02 15:04"

// Finding is a single detected inconsistency. Current is the record the finding
// is about; Previous is the record it was compared against, if any.
type Finding struct {
	Rule     Rule          `json:"rule"`
	Kind     FindingKind   `json:"kind"`
	Aircraft string        `json:"aircraft,omitempty"`
	Current  FlightRecord  `json:"current"`
	Previous *FlightRecord `json:"previous,omitempty"`
	Elapsed  time.Duration `json:"-"`
}

// ElapsedMinutes is the turnaround time in whole minutes.
func (f Finding) ElapsedMinutes() int64 {
	return int64(f.Elapsed / time.Minute)
}

// Message renders the finding as a single human readable line.
func (f Finding) Message() string {
	cur := f.Current
	switch f.Kind {
	case KindMissingDepartureAirport:
		return fmt.Sprintf("Flight %s: Missing Departure Airport", cur.FlightNumber)
	case KindMissingArrivalAirport:
		return fmt.Sprintf("Flight %s: Missing Arrival Airport", cur.FlightNumber)
	case KindMissingDepartureDateTime:
		return fmt.Sprintf("Flight %s: Missing Departure Datetime", cur.FlightNumber)
	case KindMissingArrivalDateTime:
		return fmt.Sprintf("Flight %s: Missing Arrival Datetime", cur.FlightNumber)
	case KindArrivalBeforeDeparture:
		return fmt.Sprintf("Flight %s: Arrival time %s is before departure time %s",
			cur.FlightNumber, formatTime(cur.ArrivalDateTime), formatTime(cur.DepartureDateTime))
	}

	if f.Previous == nil {
		return fmt.Sprintf("Flight %s: %s", cur.FlightNumber, f.Kind)
	}
	prev := *f.Previous

	switch f.Kind {
	case KindChainGap:
		return fmt.Sprintf("Aircraft %s: Missing flight between flight %s arriving at %s and flight %s departing from %s",
			f.Aircraft, prev.FlightNumber, DisplayString(prev.ArrivalAirport),
			cur.FlightNumber, DisplayString(cur.DepartureAirport))
	case KindAirportMismatch:
		return fmt.Sprintf("Aircraft %s: Flight %s departs from %s but the previous flight arrived at %s",
			f.Aircraft, cur.FlightNumber, DisplayString(cur.DepartureAirport), DisplayString(prev.ArrivalAirport))
	case KindShortTurnaround:
		return fmt.Sprintf("Aircraft %s: Flight %s has an unrealistic turnaround time of %d minutes at %s",
			f.Aircraft, cur.FlightNumber, f.ElapsedMinutes(), DisplayString(prev.ArrivalAirport))
	case KindMetadataMismatch:
		return fmt.Sprintf("Flight number %s has inconsistent airports: %s-%s (flight %s) vs %s-%s (flight %s)",
			cur.FlightNumber,
			DisplayString(prev.DepartureAirport), DisplayString(prev.ArrivalAirport), prev.FlightNumber,
			DisplayString(cur.DepartureAirport), DisplayString(cur.ArrivalAirport), cur.FlightNumber)
	case KindFlightNumberOverlap:
		return fmt.Sprintf("Flight number %s overlaps: flight %s departs at %s before flight %s arrives at %s",
			cur.FlightNumber, cur.FlightNumber, formatTime(cur.DepartureDateTime),
			prev.FlightNumber, formatTime(prev.ArrivalDateTime))
	}
	return fmt.Sprintf("Flight %s: %s", cur.FlightNumber, f.Kind)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "null"
	}
	return t.Format(messageTimeLayout)
}
