package consistency

import (
	"time"

	"flight-audit-service/internal/domain/entity"
)

// DefaultMinTurnaround is the minimum ground time used by the aggregated report
// when the caller has no preference.
const DefaultMinTurnaround = 2 * time.Hour

// Turnarounds reports legs that depart less than minTurnaround after the same
// aircraft's previous leg arrived at that airport. Pairs that break continuity
// are left to AirportTransitions; pairs missing a time are skipped.
func Turnarounds(flights []entity.FlightRecord, minTurnaround time.Duration) []entity.Finding {
	return scanAdjacentPairs(flights, aircraftKey, func(aircraft string, prev, next entity.FlightRecord) []entity.Finding {
		if !sameAirport(prev.ArrivalAirport, next.DepartureAirport) {
			return nil
		}
		ground, ok := elapsed(prev.ArrivalDateTime, next.DepartureDateTime)
		if !ok || ground >= minTurnaround {
			return nil
		}
		return []entity.Finding{{
			Rule:     entity.RuleTurnaround,
			Kind:     entity.KindShortTurnaround,
			Aircraft: aircraft,
			Current:  next,
			Previous: &prev,
			Elapsed:  ground,
		}}
	})
}
