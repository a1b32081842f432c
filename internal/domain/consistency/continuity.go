package consistency

import "flight-audit-service/internal/domain/entity"

// AirportTransitions reports each leg whose departure airport differs from the
// arrival airport of the same aircraft's previous leg.
func AirportTransitions(flights []entity.FlightRecord) []entity.Finding {
	return continuityBreaks(flights, entity.RuleAirportTransition, entity.KindAirportMismatch)
}

// MissingFlights reports the same continuity breaks as AirportTransitions,
// framed as a flight missing between the two legs.
func MissingFlights(flights []entity.FlightRecord) []entity.Finding {
	return continuityBreaks(flights, entity.RuleMissingFlight, entity.KindChainGap)
}

func continuityBreaks(flights []entity.FlightRecord, rule entity.Rule, kind entity.FindingKind) []entity.Finding {
	return scanAdjacentPairs(flights, aircraftKey, func(aircraft string, prev, next entity.FlightRecord) []entity.Finding {
		if sameAirport(prev.ArrivalAirport, next.DepartureAirport) {
			return nil
		}
		return []entity.Finding{{
			Rule:     rule,
			Kind:     kind,
			Aircraft: aircraft,
			Current:  next,
			Previous: &prev,
		}}
	})
}
