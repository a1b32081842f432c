package consistency

import "flight-audit-service/internal/domain/entity"

// FlightNumberConsistency compares consecutive uses of the same flight number.
// A pair flying different routes yields a metadata finding; a pair where the
// later one departs before the earlier one arrives yields an overlap finding.
// Both can fire for the same pair.
func FlightNumberConsistency(flights []entity.FlightRecord) []entity.Finding {
	return scanAdjacentPairs(flights, flightNumberKey, func(_ string, prev, next entity.FlightRecord) []entity.Finding {
		var findings []entity.Finding
		if !equalOptional(prev.DepartureAirport, next.DepartureAirport) ||
			!equalOptional(prev.ArrivalAirport, next.ArrivalAirport) {
			findings = append(findings, flightNumberFinding(entity.KindMetadataMismatch, prev, next))
		}
		if next.DepartureDateTime != nil && prev.ArrivalDateTime != nil &&
			next.DepartureDateTime.Before(*prev.ArrivalDateTime) {
			findings = append(findings, flightNumberFinding(entity.KindFlightNumberOverlap, prev, next))
		}
		return findings
	})
}

func flightNumberFinding(kind entity.FindingKind, prev, next entity.FlightRecord) entity.Finding {
	return entity.Finding{
		Rule:     entity.RuleFlightNumber,
		Kind:     kind,
		Aircraft: registration(next),
		Current:  next,
		Previous: &prev,
	}
}

// equalOptional treats two absent values as equal.
func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
