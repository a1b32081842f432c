package consistency

import "flight-audit-service/internal/domain/entity"

// MissingData reports every absent or empty departure airport, arrival airport,
// departure time and arrival time, in input order and in that field order.
func MissingData(flights []entity.FlightRecord) []entity.Finding {
	var findings []entity.Finding
	for _, f := range flights {
		missing := func(kind entity.FindingKind) {
			findings = append(findings, entity.Finding{
				Rule:     entity.RuleMissingData,
				Kind:     kind,
				Aircraft: registration(f),
				Current:  f,
			})
		}
		if !f.HasDepartureAirport() {
			missing(entity.KindMissingDepartureAirport)
		}
		if !f.HasArrivalAirport() {
			missing(entity.KindMissingArrivalAirport)
		}
		if f.DepartureDateTime == nil {
			missing(entity.KindMissingDepartureDateTime)
		}
		if f.ArrivalDateTime == nil {
			missing(entity.KindMissingArrivalDateTime)
		}
	}
	return findings
}
