package consistency

import "flight-audit-service/internal/domain/entity"

// TimeSequences reports records that arrive before they depart. Records missing
// either time are skipped.
func TimeSequences(flights []entity.FlightRecord) []entity.Finding {
	var findings []entity.Finding
	for _, f := range flights {
		if f.DepartureDateTime == nil || f.ArrivalDateTime == nil {
			continue
		}
		if f.ArrivalDateTime.Before(*f.DepartureDateTime) {
			findings = append(findings, entity.Finding{
				Rule:     entity.RuleTimeSequence,
				Kind:     entity.KindArrivalBeforeDeparture,
				Aircraft: registration(f),
				Current:  f,
			})
		}
	}
	return findings
}
