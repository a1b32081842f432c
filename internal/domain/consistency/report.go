package consistency

import (
	"time"

	"golang.org/x/sync/errgroup"

	"flight-audit-service/internal/domain/entity"
)

type ruleRun struct {
	rule entity.Rule
	run  func([]entity.FlightRecord) []entity.Finding
}

// rulesInOrder lists the rules in report presentation order.
func rulesInOrder(minTurnaround time.Duration) []ruleRun {
	return []ruleRun{
		{entity.RuleMissingData, MissingData},
		{entity.RuleMissingFlight, MissingFlights},
		{entity.RuleAirportTransition, AirportTransitions},
		{entity.RuleTimeSequence, TimeSequences},
		{entity.RuleTurnaround, func(f []entity.FlightRecord) []entity.Finding { return Turnarounds(f, minTurnaround) }},
		{entity.RuleFlightNumber, FlightNumberConsistency},
	}
}

// GenerateReport runs every rule over flights and collects the non-empty
// results into sections. Rules run concurrently; sections always come out in
// presentation order.
func GenerateReport(flights []entity.FlightRecord, minTurnaround time.Duration) entity.Report {
	rules := rulesInOrder(minTurnaround)
	results := make([][]entity.Finding, len(rules))

	var g errgroup.Group
	for i, r := range rules {
		i, r := i, r
		g.Go(func() error {
			results[i] = r.run(flights)
			return nil
		})
	}
	_ = g.Wait()

	var report entity.Report
	for i, r := range rules {
		if len(results[i]) == 0 {
			continue
		}
		report.Sections = append(report.Sections, entity.ReportSection{
			Rule:     r.rule,
			Title:    r.rule.Title(),
			Findings: results[i],
		})
	}
	return report
}
