package consistency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-audit-service/internal/domain/entity"
)

func TestGenerateReportEmpty(t *testing.T) {
	report := GenerateReport(nil, DefaultMinTurnaround)

	assert.True(t, report.Empty())
	assert.Equal(t, []string{entity.NoInconsistenciesMessage}, report.Lines())
}

func TestGenerateReportCleanFlights(t *testing.T) {
	flights := []entity.FlightRecord{
		leg("F1", "N1", "JFK", "LAX", at(0, 0), at(5, 0)),
		leg("F2", "N1", "LAX", "JFK", at(8, 0), at(13, 0)),
	}

	assert.Equal(t, []string{entity.NoInconsistenciesMessage}, GenerateReport(flights, DefaultMinTurnaround).Lines())
}

func TestGenerateReportSectionOrder(t *testing.T) {
	noArrival := leg("F9", "N9", "SEA", "", at(0, 0), at(1, 0))
	flights := []entity.FlightRecord{
		// reused flight number on a different route that overlaps
		leg("AA1", "N2", "BOS", "MIA", at(1, 0), at(4, 0)),
		leg("AA1", "N1", "JFK", "LAX", at(0, 0), at(2, 0)),
		// short turnaround at LAX, then a break at SFO
		leg("F2", "N1", "LAX", "SFO", at(2, 30), at(1, 0)),
		leg("F3", "N1", "ORD", "JFK", at(6, 0), at(9, 0)),
		noArrival,
	}

	report := GenerateReport(flights, DefaultMinTurnaround)

	var rules []entity.Rule
	for _, s := range report.Sections {
		rules = append(rules, s.Rule)
		assert.Equal(t, s.Rule.Title(), s.Title)
		assert.NotEmpty(t, s.Findings)
	}
	assert.Equal(t, []entity.Rule{
		entity.RuleMissingData,
		entity.RuleMissingFlight,
		entity.RuleAirportTransition,
		entity.RuleTimeSequence,
		entity.RuleTurnaround,
		entity.RuleFlightNumber,
	}, rules)

	lines := report.Lines()
	require.Len(t, lines, len(report.Sections)+report.FindingCount())
	assert.Equal(t, "Missing Data:", lines[0])
	assert.Equal(t, "Flight F9: Missing Arrival Airport", lines[1])
	assert.Equal(t, "Missing Flights:", lines[2])

	turnaround, ok := report.Section(entity.RuleTurnaround)
	require.True(t, ok)
	require.Len(t, turnaround.Findings, 1)
	assert.Equal(t, "F2", turnaround.Findings[0].Current.FlightNumber)
}

func TestGenerateReportUsesCallerThreshold(t *testing.T) {
	flights := []entity.FlightRecord{
		leg("F1", "N1", "JFK", "LAX", at(0, 0), at(2, 0)),
		leg("F2", "N1", "LAX", "SFO", at(3, 0), at(5, 0)),
	}

	_, flagged := GenerateReport(flights, 2*time.Hour).Section(entity.RuleTurnaround)
	assert.True(t, flagged)

	_, flagged = GenerateReport(flights, 45*time.Minute).Section(entity.RuleTurnaround)
	assert.False(t, flagged)
}
