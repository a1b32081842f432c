// Package consistency detects data-quality defects and logical inconsistencies
// in a collection of flight records. Every function is a pure function of its
// input: records are never mutated and no state survives a call.
package consistency

import (
	"slices"
	"strings"
	"time"

	"flight-audit-service/internal/domain/entity"
)

// groupKey extracts the grouping key of a record. Records for which ok is
// false do not belong to any group.
type groupKey func(entity.FlightRecord) (key string, ok bool)

func aircraftKey(f entity.FlightRecord) (string, bool) { return f.Registration() }

func flightNumberKey(f entity.FlightRecord) (string, bool) { return f.FlightKey() }

// SortByAircraft returns the records that carry an aircraft registration,
// ordered by registration ascending and then by departure time. Records
// without a registration are left out.
func SortByAircraft(flights []entity.FlightRecord) []entity.FlightRecord {
	var out []entity.FlightRecord
	for _, g := range groupBy(flights, aircraftKey) {
		out = append(out, g...)
	}
	return out
}

// GroupByFlightNumber maps each flight number to its records ordered by
// departure time. Records without a flight number are left out.
func GroupByFlightNumber(flights []entity.FlightRecord) map[string][]entity.FlightRecord {
	groups := groupBy(flights, flightNumberKey)
	out := make(map[string][]entity.FlightRecord, len(groups))
	for _, g := range groups {
		out[g[0].FlightNumber] = g
	}
	return out
}

// groupBy partitions flights by key. Groups are returned in ascending key
// order and each group is stably sorted by departure time.
func groupBy(flights []entity.FlightRecord, key groupKey) [][]entity.FlightRecord {
	index := make(map[string]int)
	var keys []string
	var groups [][]entity.FlightRecord
	for _, f := range flights {
		k, ok := key(f)
		if !ok {
			continue
		}
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			keys = append(keys, k)
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], f)
	}

	order := make([]int, len(groups))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int { return strings.Compare(keys[a], keys[b]) })

	sorted := make([][]entity.FlightRecord, 0, len(groups))
	for _, i := range order {
		g := groups[i]
		slices.SortStableFunc(g, byDeparture)
		sorted = append(sorted, g)
	}
	return sorted
}

// byDeparture orders by departure time; records without one sort last.
func byDeparture(a, b entity.FlightRecord) int {
	switch {
	case a.DepartureDateTime == nil && b.DepartureDateTime == nil:
		return 0
	case a.DepartureDateTime == nil:
		return 1
	case b.DepartureDateTime == nil:
		return -1
	}
	return a.DepartureDateTime.Compare(*b.DepartureDateTime)
}

// pairCheck inspects two consecutive records of one group and returns the
// findings for the pair, if any.
type pairCheck func(group string, prev, next entity.FlightRecord) []entity.Finding

// scanAdjacentPairs groups flights by key and runs check over every pair of
// neighbours within each group. Records in different groups are never compared.
func scanAdjacentPairs(flights []entity.FlightRecord, key groupKey, check pairCheck) []entity.Finding {
	var findings []entity.Finding
	for _, g := range groupBy(flights, key) {
		k, _ := key(g[0])
		for i := 1; i < len(g); i++ {
			findings = append(findings, check(k, g[i-1], g[i])...)
		}
	}
	return findings
}

// sameAirport is continuity equality: an absent airport matches nothing.
func sameAirport(a, b *string) bool {
	if a == nil || b == nil || *a == "" || *b == "" {
		return false
	}
	return *a == *b
}

// elapsed returns to - from when both are present.
func elapsed(from, to *time.Time) (time.Duration, bool) {
	if from == nil || to == nil {
		return 0, false
	}
	return to.Sub(*from), true
}

func registration(f entity.FlightRecord) string {
	r, _ := f.Registration()
	return r
}
