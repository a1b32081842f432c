package entity

// NoInconsistenciesMessage is the whole report when no rule found anything.
const NoInconsistenciesMessage = "No inconsistencies found."

// ReportSection holds the findings of one rule, in the rule's own order.
type ReportSection struct {
	Rule     Rule      `json:"rule"`
	Title    string    `json:"title"`
	Findings []Finding `json:"findings"`
}

// Report is the aggregated output of all rules. Sections only exist for rules
// that produced at least one finding.
type Report struct {
	Sections []ReportSection `json:"sections"`
}

// Empty reports whether no rule produced a finding.
func (r Report) Empty() bool {
	return len(r.Sections) == 0
}

// FindingCount returns the total number of findings across sections.
func (r Report) FindingCount() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.Findings)
	}
	return n
}

// Section returns the section for rule, if present.
func (r Report) Section(rule Rule) (ReportSection, bool) {
	for _, s := range r.Sections {
		if s.Rule == rule {
			return s, true
		}
	}
	return ReportSection{}, false
}

// Lines renders the report as a header line per section followed by its
// findings.
func (r Report) Lines() []string {
	if r.Empty() {
		return []string{NoInconsistenciesMessage}
	}
	lines := make([]string, 0, len(r.Sections)+r.FindingCount())
	for _, s := range r.Sections {
		lines = append(lines, s.Title)
		for _, f := range s.Findings {
			lines = append(lines, f.Message())
		}
	}
	return lines
}
