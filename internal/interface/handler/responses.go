package handler

import (
	"flight-audit-service/internal/domain/entity"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ImportResponse is returned by POST /api/flights/import.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// FindingResponse is one finding in the detailed report.
type FindingResponse struct {
	Kind           entity.FindingKind   `json:"kind"`
	Aircraft       string               `json:"aircraft,omitempty"`
	Message        string               `json:"message"`
	Flight         entity.FlightRecord  `json:"flight"`
	PreviousFlight *entity.FlightRecord `json:"previousFlight,omitempty"`
	ElapsedMinutes *int64               `json:"elapsedMinutes,omitempty"`
}

// SectionResponse groups the findings of one rule.
type SectionResponse struct {
	Rule     entity.Rule       `json:"rule"`
	Title    string            `json:"title"`
	Findings []FindingResponse `json:"findings"`
}

// DetailedReportResponse is returned by ?format=detailed.
type DetailedReportResponse struct {
	Consistent bool              `json:"consistent"`
	Findings   int               `json:"findingCount"`
	Sections   []SectionResponse `json:"sections"`
}

func detailedReport(report entity.Report) DetailedReportResponse {
	resp := DetailedReportResponse{
		Consistent: report.Empty(),
		Findings:   report.FindingCount(),
		Sections:   make([]SectionResponse, 0, len(report.Sections)),
	}
	for _, s := range report.Sections {
		section := SectionResponse{
			Rule:     s.Rule,
			Title:    s.Title,
			Findings: make([]FindingResponse, 0, len(s.Findings)),
		}
		for _, f := range s.Findings {
			fr := FindingResponse{
				Kind:           f.Kind,
				Aircraft:       f.Aircraft,
				Message:        f.Message(),
				Flight:         f.Current,
				PreviousFlight: f.Previous,
			}
			if f.Kind == entity.KindShortTurnaround {
				minutes := f.ElapsedMinutes()
				fr.ElapsedMinutes = &minutes
			}
			section.Findings = append(section.Findings, fr)
		}
		resp.Sections = append(resp.Sections, section)
	}
	return resp
}
