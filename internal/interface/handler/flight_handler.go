package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"flight-audit-service/internal/domain/entity"
	"flight-audit-service/internal/domain/repository"
	"flight-audit-service/pkg/logger"
	"flight-audit-service/pkg/utils"
)

const maxImportBytes = 32 << 20

// FlightAuditService defines the operations the flight endpoints need.
type FlightAuditService interface {
	ListFlights(ctx context.Context) ([]entity.FlightRecord, error)
	CheckInconsistencies(ctx context.Context) (entity.Report, error)
	ImportFlights(ctx context.Context, csvData io.Reader) (int, error)
}

// FlightHandler wires flight endpoints to the audit service.
type FlightHandler struct {
	service FlightAuditService
	logger  logger.Logger
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(service FlightAuditService, logger logger.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		logger:  logger,
	}
}

// Register mounts flight endpoints on the router.
func (h *FlightHandler) Register(r chi.Router) {
	r.Route("/api/flights", func(r chi.Router) {
		r.Get("/", h.HandleListFlights)
		r.Get("/inconsistencies", h.HandleCheckInconsistencies)
		r.Post("/import", h.HandleImportFlights)
	})
}

// HandleListFlights handles GET /api/flights. With ?format=csv the records are
// returned as CSV instead of JSON.
func (h *FlightHandler) HandleListFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.ListFlights(r.Context())
	if err != nil {
		h.respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		if err := utils.WriteFlightsCsv(w, flights); err != nil {
			h.logger.Error("Failed to write flights CSV", "error", err)
		}
		return
	}

	h.respondWithJSON(w, http.StatusOK, flights)
}

// HandleCheckInconsistencies handles GET /api/flights/inconsistencies. The
// default body is the rendered report lines; ?format=detailed returns the
// structured sections instead.
func (h *FlightHandler) HandleCheckInconsistencies(w http.ResponseWriter, r *http.Request) {
	reportID := uuid.NewString()
	w.Header().Set("X-Report-ID", reportID)

	report, err := h.service.CheckInconsistencies(r.Context())
	if err != nil {
		h.logger.Error("Inconsistency check failed", "reportID", reportID, "error", err)
		h.respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	h.logger.Debug("Inconsistency report ready", "reportID", reportID, "findings", report.FindingCount())

	if r.URL.Query().Get("format") == "detailed" {
		h.respondWithJSON(w, http.StatusOK, detailedReport(report))
		return
	}
	h.respondWithJSON(w, http.StatusOK, report.Lines())
}

// HandleImportFlights handles POST /api/flights/import with a CSV body.
func (h *FlightHandler) HandleImportFlights(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	n, err := h.service.ImportFlights(r.Context(), http.MaxBytesReader(w, r.Body, maxImportBytes))
	switch {
	case err == nil:
		h.respondWithJSON(w, http.StatusOK, ImportResponse{Imported: n})
	case errors.Is(err, repository.ErrDecode):
		h.respondWithError(w, http.StatusBadRequest, err)
	case errors.Is(err, repository.ErrReadOnly):
		h.respondWithError(w, http.StatusNotImplemented, err)
	default:
		h.respondWithError(w, http.StatusInternalServerError, err)
	}
}

func (h *FlightHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func (h *FlightHandler) respondWithError(w http.ResponseWriter, code int, err error) {
	h.logger.Warn("API error", "status", code, "error", err)
	h.respondWithJSON(w, code, ErrorResponse{Error: err.Error()})
}
