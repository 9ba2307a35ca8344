package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Arunkumar3624/EMS/internal/domain"
	"github.com/Arunkumar3624/EMS/internal/dto"
	"github.com/Arunkumar3624/EMS/internal/service"
)

type PerformanceHandler struct {
	perfService service.PerformanceService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewPerformanceHandler(perfService service.PerformanceService, logger *slog.Logger) *PerformanceHandler {
	return &PerformanceHandler{
		perfService: perfService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *PerformanceHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	records, err := h.perfService.List(r.Context(), identity)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, h.toResponses(records))
}

func (h *PerformanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	var req dto.CreatePerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	perf, err := h.perfService.Create(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, toPerformanceResponse(perf))
}

func (h *PerformanceHandler) Retrieve(w http.ResponseWriter, r *http.Request, id int64) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	perf, err := h.perfService.Get(r.Context(), identity, id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toPerformanceResponse(perf))
}

func (h *PerformanceHandler) Update(w http.ResponseWriter, r *http.Request, id int64) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	var req dto.UpdatePerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	perf, err := h.perfService.Update(r.Context(), identity, id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toPerformanceResponse(perf))
}

func (h *PerformanceHandler) Delete(w http.ResponseWriter, r *http.Request, id int64) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	if err := h.perfService.Delete(r.Context(), identity, id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Latest - три именованные метрики последней оценки сотрудника
func (h *PerformanceHandler) Latest(w http.ResponseWriter, r *http.Request, employeeID int64) {
	metrics, err := h.perfService.LatestMetrics(r.Context(), employeeID)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, metrics)
}

func (h *PerformanceHandler) toResponses(records []domain.Performance) []dto.PerformanceResponse {
	responses := make([]dto.PerformanceResponse, len(records))
	for i := range records {
		responses[i] = toPerformanceResponse(&records[i])
	}
	return responses
}
