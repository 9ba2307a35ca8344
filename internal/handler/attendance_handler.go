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

type AttendanceHandler struct {
	attService service.AttendanceService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewAttendanceHandler(attService service.AttendanceService, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		attService: attService,
		validator:  validator.New(),
		logger:     logger,
	}
}

// List - общая поверхность: выборка намеренно не ограничена
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.attService.List(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, h.toResponses(records))
}

func (h *AttendanceHandler) Retrieve(w http.ResponseWriter, r *http.Request, id int64) {
	att, err := h.attService.Get(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toAttendanceResponse(att))
}

func (h *AttendanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	var req dto.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	att, err := h.attService.Create(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, toAttendanceResponse(att))
}

func (h *AttendanceHandler) Update(w http.ResponseWriter, r *http.Request, id int64) {
	req, ok := h.decodeUpdate(w, r)
	if !ok {
		return
	}

	att, err := h.attService.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toAttendanceResponse(att))
}

func (h *AttendanceHandler) Delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.attService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ScopedList - поверхность самообслуживания: админ видит всё, сотрудник - своё
func (h *AttendanceHandler) ScopedList(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	records, err := h.attService.ListScoped(r.Context(), identity)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, h.toResponses(records))
}

func (h *AttendanceHandler) ScopedRetrieve(w http.ResponseWriter, r *http.Request, id int64) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	att, err := h.attService.GetScoped(r.Context(), identity, id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toAttendanceResponse(att))
}

func (h *AttendanceHandler) ScopedUpdate(w http.ResponseWriter, r *http.Request, id int64) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	req, ok := h.decodeUpdate(w, r)
	if !ok {
		return
	}

	att, err := h.attService.UpdateScoped(r.Context(), identity, id, req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toAttendanceResponse(att))
}

func (h *AttendanceHandler) ScopedDelete(w http.ResponseWriter, r *http.Request, id int64) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	if err := h.attService.DeleteScoped(r.Context(), identity, id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AttendanceHandler) decodeUpdate(w http.ResponseWriter, r *http.Request) (*dto.UpdateAttendanceRequest, bool) {
	var req dto.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return nil, false
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return nil, false
	}

	return &req, true
}

func (h *AttendanceHandler) toResponses(records []domain.Attendance) []dto.AttendanceResponse {
	responses := make([]dto.AttendanceResponse, len(records))
	for i := range records {
		responses[i] = toAttendanceResponse(&records[i])
	}
	return responses
}
