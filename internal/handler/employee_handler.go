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

type EmployeeHandler struct {
	empService service.EmployeeService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	employees, err := h.empService.List(r.Context(), identity)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, h.toResponses(employees))
}

func (h *EmployeeHandler) Retrieve(w http.ResponseWriter, r *http.Request, id int64) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	emp, err := h.empService.Get(r.Context(), identity, id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emp, err := h.empService.Create(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request, id int64) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emp, err := h.empService.Update(r.Context(), identity, id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request, id int64) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	if err := h.empService.Delete(r.Context(), identity, id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ProfileList - поверхность самообслуживания: список из собственного профиля
func (h *EmployeeHandler) ProfileList(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	employees, err := h.empService.OwnProfiles(r.Context(), identity)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, h.toResponses(employees))
}

// ProfileRetrieve - чтение собственного профиля по id
func (h *EmployeeHandler) ProfileRetrieve(w http.ResponseWriter, r *http.Request, id int64) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	emp, err := h.empService.OwnProfile(r.Context(), identity, id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) toResponses(employees []domain.Employee) []dto.EmployeeResponse {
	responses := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = toEmployeeResponse(&employees[i])
	}
	return responses
}
