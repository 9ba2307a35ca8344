package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Arunkumar3624/EMS/internal/domain"
	"github.com/Arunkumar3624/EMS/internal/dto"
	"github.com/Arunkumar3624/EMS/internal/middleware"
	"github.com/Arunkumar3624/EMS/internal/policy"
)

const dateLayout = "2006-01-02"

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// identityFrom достаёт Identity из контекста; отсутствие означает, что
// маршрут не обёрнут в Authenticate
func identityFrom(logger *slog.Logger, w http.ResponseWriter, r *http.Request) (policy.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(logger, w, http.StatusUnauthorized, "authentication required", "")
		return policy.Identity{}, false
	}
	return identity, true
}

// handleServiceError отображает бизнес-ошибки в HTTP статусы
func handleServiceError(logger *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		respondError(logger, w, http.StatusNotFound, "user not found", "")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		respondError(logger, w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrAttendanceNotFound):
		respondError(logger, w, http.StatusNotFound, "attendance record not found", "")
	case errors.Is(err, domain.ErrPerformanceNotFound):
		respondError(logger, w, http.StatusNotFound, "performance record not found", "")
	case errors.Is(err, domain.ErrUsernameTaken):
		respondError(logger, w, http.StatusBadRequest, "username already exists", "")
	case errors.Is(err, domain.ErrEmailTaken):
		respondError(logger, w, http.StatusBadRequest, "email already exists", "")
	case errors.Is(err, domain.ErrInvalidRole):
		respondError(logger, w, http.StatusBadRequest, "invalid role, use 'employee', 'admin' or 'superuser'", "")
	case errors.Is(err, domain.ErrAmbiguousEmail):
		respondError(logger, w, http.StatusBadRequest, "multiple accounts found, contact admin", "")
	case errors.Is(err, domain.ErrCredentialsMissing):
		respondError(logger, w, http.StatusBadRequest, "username/email and password required", "")
	case errors.Is(err, domain.ErrEmployeeRequired):
		respondError(logger, w, http.StatusBadRequest, "employee must be selected", "")
	case errors.Is(err, domain.ErrEmployeeRefInvalid):
		respondError(logger, w, http.StatusBadRequest, "referenced employee does not exist", "")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(logger, w, http.StatusUnauthorized, "invalid credentials", "")
	case errors.Is(err, domain.ErrInvalidToken):
		respondError(logger, w, http.StatusUnauthorized, "invalid or expired token", "")
	case errors.Is(err, domain.ErrPermissionDenied):
		respondError(logger, w, http.StatusForbidden, "permission denied", "")
	case errors.Is(err, domain.ErrDuplicateAttendance):
		respondError(logger, w, http.StatusConflict, "attendance for this employee and date already exists", "")
	case errors.Is(err, domain.ErrProfileExists):
		respondError(logger, w, http.StatusConflict, "employee profile already exists for this user", "")
	default:
		logger.Error("internal error", slog.Any("error", err))
		respondError(logger, w, http.StatusInternalServerError, "internal server error", "")
	}
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
	}
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Department: emp.Department,
		Address:    emp.Address,
		Phone:      emp.Phone,
		Role:       emp.Role,
		CreatedAt:  emp.CreatedAt,
	}
	if emp.User != nil {
		resp.User = toUserResponse(emp.User)
	}
	return resp
}

func toAttendanceResponse(att *domain.Attendance) dto.AttendanceResponse {
	resp := dto.AttendanceResponse{
		ID:     att.ID,
		Date:   att.Date.Format(dateLayout),
		Status: att.Status,
	}
	if att.Employee != nil {
		resp.Employee = toEmployeeResponse(att.Employee)
	}
	return resp
}

func toPerformanceResponse(perf *domain.Performance) dto.PerformanceResponse {
	resp := dto.PerformanceResponse{
		ID:      perf.ID,
		Task:    perf.Task,
		Rating:  perf.Rating,
		Remarks: perf.Remarks,
		Date:    perf.Date.Format(dateLayout),
	}
	if perf.Employee != nil {
		resp.Employee = toEmployeeResponse(perf.Employee)
	}
	return resp
}
