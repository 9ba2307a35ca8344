package handler

import (
	"log/slog"
	"net/http"

	"github.com/Arunkumar3624/EMS/internal/dto"
	"github.com/Arunkumar3624/EMS/internal/service"
)

type UserHandler struct {
	userService      service.UserService
	dashboardService service.DashboardService
	logger           *slog.Logger
}

func NewUserHandler(userService service.UserService, dashboardService service.DashboardService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService:      userService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	users, err := h.userService.List(r.Context(), identity)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = toUserResponse(&users[i])
	}
	respondJSON(h.logger, w, http.StatusOK, responses)
}

func (h *UserHandler) Retrieve(w http.ResponseWriter, r *http.Request, id int64) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	user, err := h.userService.Get(r.Context(), identity, id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toUserResponse(user))
}

// Dashboard - сводные счётчики для главной страницы
func (h *UserHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFrom(h.logger, w, r); !ok {
		return
	}

	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, summary)
}
