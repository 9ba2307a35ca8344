package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/cors"

	"github.com/Arunkumar3624/EMS/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	authHandler *AuthHandler
	empHandler  *EmployeeHandler
	attHandler  *AttendanceHandler
	perfHandler *PerformanceHandler
	userHandler *UserHandler
	authMW      func(http.Handler) http.Handler
}

// NewRouter создаёт новый роутер
func NewRouter(
	authHandler *AuthHandler,
	empHandler *EmployeeHandler,
	attHandler *AttendanceHandler,
	perfHandler *PerformanceHandler,
	userHandler *UserHandler,
	authMW func(http.Handler) http.Handler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		logger:      logger,
		authHandler: authHandler,
		empHandler:  empHandler,
		attHandler:  attHandler,
		perfHandler: perfHandler,
		userHandler: userHandler,
		authMW:      authMW,
	}
}

// resource описывает стандартный набор CRUD обработчиков коллекции
type resource struct {
	list     http.HandlerFunc
	create   http.HandlerFunc
	retrieve func(http.ResponseWriter, *http.Request, int64)
	update   func(http.ResponseWriter, *http.Request, int64)
	delete   func(http.ResponseWriter, *http.Request, int64)
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Аутентификация не требуется
	r.mux.HandleFunc("/signup/", r.postOnly(r.authHandler.Signup))
	r.mux.HandleFunc("/login/", r.postOnly(r.authHandler.Login))
	r.mux.HandleFunc("/token/refresh/", r.postOnly(r.authHandler.Refresh))

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Всё остальное за bearer токеном
	r.protect("/my-profile/", r.getOnly(r.authHandler.MyProfile))
	r.protect("/dashboard/", r.getOnly(r.userHandler.Dashboard))
	r.protect("/performance/", r.performanceRouter)

	r.protect("/admin-api/employees/", r.resourceRouter("/admin-api/employees", resource{
		list:     r.empHandler.List,
		create:   r.empHandler.Create,
		retrieve: r.empHandler.Retrieve,
		update:   r.empHandler.Update,
		delete:   r.empHandler.Delete,
	}))
	r.protect("/admin-api/users/", r.resourceRouter("/admin-api/users", resource{
		list:     r.userHandler.List,
		retrieve: r.userHandler.Retrieve,
	}))
	r.protect("/employee-api/profile/", r.resourceRouter("/employee-api/profile", resource{
		list:     r.empHandler.ProfileList,
		retrieve: r.empHandler.ProfileRetrieve,
	}))
	r.protect("/employee-api/attendance/", r.resourceRouter("/employee-api/attendance", resource{
		list:     r.attHandler.ScopedList,
		create:   r.attHandler.Create,
		retrieve: r.attHandler.ScopedRetrieve,
		update:   r.attHandler.ScopedUpdate,
		delete:   r.attHandler.ScopedDelete,
	}))
	r.protect("/attendance/", r.resourceRouter("/attendance", resource{
		list:     r.attHandler.List,
		create:   r.attHandler.Create,
		retrieve: r.attHandler.Retrieve,
		update:   r.attHandler.Update,
		delete:   r.attHandler.Delete,
	}))

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	// Фронтенд живёт на другом origin
	return cors.AllowAll().Handler(handler)
}

// protect регистрирует обработчик за middleware аутентификации
func (r *Router) protect(pattern string, h http.HandlerFunc) {
	r.mux.Handle(pattern, r.authMW(h))
}

func (r *Router) postOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		h(w, req)
	}
}

func (r *Router) getOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		h(w, req)
	}
}

// resourceRouter обрабатывает коллекцию по стандартной схеме
// list/create на корне и retrieve/update/delete на /{id}
func (r *Router) resourceRouter(prefix string, res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		path := strings.TrimPrefix(req.URL.Path, prefix)
		path = strings.Trim(path, "/")

		if path == "" {
			switch {
			case req.Method == http.MethodGet && res.list != nil:
				res.list(w, req)
			case req.Method == http.MethodPost && res.create != nil:
				res.create(w, req)
			default:
				methodNotAllowed(w)
			}
			return
		}

		parts := strings.Split(path, "/")
		if len(parts) != 1 {
			notFound(w)
			return
		}

		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			http.Error(w, `{"error":"invalid id"}`, http.StatusBadRequest)
			return
		}

		switch {
		case req.Method == http.MethodGet && res.retrieve != nil:
			res.retrieve(w, req, id)
		case (req.Method == http.MethodPut || req.Method == http.MethodPatch) && res.update != nil:
			res.update(w, req, id)
		case req.Method == http.MethodDelete && res.delete != nil:
			res.delete(w, req, id)
		default:
			methodNotAllowed(w)
		}
	}
}

// performanceRouter обрабатывает /performance/, /performance/{id}/
// и /performance/latest/{employee_id}/
func (r *Router) performanceRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/performance")
	path = strings.Trim(path, "/")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.perfHandler.List(w, req)
		case http.MethodPost:
			r.perfHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	parts := strings.Split(path, "/")

	if len(parts) == 2 && parts[0] == "latest" {
		employeeID, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			http.Error(w, `{"error":"invalid id"}`, http.StatusBadRequest)
			return
		}
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.perfHandler.Latest(w, req, employeeID)
		return
	}

	if len(parts) == 1 {
		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			http.Error(w, `{"error":"invalid id"}`, http.StatusBadRequest)
			return
		}

		switch req.Method {
		case http.MethodGet:
			r.perfHandler.Retrieve(w, req, id)
		case http.MethodPut, http.MethodPatch:
			r.perfHandler.Update(w, req, id)
		case http.MethodDelete:
			r.perfHandler.Delete(w, req, id)
		default:
			methodNotAllowed(w)
		}
		return
	}

	notFound(w)
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}
