package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Arunkumar3624/EMS/internal/auth"
	"github.com/Arunkumar3624/EMS/internal/domain"
	"github.com/Arunkumar3624/EMS/internal/handler"
	"github.com/Arunkumar3624/EMS/internal/middleware"
	"github.com/Arunkumar3624/EMS/internal/service"
)

const testPassword = "password123"

type mockUserRepo struct {
	users   map[int64]*domain.User
	nextID  int64
	empRepo *mockEmployeeRepo
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:  make(map[int64]*domain.User),
		nextID: 1,
	}
}

func (m *mockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User, profileRole string) error {
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.nextID++
	m.users[user.ID] = user

	// get-or-create профиля, как в транзакции настоящего репозитория
	if emp, err := m.empRepo.GetByUserID(ctx, user.ID); err == nil {
		user.Employee = emp
		return nil
	}
	emp := &domain.Employee{
		UserID: user.ID,
		Name:   user.Username,
		Role:   profileRole,
	}
	if err := m.empRepo.Create(ctx, emp); err != nil {
		return err
	}
	user.Employee = emp
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *user
	if emp, err := m.empRepo.GetByUserID(ctx, id); err == nil {
		cp.Employee = emp
	} else {
		cp.Employee = nil
	}
	return &cp, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	for id, user := range m.users {
		if strings.EqualFold(user.Username, username) {
			return m.GetByID(ctx, id)
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) ([]domain.User, error) {
	var result []domain.User
	for id, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			cp, _ := m.GetByID(ctx, id)
			result = append(result, *cp)
		}
	}
	return result, nil
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	for _, user := range m.users {
		if strings.EqualFold(user.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(m.users))
	for _, user := range m.users {
		result = append(result, *user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type mockEmployeeRepo struct {
	employees map[int64]*domain.Employee
	nextID    int64
	userRepo  *mockUserRepo
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[int64]*domain.Employee),
		nextID:    1,
	}
}

func (m *mockEmployeeRepo) withUser(emp *domain.Employee) *domain.Employee {
	cp := *emp
	if user, ok := m.userRepo.users[emp.UserID]; ok {
		ucp := *user
		ucp.Employee = nil
		cp.User = &ucp
	}
	return &cp
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	emp.ID = m.nextID
	emp.CreatedAt = time.Now()
	if emp.Role == "" {
		emp.Role = domain.RoleEmployee
	}
	m.nextID++
	m.employees[emp.ID] = emp
	return nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, ok := m.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return m.withUser(emp), nil
}

func (m *mockEmployeeRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Employee, error) {
	for _, emp := range m.employees {
		if emp.UserID == userID {
			return m.withUser(emp), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	result := make([]domain.Employee, 0, len(m.employees))
	for _, emp := range m.employees {
		result = append(result, *m.withUser(emp))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockEmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	stored := *emp
	stored.User = nil
	m.employees[emp.ID] = &stored
	return nil
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepo) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	for _, emp := range m.employees {
		if emp.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.employees)), nil
}

type mockAttendanceRepo struct {
	records map[int64]*domain.Attendance
	nextID  int64
	empRepo *mockEmployeeRepo
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{
		records: make(map[int64]*domain.Attendance),
		nextID:  1,
	}
}

func (m *mockAttendanceRepo) withEmployee(att *domain.Attendance) *domain.Attendance {
	cp := *att
	if emp, err := m.empRepo.GetByID(context.Background(), att.EmployeeID); err == nil {
		cp.Employee = emp
	}
	return &cp
}

func (m *mockAttendanceRepo) Create(ctx context.Context, att *domain.Attendance) error {
	att.ID = m.nextID
	att.CreatedAt = time.Now()
	m.nextID++
	m.records[att.ID] = att
	return nil
}

func (m *mockAttendanceRepo) GetByID(ctx context.Context, id int64) (*domain.Attendance, error) {
	att, ok := m.records[id]
	if !ok {
		return nil, domain.ErrAttendanceNotFound
	}
	return m.withEmployee(att), nil
}

func (m *mockAttendanceRepo) List(ctx context.Context) ([]domain.Attendance, error) {
	result := make([]domain.Attendance, 0, len(m.records))
	for _, att := range m.records {
		result = append(result, *m.withEmployee(att))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (m *mockAttendanceRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	var result []domain.Attendance
	for _, att := range m.records {
		if att.EmployeeID == employeeID {
			result = append(result, *m.withEmployee(att))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (m *mockAttendanceRepo) Update(ctx context.Context, att *domain.Attendance) error {
	stored := *att
	stored.Employee = nil
	m.records[att.ID] = &stored
	return nil
}

func (m *mockAttendanceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.records[id]; !ok {
		return domain.ErrAttendanceNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *mockAttendanceRepo) ExistsByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time, excludeID *int64) (bool, error) {
	for _, att := range m.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			if excludeID != nil && att.ID == *excludeID {
				continue
			}
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAttendanceRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.records)), nil
}

type mockPerformanceRepo struct {
	records map[int64]*domain.Performance
	nextID  int64
	empRepo *mockEmployeeRepo
}

func newMockPerformanceRepo() *mockPerformanceRepo {
	return &mockPerformanceRepo{
		records: make(map[int64]*domain.Performance),
		nextID:  1,
	}
}

func (m *mockPerformanceRepo) withEmployee(perf *domain.Performance) *domain.Performance {
	cp := *perf
	if emp, err := m.empRepo.GetByID(context.Background(), perf.EmployeeID); err == nil {
		cp.Employee = emp
	}
	return &cp
}

func (m *mockPerformanceRepo) Create(ctx context.Context, perf *domain.Performance) error {
	perf.ID = m.nextID
	perf.CreatedAt = time.Now()
	m.nextID++
	m.records[perf.ID] = perf
	return nil
}

func (m *mockPerformanceRepo) GetByID(ctx context.Context, id int64) (*domain.Performance, error) {
	perf, ok := m.records[id]
	if !ok {
		return nil, domain.ErrPerformanceNotFound
	}
	return m.withEmployee(perf), nil
}

func (m *mockPerformanceRepo) List(ctx context.Context) ([]domain.Performance, error) {
	result := make([]domain.Performance, 0, len(m.records))
	for _, perf := range m.records {
		result = append(result, *m.withEmployee(perf))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (m *mockPerformanceRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Performance, error) {
	var result []domain.Performance
	for _, perf := range m.records {
		if perf.EmployeeID == employeeID {
			result = append(result, *m.withEmployee(perf))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (m *mockPerformanceRepo) LatestByEmployee(ctx context.Context, employeeID int64) (*domain.Performance, error) {
	var latest *domain.Performance
	for _, perf := range m.records {
		if perf.EmployeeID != employeeID {
			continue
		}
		if latest == nil || perf.Date.After(latest.Date) {
			latest = perf
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (m *mockPerformanceRepo) Update(ctx context.Context, perf *domain.Performance) error {
	stored := *perf
	stored.Employee = nil
	m.records[perf.ID] = &stored
	return nil
}

func (m *mockPerformanceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.records[id]; !ok {
		return domain.ErrPerformanceNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *mockPerformanceRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.records)), nil
}

type testServer struct {
	server   *httptest.Server
	userRepo *mockUserRepo
	empRepo  *mockEmployeeRepo
	attRepo  *mockAttendanceRepo
	perfRepo *mockPerformanceRepo
	tokens   *auth.TokenManager
}

func setupTestServer(_ *testing.T) *testServer {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	userRepo := newMockUserRepo()
	empRepo := newMockEmployeeRepo()
	attRepo := newMockAttendanceRepo()
	perfRepo := newMockPerformanceRepo()
	userRepo.empRepo = empRepo
	empRepo.userRepo = userRepo
	attRepo.empRepo = empRepo
	perfRepo.empRepo = empRepo

	tokens := auth.NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	authService := service.NewAuthService(userRepo, tokens)
	empService := service.NewEmployeeService(empRepo, userRepo)
	attService := service.NewAttendanceService(attRepo, empRepo)
	perfService := service.NewPerformanceService(perfRepo, empRepo)
	userService := service.NewUserService(userRepo)
	dashboardService := service.NewDashboardService(empRepo, attRepo, perfRepo)

	authHandler := handler.NewAuthHandler(authService, logger)
	empHandler := handler.NewEmployeeHandler(empService, logger)
	attHandler := handler.NewAttendanceHandler(attService, logger)
	perfHandler := handler.NewPerformanceHandler(perfService, logger)
	userHandler := handler.NewUserHandler(userService, dashboardService, logger)

	authMW := middleware.Authenticate(tokens, userRepo)
	router := handler.NewRouter(authHandler, empHandler, attHandler, perfHandler, userHandler, authMW, logger)

	return &testServer{
		server:   httptest.NewServer(router.Setup()),
		userRepo: userRepo,
		empRepo:  empRepo,
		attRepo:  attRepo,
		perfRepo: perfRepo,
		tokens:   tokens,
	}
}

func (ts *testServer) Close() {
	ts.server.Close()
}

// createUser кладёт пользователя с профилем прямо в моки и возвращает его
func (ts *testServer) createUser(t *testing.T, username, role string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}

	user := &domain.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	switch role {
	case domain.RoleAdmin:
		user.IsStaff = true
	case domain.RoleSuperuser:
		user.IsStaff = true
		user.IsSuperuser = true
	}

	if err := ts.userRepo.CreateWithProfile(context.Background(), user, role); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func (ts *testServer) accessToken(t *testing.T, userID int64) string {
	t.Helper()
	access, _, err := ts.tokens.GeneratePair(userID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return access
}

func (ts *testServer) request(t *testing.T, method, path, token string, body map[string]any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, ts.server.URL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return result
}
