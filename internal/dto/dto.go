package dto

import (
	"time"
)

// SignupRequest - запрос на регистрацию учётной записи
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=1,max=128"`
	Role     string `json:"role" validate:"omitempty,max=20"`
}

// LoginRequest - запрос на вход: идентификатор передаётся в username или email
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest - запрос на обновление пары токенов
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// AuthResponse - ответ на регистрацию и вход
type AuthResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
}

// TokenPairResponse - свежая пара токенов
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// ProfileResponse - профиль текущего пользователя; поля сотрудника
// присутствуют только когда профиль сотрудника существует
type ProfileResponse struct {
	ID         int64   `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	EmployeeID *int64  `json:"employee_id,omitempty"`
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	Address    *string `json:"address,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

// UserResponse - данные учётной записи
type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// CreateEmployeeRequest - запрос на создание профиля сотрудника
type CreateEmployeeRequest struct {
	UserID     int64   `json:"user_id" validate:"required,min=1"`
	Name       string  `json:"name" validate:"max=200"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Address    string  `json:"address"`
	Phone      string  `json:"phone" validate:"max=30"`
	Role       string  `json:"role" validate:"omitempty,oneof=employee admin superuser"`
}

// UpdateEmployeeRequest - запрос на обновление профиля сотрудника
type UpdateEmployeeRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=200"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone" validate:"omitempty,max=30"`
	Role       *string `json:"role" validate:"omitempty,oneof=employee admin superuser"`
}

// EmployeeResponse - ответ с данными сотрудника и вложенной учётной записью
type EmployeeResponse struct {
	ID         int64        `json:"id"`
	User       UserResponse `json:"user"`
	Name       string       `json:"name"`
	Department *string      `json:"department"`
	Address    string       `json:"address"`
	Phone      string       `json:"phone"`
	Role       string       `json:"role"`
	CreatedAt  time.Time    `json:"created_at"`
}

// CreateAttendanceRequest - запрос на отметку посещаемости.
// employee_id принимается только от администраторов; для сотрудника
// запись всегда привязывается к его собственному профилю.
type CreateAttendanceRequest struct {
	EmployeeID *int64  `json:"employee_id" validate:"omitempty,min=1"`
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status     string  `json:"status" validate:"omitempty,oneof=present absent"`
}

// UpdateAttendanceRequest - запрос на обновление отметки посещаемости
type UpdateAttendanceRequest struct {
	Date   *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status *string `json:"status" validate:"omitempty,oneof=present absent"`
}

// AttendanceResponse - ответ с данными посещаемости
type AttendanceResponse struct {
	ID       int64            `json:"id"`
	Employee EmployeeResponse `json:"employee"`
	Date     string           `json:"date"`
	Status   string           `json:"status"`
}

// CreatePerformanceRequest - запрос на создание оценки работы
type CreatePerformanceRequest struct {
	EmployeeID *int64  `json:"employee_id" validate:"omitempty,min=1"`
	Task       string  `json:"task" validate:"max=255"`
	Rating     *int    `json:"rating" validate:"omitempty,min=0"`
	Remarks    string  `json:"remarks"`
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdatePerformanceRequest - частичное обновление оценки работы
type UpdatePerformanceRequest struct {
	Task    *string `json:"task" validate:"omitempty,max=255"`
	Rating  *int    `json:"rating" validate:"omitempty,min=0"`
	Remarks *string `json:"remarks"`
	Date    *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// PerformanceResponse - ответ с данными оценки работы
type PerformanceResponse struct {
	ID       int64            `json:"id"`
	Employee EmployeeResponse `json:"employee"`
	Task     string           `json:"task"`
	Rating   *int             `json:"rating"`
	Remarks  string           `json:"remarks"`
	Date     string           `json:"date"`
}

// MetricResponse - именованная метрика для графиков на фронтенде
type MetricResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DashboardResponse - сводные счётчики для главной страницы
type DashboardResponse struct {
	TotalEmployees   int64 `json:"total_employees"`
	TotalAttendance  int64 `json:"total_attendance"`
	TotalPerformance int64 `json:"total_performance"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
