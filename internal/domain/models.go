package domain

import (
	"time"
)

// Роли сотрудников
const (
	RoleEmployee  = "employee"
	RoleAdmin     = "admin"
	RoleSuperuser = "superuser"
)

// Статусы посещаемости
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// ValidRole проверяет, что значение роли входит в список допустимых
func ValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleAdmin, RoleSuperuser:
		return true
	}
	return false
}

// DeriveRole вычисляет роль по флагам учётной записи (superuser > admin > employee)
func DeriveRole(isStaff, isSuperuser bool) string {
	if isSuperuser {
		return RoleSuperuser
	}
	if isStaff {
		return RoleAdmin
	}
	return RoleEmployee
}

// User представляет учётную запись (identity)
type User struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username    string    `json:"username" gorm:"type:varchar(150);not null;uniqueIndex"`
	Email       string    `json:"email" gorm:"type:varchar(254);not null;uniqueIndex"`
	Password    string    `json:"-" gorm:"type:varchar(128);not null"`
	IsStaff     bool      `json:"is_staff" gorm:"not null;default:false"`
	IsSuperuser bool      `json:"is_superuser" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (User) TableName() string {
	return "users"
}

// Employee представляет профиль сотрудника
type Employee struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     int64     `json:"user_id" gorm:"not null;uniqueIndex"`
	Name       string    `json:"name" gorm:"type:varchar(200);not null;default:''"`
	Department *string   `json:"department" gorm:"type:varchar(100)"`
	Address    string    `json:"address" gorm:"type:text;not null;default:''"`
	Phone      string    `json:"phone" gorm:"type:varchar(30);not null;default:''"`
	Role       string    `json:"role" gorm:"type:varchar(20);not null;default:'employee'"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Attendance представляет отметку посещаемости за календарный день
type Attendance struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID int64     `json:"employee_id" gorm:"not null;uniqueIndex:idx_attendance_employee_date"`
	Date       time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_date"`
	Status     string    `json:"status" gorm:"type:varchar(10);not null;default:'absent'"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Attendance) TableName() string {
	return "attendances"
}

// Performance представляет запись оценки работы сотрудника
type Performance struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID int64     `json:"employee_id" gorm:"not null;index"`
	Task       string    `json:"task" gorm:"type:varchar(255);not null;default:''"`
	Rating     *int      `json:"rating" gorm:"type:smallint"`
	Remarks    string    `json:"remarks" gorm:"type:text;not null;default:''"`
	Date       time.Time `json:"date" gorm:"type:date;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Performance) TableName() string {
	return "performances"
}

// DateOnly обрезает время до календарного дня в UTC.
// Посещаемость и оценки хранят только дату, сравнение должно быть стабильным.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
