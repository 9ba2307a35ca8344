package policy

import (
	"github.com/Arunkumar3624/EMS/internal/domain"
)

// Identity описывает аутентифицированного пользователя запроса.
// EmployeeID равен nil, когда у учётной записи нет профиля сотрудника.
type Identity struct {
	UserID      int64
	Username    string
	Email       string
	IsStaff     bool
	IsSuperuser bool
	EmployeeID  *int64
}

// IsAdmin сообщает, имеет ли учётная запись административные права
func (i Identity) IsAdmin() bool {
	return i.IsStaff || i.IsSuperuser
}

// HasEmployee сообщает, привязан ли к учётной записи профиль сотрудника
func (i Identity) HasEmployee() bool {
	return i.EmployeeID != nil
}

// OwnsEmployee - строгая проверка владения: профиль запроса совпадает с
// профилем ресурса, без обхода для администраторов
func OwnsEmployee(i Identity, employeeID int64) bool {
	return i.EmployeeID != nil && *i.EmployeeID == employeeID
}

// AdminOrOwner разрешает операцию администратору либо владельцу ресурса
func AdminOrOwner(i Identity, employeeID int64) bool {
	return i.IsAdmin() || OwnsEmployee(i, employeeID)
}

// CanCreateEmployee: создавать профили сотрудников могут только администраторы
func CanCreateEmployee(i Identity) bool {
	return i.IsAdmin()
}

// CanModifyEmployee: профиль меняет администратор или владеющая учётная запись
func CanModifyEmployee(i Identity, emp *domain.Employee) bool {
	return i.IsAdmin() || emp.UserID == i.UserID
}

// CanMutateAttendance: отметку меняет администратор или владеющий сотрудник
func CanMutateAttendance(i Identity, att *domain.Attendance) bool {
	if i.IsAdmin() {
		return true
	}
	return OwnsEmployee(i, att.EmployeeID)
}

// CanManagePerformance: создание/изменение/удаление оценок - только администраторы
func CanManagePerformance(i Identity) bool {
	return i.IsAdmin()
}

// CanReadPerformance: оценку читает администратор или владеющий сотрудник
func CanReadPerformance(i Identity, perf *domain.Performance) bool {
	return AdminOrOwner(i, perf.EmployeeID)
}

// CanListUsers: список учётных записей доступен только администраторам
func CanListUsers(i Identity) bool {
	return i.IsAdmin()
}
