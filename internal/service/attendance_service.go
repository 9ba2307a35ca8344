package service

import (
	"context"
	"time"

	"github.com/Arunkumar3624/EMS/internal/domain"
	"github.com/Arunkumar3624/EMS/internal/dto"
	"github.com/Arunkumar3624/EMS/internal/policy"
	"github.com/Arunkumar3624/EMS/internal/repository"
)

// AttendanceService определяет интерфейс бизнес-логики посещаемости.
// Общая поверхность (/attendance/) намеренно не ограничивает выборку;
// поверхность самообслуживания (/employee-api/attendance/) ограничивает
// сотрудника его собственными записями.
type AttendanceService interface {
	List(ctx context.Context) ([]domain.Attendance, error)
	Get(ctx context.Context, id int64) (*domain.Attendance, error)
	Create(ctx context.Context, identity policy.Identity, req *dto.CreateAttendanceRequest) (*domain.Attendance, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*domain.Attendance, error)
	Delete(ctx context.Context, id int64) error

	ListScoped(ctx context.Context, identity policy.Identity) ([]domain.Attendance, error)
	GetScoped(ctx context.Context, identity policy.Identity, id int64) (*domain.Attendance, error)
	UpdateScoped(ctx context.Context, identity policy.Identity, id int64, req *dto.UpdateAttendanceRequest) (*domain.Attendance, error)
	DeleteScoped(ctx context.Context, identity policy.Identity, id int64) error
}

type attendanceService struct {
	attRepo repository.AttendanceRepository
	empRepo repository.EmployeeRepository
}

// NewAttendanceService создаёт новый экземпляр сервиса
func NewAttendanceService(attRepo repository.AttendanceRepository, empRepo repository.EmployeeRepository) AttendanceService {
	return &attendanceService{
		attRepo: attRepo,
		empRepo: empRepo,
	}
}

func (s *attendanceService) List(ctx context.Context) ([]domain.Attendance, error) {
	return s.attRepo.List(ctx)
}

func (s *attendanceService) Get(ctx context.Context, id int64) (*domain.Attendance, error) {
	return s.attRepo.GetByID(ctx, id)
}

func (s *attendanceService) Create(ctx context.Context, identity policy.Identity, req *dto.CreateAttendanceRequest) (*domain.Attendance, error) {
	var employeeID int64

	switch {
	case identity.HasEmployee() && !identity.IsStaff:
		// Сотрудник отмечает только себя: переданный employee_id игнорируется
		employeeID = *identity.EmployeeID
	case identity.IsAdmin():
		if req.EmployeeID == nil {
			return nil, domain.ErrEmployeeRequired
		}
		if _, err := s.empRepo.GetByID(ctx, *req.EmployeeID); err != nil {
			return nil, err
		}
		employeeID = *req.EmployeeID
	default:
		return nil, domain.ErrPermissionDenied
	}

	date := domain.DateOnly(time.Now())
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, err
		}
		date = domain.DateOnly(parsed)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusAbsent
	}

	// Пара (сотрудник, дата) уникальна; проверяем до записи,
	// чтобы нарушение ограничения не всплыло как 500
	exists, err := s.attRepo.ExistsByEmployeeAndDate(ctx, employeeID, date, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateAttendance
	}

	att := &domain.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}

	if err := s.attRepo.Create(ctx, att); err != nil {
		return nil, err
	}

	return s.attRepo.GetByID(ctx, att.ID)
}

func (s *attendanceService) Update(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*domain.Attendance, error) {
	att, err := s.attRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, att, req)
}

func (s *attendanceService) Delete(ctx context.Context, id int64) error {
	return s.attRepo.Delete(ctx, id)
}

func (s *attendanceService) ListScoped(ctx context.Context, identity policy.Identity) ([]domain.Attendance, error) {
	if identity.IsAdmin() {
		return s.attRepo.List(ctx)
	}
	if !identity.HasEmployee() {
		return []domain.Attendance{}, nil
	}
	return s.attRepo.ListByEmployee(ctx, *identity.EmployeeID)
}

func (s *attendanceService) GetScoped(ctx context.Context, identity policy.Identity, id int64) (*domain.Attendance, error) {
	att, err := s.attRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() && !policy.OwnsEmployee(identity, att.EmployeeID) {
		return nil, domain.ErrAttendanceNotFound
	}
	return att, nil
}

func (s *attendanceService) UpdateScoped(ctx context.Context, identity policy.Identity, id int64, req *dto.UpdateAttendanceRequest) (*domain.Attendance, error) {
	att, err := s.GetScoped(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutateAttendance(identity, att) {
		return nil, domain.ErrPermissionDenied
	}
	return s.applyUpdate(ctx, att, req)
}

func (s *attendanceService) DeleteScoped(ctx context.Context, identity policy.Identity, id int64) error {
	att, err := s.GetScoped(ctx, identity, id)
	if err != nil {
		return err
	}
	if !policy.CanMutateAttendance(identity, att) {
		return domain.ErrPermissionDenied
	}
	return s.attRepo.Delete(ctx, att.ID)
}

func (s *attendanceService) applyUpdate(ctx context.Context, att *domain.Attendance, req *dto.UpdateAttendanceRequest) (*domain.Attendance, error) {
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, err
		}
		date := domain.DateOnly(parsed)

		exists, err := s.attRepo.ExistsByEmployeeAndDate(ctx, att.EmployeeID, date, &att.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateAttendance
		}
		att.Date = date
	}
	if req.Status != nil {
		att.Status = *req.Status
	}

	if err := s.attRepo.Update(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}
