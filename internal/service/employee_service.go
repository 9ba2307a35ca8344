package service

import (
	"context"
	"strings"

	"github.com/Arunkumar3624/EMS/internal/domain"
	"github.com/Arunkumar3624/EMS/internal/dto"
	"github.com/Arunkumar3624/EMS/internal/policy"
	"github.com/Arunkumar3624/EMS/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	// Административная поверхность: чтение масштабируется по роли,
	// запись требует прав администратора или владения записью.
	List(ctx context.Context, identity policy.Identity) ([]domain.Employee, error)
	Get(ctx context.Context, identity policy.Identity, id int64) (*domain.Employee, error)
	Create(ctx context.Context, identity policy.Identity, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, identity policy.Identity, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, identity policy.Identity, id int64) error

	// Поверхность самообслуживания: только собственный профиль
	OwnProfiles(ctx context.Context, identity policy.Identity) ([]domain.Employee, error)
	OwnProfile(ctx context.Context, identity policy.Identity, id int64) (*domain.Employee, error)
}

type employeeService struct {
	empRepo  repository.EmployeeRepository
	userRepo repository.UserRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository, userRepo repository.UserRepository) EmployeeService {
	return &employeeService{
		empRepo:  empRepo,
		userRepo: userRepo,
	}
}

func (s *employeeService) List(ctx context.Context, identity policy.Identity) ([]domain.Employee, error) {
	if identity.IsAdmin() {
		return s.empRepo.List(ctx)
	}

	// Сотрудник видит только собственный профиль; без профиля - пустой список
	emp, err := s.empRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if err == domain.ErrEmployeeNotFound {
			return []domain.Employee{}, nil
		}
		return nil, err
	}
	return []domain.Employee{*emp}, nil
}

func (s *employeeService) Get(ctx context.Context, identity policy.Identity, id int64) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Вне видимой выборки запись неотличима от несуществующей
	if !identity.IsAdmin() && emp.UserID != identity.UserID {
		return nil, domain.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *employeeService) Create(ctx context.Context, identity policy.Identity, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if !policy.CanCreateEmployee(identity) {
		return nil, domain.ErrPermissionDenied
	}

	// Проверяем существование учётной записи
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	// Один профиль на учётную запись
	exists, err := s.empRepo.ExistsByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrProfileExists
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = user.Username
	}

	role := req.Role
	if role == "" {
		role = domain.RoleEmployee
	}

	emp := &domain.Employee{
		UserID:     req.UserID,
		Name:       name,
		Department: req.Department,
		Address:    req.Address,
		Phone:      req.Phone,
		Role:       role,
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return s.empRepo.GetByID(ctx, emp.ID)
}

func (s *employeeService) Update(ctx context.Context, identity policy.Identity, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	emp, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanModifyEmployee(identity, emp) {
		return nil, domain.ErrPermissionDenied
	}

	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.Address != nil {
		emp.Address = *req.Address
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	// Изменение роли не-администратором молча отбрасывается,
	// остальные поля при этом сохраняются
	if req.Role != nil && identity.IsAdmin() {
		emp.Role = *req.Role
	}

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, identity policy.Identity, id int64) error {
	if !identity.IsAdmin() {
		return domain.ErrPermissionDenied
	}

	return s.empRepo.Delete(ctx, id)
}

func (s *employeeService) OwnProfiles(ctx context.Context, identity policy.Identity) ([]domain.Employee, error) {
	emp, err := s.empRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if err == domain.ErrEmployeeNotFound {
			return []domain.Employee{}, nil
		}
		return nil, err
	}
	return []domain.Employee{*emp}, nil
}

func (s *employeeService) OwnProfile(ctx context.Context, identity policy.Identity, id int64) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp.UserID != identity.UserID {
		return nil, domain.ErrEmployeeNotFound
	}
	return emp, nil
}
