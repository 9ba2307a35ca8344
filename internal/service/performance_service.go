package service

import (
	"context"
	"time"

	"github.com/Arunkumar3624/EMS/internal/domain"
	"github.com/Arunkumar3624/EMS/internal/dto"
	"github.com/Arunkumar3624/EMS/internal/policy"
	"github.com/Arunkumar3624/EMS/internal/repository"
)

// PerformanceService определяет интерфейс бизнес-логики оценок работы
type PerformanceService interface {
	List(ctx context.Context, identity policy.Identity) ([]domain.Performance, error)
	Get(ctx context.Context, identity policy.Identity, id int64) (*domain.Performance, error)
	Create(ctx context.Context, identity policy.Identity, req *dto.CreatePerformanceRequest) (*domain.Performance, error)
	Update(ctx context.Context, identity policy.Identity, id int64, req *dto.UpdatePerformanceRequest) (*domain.Performance, error)
	Delete(ctx context.Context, identity policy.Identity, id int64) error
	// LatestMetrics возвращает три именованные метрики последней оценки
	// сотрудника; нули, когда оценок нет
	LatestMetrics(ctx context.Context, employeeID int64) ([]dto.MetricResponse, error)
}

type performanceService struct {
	perfRepo repository.PerformanceRepository
	empRepo  repository.EmployeeRepository
}

// NewPerformanceService создаёт новый экземпляр сервиса
func NewPerformanceService(perfRepo repository.PerformanceRepository, empRepo repository.EmployeeRepository) PerformanceService {
	return &performanceService{
		perfRepo: perfRepo,
		empRepo:  empRepo,
	}
}

func (s *performanceService) List(ctx context.Context, identity policy.Identity) ([]domain.Performance, error) {
	if identity.IsAdmin() {
		return s.perfRepo.List(ctx)
	}
	// Сотрудник без профиля не имеет записей - 404
	if !identity.HasEmployee() {
		return nil, domain.ErrEmployeeNotFound
	}
	return s.perfRepo.ListByEmployee(ctx, *identity.EmployeeID)
}

func (s *performanceService) Get(ctx context.Context, identity policy.Identity, id int64) (*domain.Performance, error) {
	perf, err := s.perfRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadPerformance(identity, perf) {
		return nil, domain.ErrPermissionDenied
	}
	return perf, nil
}

func (s *performanceService) Create(ctx context.Context, identity policy.Identity, req *dto.CreatePerformanceRequest) (*domain.Performance, error) {
	if !policy.CanManagePerformance(identity) {
		return nil, domain.ErrPermissionDenied
	}

	// Владелец обязателен и никогда не подставляется по умолчанию
	if req.EmployeeID == nil {
		return nil, domain.ErrEmployeeRequired
	}
	if _, err := s.empRepo.GetByID(ctx, *req.EmployeeID); err != nil {
		if err == domain.ErrEmployeeNotFound {
			return nil, domain.ErrEmployeeRefInvalid
		}
		return nil, err
	}

	date := domain.DateOnly(time.Now())
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, err
		}
		date = domain.DateOnly(parsed)
	}

	perf := &domain.Performance{
		EmployeeID: *req.EmployeeID,
		Task:       req.Task,
		Rating:     req.Rating,
		Remarks:    req.Remarks,
		Date:       date,
	}

	if err := s.perfRepo.Create(ctx, perf); err != nil {
		return nil, err
	}

	return s.perfRepo.GetByID(ctx, perf.ID)
}

func (s *performanceService) Update(ctx context.Context, identity policy.Identity, id int64, req *dto.UpdatePerformanceRequest) (*domain.Performance, error) {
	// Сначала проверка чтения: не-владелец без прав получает 403
	perf, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanManagePerformance(identity) {
		return nil, domain.ErrPermissionDenied
	}

	if req.Task != nil {
		perf.Task = *req.Task
	}
	if req.Rating != nil {
		perf.Rating = req.Rating
	}
	if req.Remarks != nil {
		perf.Remarks = *req.Remarks
	}
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, err
		}
		perf.Date = domain.DateOnly(parsed)
	}

	if err := s.perfRepo.Update(ctx, perf); err != nil {
		return nil, err
	}
	return perf, nil
}

func (s *performanceService) Delete(ctx context.Context, identity policy.Identity, id int64) error {
	perf, err := s.Get(ctx, identity, id)
	if err != nil {
		return err
	}
	if !policy.CanManagePerformance(identity) {
		return domain.ErrPermissionDenied
	}
	return s.perfRepo.Delete(ctx, perf.ID)
}

func (s *performanceService) LatestMetrics(ctx context.Context, employeeID int64) ([]dto.MetricResponse, error) {
	perf, err := s.perfRepo.LatestByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if perf == nil {
		// Фронтенд рисует график и для сотрудников без оценок
		return []dto.MetricResponse{
			{Name: "Task", Value: 0},
			{Name: "Rating", Value: 0},
			{Name: "Remarks", Value: 0},
		}, nil
	}

	rating := 0
	if perf.Rating != nil {
		rating = *perf.Rating
	}

	return []dto.MetricResponse{
		{Name: "Task", Value: len(perf.Task)},
		{Name: "Rating", Value: rating},
		{Name: "Remarks", Value: len(perf.Remarks)},
	}, nil
}
