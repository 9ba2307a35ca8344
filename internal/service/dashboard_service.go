package service

import (
	"context"

	"github.com/Arunkumar3624/EMS/internal/dto"
	"github.com/Arunkumar3624/EMS/internal/repository"
)

// DashboardService отдаёт сводные счётчики для главной страницы
type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	empRepo  repository.EmployeeRepository
	attRepo  repository.AttendanceRepository
	perfRepo repository.PerformanceRepository
}

// NewDashboardService создаёт новый экземпляр сервиса
func NewDashboardService(
	empRepo repository.EmployeeRepository,
	attRepo repository.AttendanceRepository,
	perfRepo repository.PerformanceRepository,
) DashboardService {
	return &dashboardService{
		empRepo:  empRepo,
		attRepo:  attRepo,
		perfRepo: perfRepo,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	employees, err := s.empRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	attendance, err := s.attRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	performance, err := s.perfRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalEmployees:   employees,
		TotalAttendance:  attendance,
		TotalPerformance: performance,
	}, nil
}
