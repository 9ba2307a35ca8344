package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Arunkumar3624/EMS/internal/domain"
)

// PerformanceRepository определяет интерфейс для работы с оценками
type PerformanceRepository interface {
	Create(ctx context.Context, perf *domain.Performance) error
	GetByID(ctx context.Context, id int64) (*domain.Performance, error)
	List(ctx context.Context) ([]domain.Performance, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Performance, error)
	// LatestByEmployee возвращает самую свежую оценку сотрудника либо nil
	LatestByEmployee(ctx context.Context, employeeID int64) (*domain.Performance, error)
	Update(ctx context.Context, perf *domain.Performance) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type performanceRepository struct {
	db *gorm.DB
}

// NewPerformanceRepository создаёт новый экземпляр репозитория
func NewPerformanceRepository(db *gorm.DB) PerformanceRepository {
	return &performanceRepository{db: db}
}

func (r *performanceRepository) Create(ctx context.Context, perf *domain.Performance) error {
	return r.db.WithContext(ctx).Create(perf).Error
}

func (r *performanceRepository) GetByID(ctx context.Context, id int64) (*domain.Performance, error) {
	var perf domain.Performance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Employee.User").
		First(&perf, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrPerformanceNotFound
		}
		return nil, err
	}
	return &perf, nil
}

func (r *performanceRepository) List(ctx context.Context) ([]domain.Performance, error) {
	var records []domain.Performance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Employee.User").
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (r *performanceRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Performance, error) {
	var records []domain.Performance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Employee.User").
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (r *performanceRepository) LatestByEmployee(ctx context.Context, employeeID int64) (*domain.Performance, error) {
	var perf domain.Performance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		First(&perf).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &perf, nil
}

func (r *performanceRepository) Update(ctx context.Context, perf *domain.Performance) error {
	return r.db.WithContext(ctx).Save(perf).Error
}

func (r *performanceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Performance{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPerformanceNotFound
	}
	return nil
}

func (r *performanceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Performance{}).Count(&count).Error
	return count, err
}
