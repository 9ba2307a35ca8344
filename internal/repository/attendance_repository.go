package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Arunkumar3624/EMS/internal/domain"
)

// AttendanceRepository определяет интерфейс для работы с посещаемостью
type AttendanceRepository interface {
	Create(ctx context.Context, att *domain.Attendance) error
	GetByID(ctx context.Context, id int64) (*domain.Attendance, error)
	List(ctx context.Context) ([]domain.Attendance, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error)
	Update(ctx context.Context, att *domain.Attendance) error
	Delete(ctx context.Context, id int64) error
	// ExistsByEmployeeAndDate проверяет уникальность пары (сотрудник, дата);
	// excludeID исключает саму запись при обновлении.
	ExistsByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time, excludeID *int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository создаёт новый экземпляр репозитория
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (*domain.Attendance, error) {
	var att domain.Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Employee.User").
		First(&att, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) List(ctx context.Context) ([]domain.Attendance, error) {
	var records []domain.Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Employee.User").
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	var records []domain.Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Employee.User").
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) Update(ctx context.Context, att *domain.Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

func (r *attendanceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Attendance{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAttendanceNotFound
	}
	return nil
}

func (r *attendanceRepository) ExistsByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time, excludeID *int64) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Attendance{}).
		Where("employee_id = ? AND date = ?", employeeID, date)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *attendanceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Attendance{}).Count(&count).Error
	return count, err
}
