package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Arunkumar3624/EMS/internal/domain"
)

// UserRepository определяет интерфейс для работы с учётными записями
type UserRepository interface {
	// CreateWithProfile создаёт учётную запись и профиль сотрудника
	// одной транзакцией; профиль создаётся идемпотентно (get-or-create).
	CreateWithProfile(ctx context.Context, user *domain.User, profileRole string) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) ([]domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository создаёт новый экземпляр репозитория
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateWithProfile(ctx context.Context, user *domain.User, profileRole string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		// Явный вызов провиженинга вместо реактивного хука: каждый новый
		// пользователь получает профиль сотрудника в той же транзакции
		emp := domain.Employee{UserID: user.ID}
		err := tx.Where(domain.Employee{UserID: user.ID}).
			Attrs(domain.Employee{Name: user.Username, Role: profileRole}).
			FirstOrCreate(&emp).Error
		if err != nil {
			return err
		}

		user.Employee = &emp
		return nil
	})
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("Employee").First(&user, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("LOWER(username) = ?", strings.ToLower(username)).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Order("id ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}
