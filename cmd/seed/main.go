// Команда наполнения БД демонстрационными данными:
// один суперпользователь и 25 сотрудников. Запуск идемпотентен.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Arunkumar3624/EMS/internal/config"
	"github.com/Arunkumar3624/EMS/internal/domain"
	"github.com/Arunkumar3624/EMS/internal/repository"
)

var departments = []string{"IT", "HR", "Finance", "Marketing"}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	ctx := context.Background()

	if err := seedAdmin(ctx, userRepo); err != nil {
		logger.Error("failed to seed admin", slog.Any("error", err))
		os.Exit(1)
	}

	created := 0
	for i := 1; i <= 25; i++ {
		ok, err := seedEmployee(ctx, userRepo, empRepo, i)
		if err != nil {
			logger.Error("failed to seed employee", slog.Int("index", i), slog.Any("error", err))
			os.Exit(1)
		}
		if ok {
			created++
		}
	}

	logger.Info("seed finished", slog.Int("employees_created", created))
}

func seedAdmin(ctx context.Context, userRepo repository.UserRepository) error {
	exists, err := userRepo.ExistsByUsername(ctx, "admin")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Username:    "admin",
		Email:       "admin@example.com",
		Password:    string(hash),
		IsStaff:     true,
		IsSuperuser: true,
	}
	return userRepo.CreateWithProfile(ctx, admin, domain.RoleSuperuser)
}

func seedEmployee(ctx context.Context, userRepo repository.UserRepository, empRepo repository.EmployeeRepository, i int) (bool, error) {
	username := fmt.Sprintf("employee%d", i)

	exists, err := userRepo.ExistsByUsername(ctx, username)
	if err != nil || exists {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("employee123"), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	user := &domain.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	if err := userRepo.CreateWithProfile(ctx, user, domain.RoleEmployee); err != nil {
		return false, err
	}

	// Заполняем демо-поля профиля, созданного вместе с учётной записью
	emp, err := empRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return false, err
	}
	dept := departments[(i-1)%len(departments)]
	emp.Name = fmt.Sprintf("Employee %d", i)
	emp.Department = &dept
	emp.Address = fmt.Sprintf("City %d", i)
	emp.Phone = fmt.Sprintf("+1-555-01%02d", i)
	if err := empRepo.Update(ctx, emp); err != nil {
		return false, err
	}

	return true, nil
}
