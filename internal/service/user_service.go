package service

import (
	"context"

	"github.com/Arunkumar3624/EMS/internal/domain"
	"github.com/Arunkumar3624/EMS/internal/policy"
	"github.com/Arunkumar3624/EMS/internal/repository"
)

// UserService определяет интерфейс чтения учётных записей (только админ)
type UserService interface {
	List(ctx context.Context, identity policy.Identity) ([]domain.User, error)
	Get(ctx context.Context, identity policy.Identity, id int64) (*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService создаёт новый экземпляр сервиса
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context, identity policy.Identity) ([]domain.User, error) {
	if !policy.CanListUsers(identity) {
		return nil, domain.ErrPermissionDenied
	}
	return s.userRepo.List(ctx)
}

func (s *userService) Get(ctx context.Context, identity policy.Identity, id int64) (*domain.User, error) {
	if !policy.CanListUsers(identity) {
		return nil, domain.ErrPermissionDenied
	}
	return s.userRepo.GetByID(ctx, id)
}
