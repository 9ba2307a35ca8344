package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Arunkumar3624/EMS/internal/auth"
	"github.com/Arunkumar3624/EMS/internal/domain"
	"github.com/Arunkumar3624/EMS/internal/dto"
	"github.com/Arunkumar3624/EMS/internal/policy"
	"github.com/Arunkumar3624/EMS/internal/repository"
)

// AuthService определяет интерфейс бизнес-логики аутентификации
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error)
	Profile(ctx context.Context, identity policy.Identity) (*dto.ProfileResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService создаёт новый экземпляр сервиса
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = domain.RoleEmployee
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	// Дубликаты проверяются без учёта регистра
	taken, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	switch role {
	case domain.RoleAdmin:
		user.IsStaff = true
	case domain.RoleSuperuser:
		user.IsStaff = true
		user.IsSuperuser = true
	}

	// Учётная запись и профиль сотрудника создаются одной транзакцией;
	// role в профиле - денормализованное отображаемое поле
	if err := s.userRepo.CreateWithProfile(ctx, user, role); err != nil {
		return nil, err
	}

	access, refresh, err := s.tokens.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     role,
		Access:   access,
		Refresh:  refresh,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	identifier := strings.TrimSpace(req.Username)
	if identifier == "" {
		identifier = strings.TrimSpace(req.Email)
	}
	if identifier == "" || req.Password == "" {
		return nil, domain.ErrCredentialsMissing
	}

	// Наличие "@" различает email и имя пользователя
	var user *domain.User
	if strings.Contains(identifier, "@") {
		matches, err := s.userRepo.FindByEmail(ctx, identifier)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, domain.ErrInvalidCredentials
		}
		if len(matches) > 1 {
			return nil, domain.ErrAmbiguousEmail
		}
		user = &matches[0]
	} else {
		found, err := s.userRepo.FindByUsername(ctx, identifier)
		if err != nil {
			if err == domain.ErrUserNotFound {
				return nil, domain.ErrInvalidCredentials
			}
			return nil, err
		}
		user = found
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	access, refresh, err := s.tokens.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}

	// Роль в ответе выводится из флагов, а не из сохранённого профиля
	return &dto.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     domain.DeriveRole(user.IsStaff, user.IsSuperuser),
		Access:   access,
		Refresh:  refresh,
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := s.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	// Учётная запись могла быть удалена после выпуска токена
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	access, refresh, err := s.tokens.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func (s *authService) Profile(ctx context.Context, identity policy.Identity) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfileResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}

	if user.Employee != nil {
		// Для профиля роль читается из сохранённого поля сотрудника
		emp := user.Employee
		resp.Role = emp.Role
		resp.EmployeeID = &emp.ID
		resp.Name = &emp.Name
		resp.Department = emp.Department
		resp.Address = &emp.Address
		resp.Phone = &emp.Phone
		return resp, nil
	}

	resp.Role = domain.DeriveRole(user.IsStaff, user.IsSuperuser)
	return resp, nil
}
