package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Arunkumar3624/EMS/internal/domain"
)

// Типы токенов в claims
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims - полезная нагрузка подписанных токенов
type Claims struct {
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет пары access/refresh токенов
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager создаёт новый экземпляр менеджера токенов
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GeneratePair выпускает новую пару access/refresh токенов для пользователя
func (m *TokenManager) GeneratePair(userID int64) (access string, refresh string, err error) {
	access, err = m.sign(userID, TokenTypeAccess, m.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = m.sign(userID, TokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ValidateAccess проверяет access токен и возвращает его claims
func (m *TokenManager) ValidateAccess(token string) (*Claims, error) {
	return m.validate(token, TokenTypeAccess)
}

// ValidateRefresh проверяет refresh токен и возвращает его claims
func (m *TokenManager) ValidateRefresh(token string) (*Claims, error) {
	return m.validate(token, TokenTypeRefresh)
}

func (m *TokenManager) sign(userID int64, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) validate(tokenString, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Допускаем только HMAC подпись
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
