package service

import (
	"context"
	"time"

	"github.com/danyol08/transaction/internal/config"
	"github.com/danyol08/transaction/internal/dto"
	"github.com/danyol08/transaction/internal/model"
	"github.com/danyol08/transaction/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.CashierRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.CashierRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

// Login succeeds iff a cashier exists with matching username, matching
// password and active = true. Every failure collapses into the same
// ErrInvalidCredentials so the response leaks nothing about which check
// tripped.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	cashier, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !cashier.Active {
		return nil, ErrInvalidCredentials
	}

	ok, needsUpgrade := verifyPassword(cashier.PasswordHash, req.Password)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	// Verify-and-upgrade: rows migrated from the legacy deployment still
	// carry unsalted SHA-256 digests. Re-hash with bcrypt on first login;
	// a failure here must not block the login itself.
	if needsUpgrade {
		if hash, herr := hashPassword(req.Password); herr == nil {
			if uerr := s.repo.UpdatePasswordHash(ctx, cashier.Username, hash); uerr != nil {
				log.Warn().Err(uerr).Str("username", cashier.Username).
					Msg("legacy hash upgrade failed")
			}
		}
	}

	return s.tokenResponse(cashier)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	cashier, err := s.repo.FindByUsername(ctx, username)
	if err != nil || !cashier.Active {
		return nil, ErrInvalidCredentials
	}
	return s.tokenResponse(cashier)
}

func (s *authService) tokenResponse(cashier *model.Cashier) (*dto.LoginResponse, error) {
	access, err := s.generateToken(cashier, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generateToken(cashier, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User: dto.CashierResponse{
			ID:       cashier.ID.String(),
			Username: cashier.Username,
			FullName: cashier.FullName,
			Role:     cashier.Role,
			Active:   cashier.Active,
		},
	}, nil
}

func (s *authService) generateToken(cashier *model.Cashier, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  cashier.ID.String(),
		"username": cashier.Username,
		"role":     cashier.Role,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
