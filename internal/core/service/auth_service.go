package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mutreserve/reservation-system/internal/api/metrics"
	"github.com/mutreserve/reservation-system/internal/core/domain"
	"github.com/mutreserve/reservation-system/internal/core/ports"
)

// builtinAccount is a fixed account that exists without a credential record.
type builtinAccount struct {
	password string
	role     string
}

// builtinAccounts are the two accounts the system ships with. Their roles
// are fixed: registration can never produce an admin.
var builtinAccounts = map[string]builtinAccount{
	"admin": {password: "admin123", role: domain.RoleAdmin},
	"user":  {password: "user123", role: domain.RoleUser},
}

// AuthService implements registration, login, and session teardown.
type AuthService struct {
	repo      ports.AuthRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Login authenticates username/password, opens a session, and returns a
// signed bearer token. Unknown usernames and wrong passwords both fail with
// ErrInvalidCredentials; nothing is mutated on failure.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.resolveUser(ctx, username, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, err
	}

	token, sessionID, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	principal := domain.Principal{Username: user.Username, Role: user.Role}
	if err := s.sessions.Save(ctx, sessionID, principal, s.tokenTTL); err != nil {
		return "", nil, fmt.Errorf("open session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login")
	return token, user, nil
}

func (s *AuthService) resolveUser(ctx context.Context, username, password string) (*domain.User, error) {
	if builtin, ok := builtinAccounts[username]; ok {
		if subtle.ConstantTimeCompare([]byte(builtin.password), []byte(password)) != 1 {
			return nil, domain.ErrInvalidCredentials
		}
		return &domain.User{Username: username, Role: builtin.role}, nil
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Register creates a new account. The role is always "user"; duplicate
// usernames and duplicate emails are both rejected. A builtin account name
// can never be re-registered.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	if username == "" || password == "" || email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, ok := builtinAccounts[username]; ok {
		return nil, domain.ErrUserExists
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Msg("user registered")
	return created, nil
}

// Logout destroys the session. The bearer token stays syntactically valid
// until expiry, but without a session key it no longer authenticates.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	s.log.Info().Str("session_id", sessionID).Msg("logout")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, string, error) {
	sessionID := newSessionID()
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"sid":      sessionID,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", "", err
	}
	return signed, sessionID, nil
}

// newSessionID returns an opaque session identifier.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
