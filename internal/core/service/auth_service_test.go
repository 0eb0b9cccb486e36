package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mutreserve/reservation-system/internal/core/domain"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubSessionStore struct {
	sessions map[string]domain.Principal
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Principal)}
}

func (s *stubSessionStore) Save(_ context.Context, sessionID string, p domain.Principal, _ time.Duration) error {
	s.sessions[sessionID] = p
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, sessionID string) (*domain.Principal, error) {
	p, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &p, nil
}

func (s *stubSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func newTestAuthService(repo *stubAuthRepo, sessions *stubSessionStore) *AuthService {
	return NewAuthService(repo, sessions, "secret", time.Hour, testLogger())
}

func TestAuthService_Login_BuiltinAdmin(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newTestAuthService(newStubAuthRepo(), sessions)

	token, user, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "admin" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		t.Fatalf("token missing session id")
	}
	if _, ok := sessions.sessions[sid]; !ok {
		t.Fatalf("session not persisted for %s", sid)
	}
}

func TestAuthService_Login_BuiltinUser(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo(), newStubSessionStore())

	_, user, err := svc.Login(context.Background(), "user", "user123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newTestAuthService(newStubAuthRepo(), sessions)

	if _, _, err := svc.Login(context.Background(), "admin", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("no session must be created on failed login")
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo(), newStubSessionStore())

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_RegisteredUser(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, newStubSessionStore())

	if _, err := svc.Register(context.Background(), "alice", "pass123", "alice@example.com"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, user, err := svc.Login(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "alice" || user.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, _, err := svc.Login(context.Background(), "alice", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_HashesPasswordAndForcesUserRole(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, newStubSessionStore())

	user, err := svc.Register(context.Background(), "bob", "pass123", "bob@example.com")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("registration must always produce role user, got %s", user.Role)
	}

	stored := repo.users["bob"]
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo(), newStubSessionStore())

	if _, err := svc.Register(context.Background(), "carol", "pass", "carol@example.com"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "carol", "pass2", "other@example.com"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "dave", "pass2", "carol@example.com"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "admin", "pass", "admin@example.com"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for builtin name, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo(), newStubSessionStore())

	if _, err := svc.Register(context.Background(), "", "pass", "x@example.com"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "eve", "", "x@example.com"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_DestroysSession(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newTestAuthService(newStubAuthRepo(), sessions)

	token, _, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	sid := claims["sid"].(string)

	if err := svc.Logout(context.Background(), sid); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := sessions.sessions[sid]; ok {
		t.Fatalf("session survived logout")
	}
}
