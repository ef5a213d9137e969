package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// memEmployeeRepo is an in-memory EmployeeRepository keyed by email.
type memEmployeeRepo struct {
	rows map[string]*domain.InternalEmployee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{rows: make(map[string]*domain.InternalEmployee)}
}

func (r *memEmployeeRepo) FindByEmail(_ context.Context, email string) (*domain.InternalEmployee, error) {
	if e, ok := r.rows[email]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) Create(_ context.Context, e *domain.InternalEmployee) (*domain.InternalEmployee, error) {
	if _, exists := r.rows[e.Email]; exists {
		return nil, domain.ErrEmployeeExists
	}
	e.ID = uuid.NewString()
	copied := *e
	r.rows[e.Email] = &copied
	return e, nil
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo := newMemEmployeeRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	employee, err := svc.Register(ctx, "  Alice@Example.com ", "supersecret", "Alice Doe", domain.RoleRecruiter)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if employee.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", employee.Email)
	}
	if employee.PasswordHash == "supersecret" || employee.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}

	token, loggedIn, err := svc.Login(ctx, "alice@example.com", "supersecret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.Email != "alice@example.com" {
		t.Fatalf("unexpected employee: %+v", loggedIn)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["email"] != "alice@example.com" || claims["role"] != domain.RoleRecruiter {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims["employee_id"] == "" {
		t.Fatalf("missing employee_id claim")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newMemEmployeeRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "bob@example.com", "supersecret", "Bob", domain.RoleAdmin); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(ctx, "BOB@example.com", "othersecret", "Bob Again", domain.RoleAdmin)
	if !errors.Is(err, domain.ErrEmployeeExists) {
		t.Fatalf("expected ErrEmployeeExists, got %v", err)
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(newMemEmployeeRepo(), "test-secret", time.Hour)

	_, err := svc.Register(context.Background(), "eve@example.com", "supersecret", "Eve", "superuser")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newMemEmployeeRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice@example.com", "supersecret", "Alice", domain.RoleAdmin); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailHidesExistence(t *testing.T) {
	svc := NewAuthService(newMemEmployeeRepo(), "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
