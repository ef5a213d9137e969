package ports

import (
	"context"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, fullName, role string) (*domain.InternalEmployee, error)
	Login(ctx context.Context, email, password string) (string, *domain.InternalEmployee, error)
}
