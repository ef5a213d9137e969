package ports

import (
	"context"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// EmployeeRepository defines the interface for staff account persistence.
type EmployeeRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.InternalEmployee, error)
	Create(ctx context.Context, employee *domain.InternalEmployee) (*domain.InternalEmployee, error)
}
