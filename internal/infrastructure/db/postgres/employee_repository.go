package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// EmployeeRepository persists staff accounts.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.InternalEmployee, error) {
	var row employeeRow
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return row.toDomain(), nil
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.InternalEmployee) (*domain.InternalEmployee, error) {
	row := employeeRow{
		ID:           uuid.NewString(),
		Email:        employee.Email,
		FullName:     employee.FullName,
		PasswordHash: employee.PasswordHash,
		Role:         employee.Role,
		CreatedAt:    employee.CreatedAt,
		UpdatedAt:    employee.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmployeeExists
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return row.toDomain(), nil
}
