package repository

import (
	"context"

	"patient-service/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	FindAll(ctx context.Context) ([]entity.Patient, error)
	FindPage(ctx context.Context, limit, offset int, orderBy string) ([]entity.Patient, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, patient *entity.Patient) error
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
}
