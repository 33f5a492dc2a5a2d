package usecase

import (
	"context"
	"errors"
	"strings"

	"patient-service/internal/converter"
	"patient-service/internal/delivery/dto"
	"patient-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrEmailExists     = errors.New("email already exists")
)

const (
	defaultPageSize = 10
	defaultSortKey  = "name"
)

// sortColumns whitelists the sortable response fields and maps them to their
// database columns.
var sortColumns = map[string]string{
	"name":           "name",
	"email":          "email",
	"dateOfBirth":    "date_of_birth",
	"registeredDate": "registered_date",
}

type PatientUsecase interface {
	GetPatients(ctx context.Context, page, size int, sort string) (*dto.PatientPageResponse, error)
	GetAllPatients(ctx context.Context) ([]dto.PatientResponse, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) GetPatients(ctx context.Context, page, size int, sort string) (*dto.PatientPageResponse, error) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = defaultPageSize
	}

	orderBy, ok := sortColumns[sort]
	if !ok {
		orderBy = sortColumns[defaultSortKey]
	}

	patients, total, err := u.patientRepo.FindPage(ctx, size, page*size, orderBy)
	if err != nil {
		u.log.Warnf("Failed to find patients page: %+v", err)
		return nil, err
	}

	totalPages := int(total) / size
	if int(total)%size > 0 {
		totalPages++
	}

	return &dto.PatientPageResponse{
		Content:       converter.PatientsToResponses(patients),
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

// CreatePatient persists a new patient after checking email uniqueness.
// The existence check and the insert are not atomic across concurrent
// requests; the unique index on patients.email backs the check, and its
// rejection surfaces as the same ErrEmailExists.
func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	exists, err := u.patientRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check patient email: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	patient, err := converter.PatientFromRequest(req)
	if err != nil {
		u.log.Warnf("Failed to map patient request: %+v", err)
		return nil, err
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"id": patient.ID, "email": patient.Email}).Info("Created new patient")

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Email comparison is case-sensitive, matching the uniqueness check.
	if patient.Email != req.Email {
		exists, err := u.patientRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			u.log.Warnf("Failed to check patient email: %+v", err)
			return nil, err
		}
		if exists {
			return nil, ErrEmailExists
		}
	}

	if err := converter.ApplyPatientRequest(patient, req); err != nil {
		u.log.Warnf("Failed to map patient request: %+v", err)
		return nil, err
	}

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id uuid.UUID) error {
	exists, err := u.patientRepo.ExistsByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to check patient: %+v", err)
		return err
	}
	if !exists {
		return ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	u.log.WithField("id", id).Info("Deleted patient")

	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
