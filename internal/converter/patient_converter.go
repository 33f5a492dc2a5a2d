package converter

import (
	"errors"
	"fmt"
	"time"

	"patient-service/internal/delivery/dto"
	"patient-service/internal/domain/entity"
)

// DateLayout is the wire format for all patient dates.
const DateLayout = "2006-01-02"

// ErrInvalidDate marks a date string that matched the yyyy-MM-dd pattern but
// does not denote a real calendar date (e.g. 2024-02-30).
var ErrInvalidDate = errors.New("invalid date")

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             patient.ID.String(),
		Name:           patient.Name,
		Email:          patient.Email,
		Address:        patient.Address,
		DateOfBirth:    patient.DateOfBirth.Format(DateLayout),
		RegisteredDate: patient.RegisteredDate.Format(DateLayout),
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}

// PatientFromRequest builds a new Patient entity from a create request,
// parsing both date fields. The ID is left for the persistence layer.
func PatientFromRequest(req *dto.PatientRequest) (*entity.Patient, error) {
	dateOfBirth, err := parseDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	registeredDate, err := parseDate("registeredDate", req.RegisteredDate)
	if err != nil {
		return nil, err
	}

	return &entity.Patient{
		Name:           req.Name,
		Email:          req.Email,
		Address:        req.Address,
		DateOfBirth:    dateOfBirth,
		RegisteredDate: registeredDate,
	}, nil
}

// ApplyPatientRequest applies an update request onto an existing entity.
// ID and RegisteredDate are never overwritten.
func ApplyPatientRequest(patient *entity.Patient, req *dto.PatientRequest) error {
	dateOfBirth, err := parseDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return err
	}

	patient.Name = req.Name
	patient.Email = req.Email
	patient.Address = req.Address
	patient.DateOfBirth = dateOfBirth

	return nil
}

func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q", ErrInvalidDate, field, value)
	}
	return parsed, nil
}
