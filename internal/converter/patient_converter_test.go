package converter

import (
	"testing"
	"time"

	"patient-service/internal/delivery/dto"
	"patient-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientToResponse(t *testing.T) {
	id := uuid.New()
	patient := &entity.Patient{
		ID:             id,
		Name:           "John Doe",
		Email:          "john.doe@example.com",
		Address:        "123 Main St",
		DateOfBirth:    time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		RegisteredDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	resp := PatientToResponse(patient)

	require.NotNil(t, resp)
	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, "John Doe", resp.Name)
	assert.Equal(t, "john.doe@example.com", resp.Email)
	assert.Equal(t, "123 Main St", resp.Address)
	assert.Equal(t, "1990-05-20", resp.DateOfBirth)
	assert.Equal(t, "2024-01-15", resp.RegisteredDate)
}

func TestPatientToResponse_Nil(t *testing.T) {
	assert.Nil(t, PatientToResponse(nil))
}

func TestPatientFromRequest(t *testing.T) {
	req := &dto.PatientRequest{
		Name:           "John Doe",
		Email:          "john.doe@example.com",
		Address:        "123 Main St",
		DateOfBirth:    "1990-05-20",
		RegisteredDate: "2024-01-15",
	}

	patient, err := PatientFromRequest(req)

	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, patient.ID)
	assert.Equal(t, time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC), patient.DateOfBirth)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), patient.RegisteredDate)

	// Round trip back through the response projection
	resp := PatientToResponse(patient)
	assert.Equal(t, req.DateOfBirth, resp.DateOfBirth)
	assert.Equal(t, req.RegisteredDate, resp.RegisteredDate)
}

func TestPatientFromRequest_ImpossibleDate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.PatientRequest)
	}{
		{
			name:   "impossible date of birth",
			mutate: func(r *dto.PatientRequest) { r.DateOfBirth = "2024-02-30" },
		},
		{
			name:   "impossible registered date",
			mutate: func(r *dto.PatientRequest) { r.RegisteredDate = "2024-13-01" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &dto.PatientRequest{
				Name:           "John Doe",
				Email:          "john.doe@example.com",
				Address:        "123 Main St",
				DateOfBirth:    "1990-05-20",
				RegisteredDate: "2024-01-15",
			}
			tt.mutate(req)

			_, err := PatientFromRequest(req)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestApplyPatientRequest(t *testing.T) {
	id := uuid.New()
	registered := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	patient := &entity.Patient{
		ID:             id,
		Name:           "John Doe",
		Email:          "john.doe@example.com",
		Address:        "123 Main St",
		DateOfBirth:    time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		RegisteredDate: registered,
	}

	req := &dto.PatientRequest{
		Name:           "Jane Doe",
		Email:          "jane.doe@example.com",
		Address:        "456 Oak Ave",
		DateOfBirth:    "1991-06-21",
		RegisteredDate: "2030-12-31",
	}

	require.NoError(t, ApplyPatientRequest(patient, req))

	assert.Equal(t, id, patient.ID)
	assert.Equal(t, "Jane Doe", patient.Name)
	assert.Equal(t, "jane.doe@example.com", patient.Email)
	assert.Equal(t, "456 Oak Ave", patient.Address)
	assert.Equal(t, time.Date(1991, 6, 21, 0, 0, 0, 0, time.UTC), patient.DateOfBirth)

	// Registered date is immutable after creation
	assert.Equal(t, registered, patient.RegisteredDate)
}

func TestApplyPatientRequest_InvalidDate(t *testing.T) {
	patient := &entity.Patient{Name: "John Doe"}
	req := &dto.PatientRequest{DateOfBirth: "2024-02-30"}

	err := ApplyPatientRequest(patient, req)

	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, "John Doe", patient.Name)
}
