package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"patient-service/internal/delivery/dto"
	"patient-service/internal/delivery/http/response"
	"patient-service/internal/usecase"
	"patient-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// GetPatients handles GET /api/patients with pagination
func (h *PatientHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	sort := r.URL.Query().Get("sort")

	patients, err := h.patientUsecase.GetPatients(r.Context(), page, size, sort)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

// GetAllPatients handles GET /api/patients/all without pagination
func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if details := h.validateRequest(&req, true); details != nil {
		response.ValidationFailed(w, details)
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if details := h.validateRequest(&req, false); details != nil {
		response.ValidationFailed(w, details)
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}

// validateRequest collects all field violations in one pass. registeredDate
// is only mandatory when creating.
func (h *PatientHandler) validateRequest(req *dto.PatientRequest, create bool) map[string]string {
	var details map[string]string
	if err := h.validator.Validate(req); err != nil {
		details = h.validator.FormatValidationErrors(err)
	}

	if create && strings.TrimSpace(req.RegisteredDate) == "" {
		if details == nil {
			details = make(map[string]string)
		}
		if _, ok := details["registeredDate"]; !ok {
			details["registeredDate"] = "Registered date is required"
		}
	}

	if len(details) == 0 {
		return nil
	}
	return details
}
