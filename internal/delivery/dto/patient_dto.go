package dto

// PatientRequest carries caller-supplied patient data. Dates are raw strings
// in yyyy-MM-dd format; registeredDate is only mandatory when creating.
type PatientRequest struct {
	Name           string `json:"name" validate:"notblank,max=100"`
	Email          string `json:"email" validate:"notblank,email"`
	Address        string `json:"address" validate:"notblank"`
	DateOfBirth    string `json:"dateOfBirth" validate:"notblank,datefmt"`
	RegisteredDate string `json:"registeredDate" validate:"omitempty,datefmt"`
}

// PatientResponse is the read-only projection of a patient record
type PatientResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	DateOfBirth    string `json:"dateOfBirth"`
	RegisteredDate string `json:"registeredDate"`
}

// PatientPageResponse is one page of patient records
type PatientPageResponse struct {
	Content       []PatientResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}
