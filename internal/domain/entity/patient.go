package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a registered patient record
type Patient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex:idx_patients_email;not null" json:"email"`
	Address        string    `gorm:"type:text;not null" json:"address"`
	DateOfBirth    time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	RegisteredDate time.Time `gorm:"type:date;not null" json:"registered_date"`
}

func (Patient) TableName() string {
	return "patients"
}
