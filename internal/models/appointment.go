package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Owner information
	FullName string `gorm:"size:255;not null" json:"fullName"`
	Email    string `gorm:"size:255;not null" json:"email"`
	Phone    string `gorm:"size:50;not null" json:"phone"`
	PetName  string `gorm:"size:255;not null" json:"petName"`

	// Pet details
	PetType string  `gorm:"size:50;not null" json:"petType"`
	PetAge  *string `gorm:"size:50" json:"petAge"`

	// Appointment details
	PreferredDate string `gorm:"size:50;not null" json:"preferredDate"`
	PreferredTime string `gorm:"size:50;not null" json:"preferredTime"`
	ServiceType   string `gorm:"size:100;not null" json:"serviceType"`

	Notes *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
