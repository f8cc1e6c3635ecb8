package environment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrEnvironmentNotFound is returned when an environment is not found.
	ErrEnvironmentNotFound = errors.New("environment not found")

	// ErrInvalidEnvironmentName is returned when an environment name is empty.
	ErrInvalidEnvironmentName = errors.New("environment name is required")

	// ErrInvalidEnvironmentURL is returned when an environment URL is empty.
	ErrInvalidEnvironmentURL = errors.New("environment URL is required")

	// ErrInvalidStatus is returned when a status is not recognized.
	ErrInvalidStatus = errors.New("invalid environment status")

	// ErrDuplicateEnvironmentName is returned when an environment with the
	// same name already exists.
	ErrDuplicateEnvironmentName = errors.New("environment name already exists")
)

// Status represents the operator-asserted health of an environment. It is
// curated by hand; nothing probes the URL.
type Status string

const (
	StatusUp          Status = "Up"
	StatusDown        Status = "Down"
	StatusMaintenance Status = "Maintenance"
)

// IsValid checks if the status is valid.
func (s Status) IsValid() bool {
	switch s {
	case StatusUp, StatusDown, StatusMaintenance:
		return true
	default:
		return false
	}
}

// Environment represents an application environment record.
type Environment struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex:idx_environments_name;not null"`
	URL         string    `json:"url" gorm:"not null"`
	Status      Status    `json:"status" gorm:"type:varchar(20);not null;default:'Maintenance'"`
	LastChecked time.Time `json:"last_checked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate hook to generate UUID before creating a new environment.
func (e *Environment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Validate checks if the environment has valid required fields.
func (e *Environment) Validate() error {
	if e.Name == "" {
		return ErrInvalidEnvironmentName
	}
	if e.URL == "" {
		return ErrInvalidEnvironmentURL
	}
	if !e.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
