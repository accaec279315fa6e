package appointment

import (
	"context"

	"github.com/quochuydev/pet-app/internal/audit"
	domain "github.com/quochuydev/pet-app/internal/domain/appointment"
	"github.com/quochuydev/pet-app/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in domain.Submission,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Required fields, first failure wins
	// --------------------------------------------------
	if err := in.ValidateRequired(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Optional fields persist as NULL, never ""
	// --------------------------------------------------
	petAge := in.PetAge
	if petAge != nil && *petAge == "" {
		petAge = nil
	}

	notes := in.Notes
	if notes != nil && *notes == "" {
		notes = nil
	}

	// --------------------------------------------------
	// 3. Persist
	// --------------------------------------------------
	ap := &models.Appointment{
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		PetName:       in.PetName,
		PetType:       in.PetType,
		PetAge:        petAge,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		ServiceType:   in.ServiceType,
		Notes:         notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
