package appointment

import (
	"context"

	"github.com/quochuydev/pet-app/internal/models"
)

type Repository interface {
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)
}
