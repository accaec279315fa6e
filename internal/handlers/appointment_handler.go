package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/quochuydev/pet-app/internal/domain/appointment"
	"github.com/quochuydev/pet-app/internal/httperr"
	ucappointment "github.com/quochuydev/pet-app/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucappointment.CreateAppointment
	list   *ucappointment.ListAppointments
}

func NewAppointmentHandler(
	create *ucappointment.CreateAppointment,
	list *ucappointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		list:   list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	FullName      string  `json:"fullName"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	PetName       string  `json:"petName"`
	PetType       string  `json:"petType"`
	PetAge        *string `json:"petAge"`
	PreferredDate string  `json:"preferredDate"`
	PreferredTime string  `json:"preferredTime"`
	ServiceType   string  `json:"serviceType"`
	Notes         *string `json:"notes"`
}

// ======================================================
// CREATE (public booking form)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	// An unreadable body leaves req zero-valued; validation then reports
	// the first required field as missing.
	_ = c.ShouldBindJSON(&req)

	ap, err := h.create.Execute(c.Request.Context(), domain.Submission{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		PetName:       req.PetName,
		PetType:       req.PetType,
		PetAge:        req.PetAge,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		ServiceType:   req.ServiceType,
		Notes:         req.Notes,
	})

	if err != nil {
		var missing *domain.MissingFieldError
		if errors.As(err, &missing) {
			httperr.BadRequest(c, "Missing required field: "+missing.Field)
			return
		}

		httperr.Internal(c, "Failed to create appointment. Please try again.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Appointment booked successfully!",
		"appointment": ap,
	})
}

// ======================================================
// LIST (admin, behind the session middleware)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to fetch appointments.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"appointments": aps,
	})
}
