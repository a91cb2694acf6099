package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/elegance-studio/salon-service/internal/api/dto"
	"github.com/elegance-studio/salon-service/internal/domain"
	"github.com/elegance-studio/salon-service/internal/store"
	apperrors "github.com/elegance-studio/salon-service/pkg/errorutil"
)

// AppointmentsHandler exposes the booking ledger operations.
type AppointmentsHandler struct {
	ledger *store.AppointmentLedger
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(ledger *store.AppointmentLedger) *AppointmentsHandler {
	return &AppointmentsHandler{ledger: ledger}
}

// Book handles POST /appointments.
func (h *AppointmentsHandler) Book(c *fiber.Ctx) error {
	var req dto.AppointmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	booking := req.ToAppointment()
	created, err := h.ledger.Book(c.UserContext(), &booking)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": appointmentResponse(created)})
}

// Lookup handles GET /appointments/lookup. It returns the first
// appointment for the email, matching the original display behavior.
func (h *AppointmentsHandler) Lookup(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	appt, err := h.ledger.FindByEmail(email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": appointmentResponse(appt)})
}

// List handles GET /appointments. With an email filter it returns every
// booking for that customer.
func (h *AppointmentsHandler) List(c *fiber.Ctx) error {
	var appts []domain.Appointment
	if email := c.Query("email"); email != "" {
		appts = h.ledger.ListByEmail(email)
	} else {
		appts = h.ledger.All()
	}

	resp := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		resp = append(resp, appointmentResponse(&appts[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Cancel handles DELETE /appointments/:id. Cancelling an unknown id
// still succeeds.
func (h *AppointmentsHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	h.ledger.Cancel(c.UserContext(), id)
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "cancelled"}})
}

func appointmentResponse(a *domain.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:      a.ID,
		Email:   a.Email,
		Date:    a.Date,
		Time:    a.Time,
		Service: a.Service,
		StaffID: a.StaffID,
		Details: a.Details,
	}
}
