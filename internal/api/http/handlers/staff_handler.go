package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/elegance-studio/salon-service/internal/api/dto"
	"github.com/elegance-studio/salon-service/internal/domain"
	"github.com/elegance-studio/salon-service/internal/store"
	apperrors "github.com/elegance-studio/salon-service/pkg/errorutil"
)

// StaffHandler exposes the staff directory operations.
type StaffHandler struct {
	directory *store.StaffDirectory
}

// NewStaffHandler constructs handler.
func NewStaffHandler(directory *store.StaffDirectory) *StaffHandler {
	return &StaffHandler{directory: directory}
}

// List handles GET /staff. Supports specialty and active filters.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	var members []domain.StaffMember
	switch {
	case c.Query("specialty") != "":
		members = h.directory.BySpecialty(c.Query("specialty"))
	case parseBoolQuery(c, "active", false):
		members = h.directory.Active()
	default:
		members = h.directory.All()
	}
	return c.JSON(fiber.Map{"data": staffResponses(members)})
}

// Available handles GET /staff/available.
func (h *StaffHandler) Available(c *fiber.Ctx) error {
	date := c.Query("date")
	clock := c.Query("time")
	service := c.Query("service")
	if date == "" || clock == "" || service == "" {
		return apperrors.NewValidationError("date, time and service are required", nil)
	}

	members, err := h.directory.Available(date, clock, service)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponses(members)})
}

// Create handles POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	created, err := h.directory.Add(c.UserContext(), req.ToMember())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": staffResponse(created)})
}

// Update handles PUT /staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req dto.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	updated, err := h.directory.Update(c.UserContext(), id, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(updated)})
}

// Delete handles DELETE /staff/:id. Removing an unknown id still
// succeeds.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	h.directory.Remove(c.UserContext(), id)
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "removed"}})
}

func parseIDParam(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

func parseBoolQuery(c *fiber.Ctx, key string, defaultVal bool) bool {
	if val := c.Query(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func staffResponse(m *domain.StaffMember) dto.StaffResponse {
	return dto.StaffResponse{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Role:        m.Role,
		Specialties: m.Specialties,
		Rating:      m.Rating,
		Commission:  m.Commission,
		Experience:  m.Experience,
		Schedule:    m.Schedule,
		Status:      m.Status,
		Avatar:      m.Avatar,
	}
}

func staffResponses(members []domain.StaffMember) []dto.StaffResponse {
	resp := make([]dto.StaffResponse, 0, len(members))
	for i := range members {
		resp = append(resp, staffResponse(&members[i]))
	}
	return resp
}
