package handler

import (
	"errors"

	"github.com/fadilmartias/intern-coach/internal/dto"
	"github.com/fadilmartias/intern-coach/internal/repository"
	"github.com/fadilmartias/intern-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

type InternshipHandler struct {
	repo *repository.InternshipRepository
}

func NewInternshipHandler(repo *repository.InternshipRepository) *InternshipHandler {
	return &InternshipHandler{repo: repo}
}

func (h *InternshipHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/internships", h.List)
	api.Post("/internships", h.Create)
	// Collection clear must be registered before the :id route.
	api.Delete("/internships", h.Clear)
	api.Delete("/internships/:id", h.Delete)
	api.Patch("/internships/:id", h.Update)
}

// List returns the stored collection as a bare JSON array.
func (h *InternshipHandler) List(c *fiber.Ctx) error {
	internships, err := h.repo.List()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to read internships",
		}, err)
	}
	return c.JSON(internships)
}

// Create validates the submission, stores it and returns the record with its
// assigned id and creation timestamp.
func (h *InternshipHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInternshipInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	in.Trim()

	if msgs := util.ValidateStruct(in); len(msgs) > 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: msgs[0],
			Details: msgs,
		})
	}

	rec, err := h.repo.Create(in.Record())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to create internship",
		}, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// Update merges the supplied fields over the record and returns the result.
func (h *InternshipHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInternshipInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	rec, err := h.repo.Update(c.Params("id"), in.Apply)
	if errors.Is(err, repository.ErrNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Internship not found",
		})
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to update internship",
		}, err)
	}
	return c.JSON(rec)
}

// Delete removes one record; an unknown id still reports success.
func (h *InternshipHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Params("id")); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to delete internship",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Internship deleted successfully",
	})
}

// Clear empties the whole collection.
func (h *InternshipHandler) Clear(c *fiber.Ctx) error {
	if err := h.repo.Clear(); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to clear internships",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "All internships cleared successfully",
	})
}
