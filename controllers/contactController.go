package controllers

import (
	"errors"
	"strconv"
	"strings"

	"contacts-backend/dto"
	"contacts-backend/repositories"
	"contacts-backend/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactController translates the HTTP surface into ContactService
// calls and domain errors back into status codes.
type ContactController struct {
	contacts *services.ContactService
}

func NewContactController(contacts *services.ContactService) *ContactController {
	return &ContactController{contacts: contacts}
}

// ListContacts serves GET /contacts. The page-number query parameter is
// required and 1-based; the five filter parameters are optional
// exact-match constraints.
func (ctrl *ContactController) ListContacts(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("page-number"))
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "page-number is required",
		})
	}
	pageNumber, err := strconv.Atoi(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "page-number must be an integer",
		})
	}

	filter := repositories.ContactFilter{
		FirstName:   c.Query("first-name"),
		LastName:    c.Query("last-name"),
		Email:       c.Query("email"),
		PhoneNumber: c.Query("phone-number"),
		Comment:     c.Query("comment"),
	}

	contacts, err := ctrl.contacts.ListActive(filter, pageNumber)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return err
	}
	return c.JSON(contacts)
}

// GetContact serves GET /contacts/:id with the detailed view. Deleted
// contacts are still retrievable here.
func (ctrl *ContactController) GetContact(c *fiber.Ctx) error {
	id, err := parseId(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid contact id",
		})
	}

	detail, err := ctrl.contacts.GetDetail(id)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return err
	}
	return c.JSON(detail)
}

// CreateContact serves POST /contacts. An invalid phone number answers
// 404 here; the update endpoint answers 400 for the same condition.
// Both codes are kept as the clients already depend on them.
func (ctrl *ContactController) CreateContact(c *fiber.Ctx) error {
	var input dto.ContactPersonInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	contact, err := ctrl.contacts.Create(input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPhoneNumber) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return translateMutationError(c, err, "Could not create contact person")
	}
	return c.JSON(contact)
}

// UpdateContact serves POST /contacts/:id.
func (ctrl *ContactController) UpdateContact(c *fiber.Ctx) error {
	id, err := parseId(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid contact id",
		})
	}

	var input dto.ContactPersonInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	contact, err := ctrl.contacts.Update(id, input)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		if errors.Is(err, services.ErrInvalidPhoneNumber) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return translateMutationError(c, err, "Could not update contact person")
	}
	return c.JSON(contact)
}

// DeleteContact serves DELETE /contacts/:id. A missing id answers 400
// on this endpoint, unlike the 404 used by detail and update.
func (ctrl *ContactController) DeleteContact(c *fiber.Ctx) error {
	id, err := parseId(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid contact id",
		})
	}

	contact, err := ctrl.contacts.SoftDelete(id)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return translateMutationError(c, err, "Could not delete contact person")
	}
	return c.JSON(contact)
}

func parseId(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// translateMutationError keeps validation errors on the global error
// handler and maps everything else (duplicate email or phone included)
// to a generic 400.
func translateMutationError(c *fiber.Ctx, err error, message string) error {
	if _, ok := err.(validator.ValidationErrors); ok {
		return err
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
