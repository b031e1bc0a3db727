package handlers

import (
	"booking-backend/internal/services"
	"booking-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VenueHandler struct {
	service services.VenueService
	logger  *logrus.Logger
}

func NewVenueHandler(service services.VenueService, logger *logrus.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		logger:  logger,
	}
}

// ListVenues godoc
// @Summary List venues
// @Description Every venue in storage order, unpaginated
// @Tags venues
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Venue}
// @Failure 500 {object} utils.StandardResponse
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *fiber.Ctx) error {
	venues, err := h.service.ListVenues(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Venues", "retrieved")
	}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Venues retrieved successfully", venues, utils.ListMeta{Count: len(venues)})
}

// ListVenueAreas godoc
// @Summary List venues by area
// @Description Venues grouped by city and state with their upcoming show counts
// @Tags venues
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.VenueArea}
// @Failure 500 {object} utils.StandardResponse
// @Router /venues/areas [get]
func (h *VenueHandler) ListVenueAreas(c *fiber.Ctx) error {
	areas, err := h.service.ListVenueAreas(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Venues", "retrieved")
	}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Venue areas retrieved successfully", areas, utils.ListMeta{Count: len(areas)})
}

// SearchVenues godoc
// @Summary Search venues
// @Description Case-insensitive partial match on venue name
// @Tags venues
// @Accept x-www-form-urlencoded
// @Produce json
// @Param search_term formData string true "Part of a venue name"
// @Success 200 {object} utils.StandardResponse{data=services.SearchResult[models.VenueSummary]}
// @Failure 400 {object} utils.StandardResponse "Empty search term"
// @Failure 500 {object} utils.StandardResponse
// @Router /venues/search [post]
func (h *VenueHandler) SearchVenues(c *fiber.Ctx) error {
	form, err := formValues(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form body")
	}

	result, err := h.service.SearchVenues(c.Context(), form.Get("search_term"))
	if err != nil {
		return respondError(c, h.logger, err, "Venues", "searched")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Search completed", result)
}

// GetVenue godoc
// @Summary Get venue
// @Description A venue with its past and upcoming shows
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse{data=models.VenueDetail}
// @Failure 400 {object} utils.StandardResponse "Invalid venue ID"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	venue, err := h.service.GetVenue(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Venue", "retrieved")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Venue retrieved successfully", venue)
}

// GetVenueForEdit godoc
// @Summary Get venue for editing
// @Description The stored venue fields used to prefill the edit form
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse{data=models.Venue}
// @Failure 400 {object} utils.StandardResponse "Invalid venue ID"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Router /venues/{id}/edit [get]
func (h *VenueHandler) GetVenueForEdit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	venue, err := h.service.GetVenueForEdit(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Venue", "retrieved")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Venue retrieved successfully", venue)
}

// CreateVenue godoc
// @Summary Create venue
// @Tags venues
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param city formData string true "City"
// @Param state formData string true "State"
// @Param address formData string true "Address"
// @Param phone formData string false "Phone"
// @Param genres formData []string true "Genres" collectionFormat(multi)
// @Param image_link formData string false "Image link"
// @Param website_link formData string false "Website link"
// @Param facebook_link formData string false "Facebook link"
// @Param seeking_talent formData string false "Any non-empty value means true"
// @Param seeking_description formData string false "Seeking description"
// @Success 201 {object} utils.StandardResponse{data=models.Venue}
// @Failure 422 {object} utils.StandardResponse{errors=[]services.FieldError}
// @Failure 500 {object} utils.StandardResponse
// @Router /venues [post]
func (h *VenueHandler) CreateVenue(c *fiber.Ctx) error {
	form, err := formValues(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form body")
	}

	venue, err := h.service.CreateVenue(c.Context(), form)
	if err != nil {
		return respondError(c, h.logger, err, "Venue", "listed")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Venue "+venue.Name+" was successfully listed!", venue)
}

// UpdateVenue godoc
// @Summary Edit venue
// @Description Overwrites every field of the venue with the submitted form
// @Tags venues
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param id path int true "Venue ID"
// @Param name formData string true "Name"
// @Param city formData string true "City"
// @Param state formData string true "State"
// @Param address formData string true "Address"
// @Param genres formData []string true "Genres" collectionFormat(multi)
// @Success 200 {object} utils.StandardResponse{data=models.Venue}
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Failure 422 {object} utils.StandardResponse{errors=[]services.FieldError}
// @Failure 500 {object} utils.StandardResponse
// @Router /venues/{id}/edit [put]
func (h *VenueHandler) UpdateVenue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	form, err := formValues(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form body")
	}

	venue, err := h.service.UpdateVenue(c.Context(), id, form)
	if err != nil {
		return respondError(c, h.logger, err, "Venue", "updated")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Venue "+venue.Name+" was successfully updated!", venue)
}

// DeleteVenue godoc
// @Summary Delete venue
// @Description Deletes the venue together with its shows
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Failure 500 {object} utils.StandardResponse
// @Router /venues/{id} [delete]
func (h *VenueHandler) DeleteVenue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	if err := h.service.DeleteVenue(c.Context(), id); err != nil {
		return respondError(c, h.logger, err, "Venue", "deleted")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Venue was successfully deleted", nil)
}
