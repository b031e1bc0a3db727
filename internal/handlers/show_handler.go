package handlers

import (
	"booking-backend/internal/services"
	"booking-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ShowHandler struct {
	service services.ShowService
	logger  *logrus.Logger
}

func NewShowHandler(service services.ShowService, logger *logrus.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		logger:  logger,
	}
}

// ListShows godoc
// @Summary List shows
// @Description Every show with its venue and artist names, ordered by start time
// @Tags shows
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.ShowListing}
// @Failure 500 {object} utils.StandardResponse
// @Router /shows [get]
func (h *ShowHandler) ListShows(c *fiber.Ctx) error {
	shows, err := h.service.ListShows(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Shows", "retrieved")
	}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Shows retrieved successfully", shows, utils.ListMeta{Count: len(shows)})
}

// CreateShow godoc
// @Summary Create show
// @Tags shows
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param artist_id formData int true "Artist ID"
// @Param venue_id formData int true "Venue ID"
// @Param start_time formData string true "Start time, e.g. 2035-04-01 20:00"
// @Success 201 {object} utils.StandardResponse{data=models.Show}
// @Failure 422 {object} utils.StandardResponse{errors=[]services.FieldError}
// @Failure 500 {object} utils.StandardResponse
// @Router /shows [post]
func (h *ShowHandler) CreateShow(c *fiber.Ctx) error {
	form, err := formValues(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form body")
	}

	show, err := h.service.CreateShow(c.Context(), form)
	if err != nil {
		return respondError(c, h.logger, err, "Show", "listed")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Show was successfully listed!", show)
}

// DeleteShow godoc
// @Summary Delete show
// @Tags shows
// @Produce json
// @Param id path int true "Show ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse "Show not found"
// @Failure 500 {object} utils.StandardResponse
// @Router /shows/{id} [delete]
func (h *ShowHandler) DeleteShow(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid show ID")
	}

	if err := h.service.DeleteShow(c.Context(), id); err != nil {
		return respondError(c, h.logger, err, "Show", "deleted")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Show was successfully deleted", nil)
}
