package handlers

import (
	"booking-backend/internal/services"
	"booking-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ArtistHandler struct {
	service services.ArtistService
	logger  *logrus.Logger
}

func NewArtistHandler(service services.ArtistService, logger *logrus.Logger) *ArtistHandler {
	return &ArtistHandler{
		service: service,
		logger:  logger,
	}
}

// ListArtists godoc
// @Summary List artists
// @Description Every artist in storage order, unpaginated
// @Tags artists
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Artist}
// @Failure 500 {object} utils.StandardResponse
// @Router /artists [get]
func (h *ArtistHandler) ListArtists(c *fiber.Ctx) error {
	artists, err := h.service.ListArtists(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Artists", "retrieved")
	}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Artists retrieved successfully", artists, utils.ListMeta{Count: len(artists)})
}

// SearchArtists godoc
// @Summary Search artists
// @Description Case-insensitive partial match on artist name
// @Tags artists
// @Accept x-www-form-urlencoded
// @Produce json
// @Param search_term formData string true "Part of an artist name"
// @Success 200 {object} utils.StandardResponse{data=services.SearchResult[models.ArtistSummary]}
// @Failure 400 {object} utils.StandardResponse "Empty search term"
// @Failure 500 {object} utils.StandardResponse
// @Router /artists/search [post]
func (h *ArtistHandler) SearchArtists(c *fiber.Ctx) error {
	form, err := formValues(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form body")
	}

	result, err := h.service.SearchArtists(c.Context(), form.Get("search_term"))
	if err != nil {
		return respondError(c, h.logger, err, "Artists", "searched")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Search completed", result)
}

// GetArtist godoc
// @Summary Get artist
// @Description An artist with its past and upcoming shows
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse{data=models.ArtistDetail}
// @Failure 400 {object} utils.StandardResponse "Invalid artist ID"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Router /artists/{id} [get]
func (h *ArtistHandler) GetArtist(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	artist, err := h.service.GetArtist(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Artist", "retrieved")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Artist retrieved successfully", artist)
}

// GetArtistForEdit godoc
// @Summary Get artist for editing
// @Description The stored artist fields used to prefill the edit form
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse{data=models.Artist}
// @Failure 400 {object} utils.StandardResponse "Invalid artist ID"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Router /artists/{id}/edit [get]
func (h *ArtistHandler) GetArtistForEdit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	artist, err := h.service.GetArtistForEdit(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Artist", "retrieved")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Artist retrieved successfully", artist)
}

// CreateArtist godoc
// @Summary Create artist
// @Tags artists
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param city formData string true "City"
// @Param state formData string true "State"
// @Param phone formData string false "Phone"
// @Param genres formData []string true "Genres" collectionFormat(multi)
// @Param image_link formData string false "Image link"
// @Param facebook_link formData string false "Facebook link"
// @Param website_link formData string false "Website link"
// @Param seeking_venue formData string false "Any non-empty value means true"
// @Param seeking_description formData string false "Seeking description"
// @Success 201 {object} utils.StandardResponse{data=models.Artist}
// @Failure 422 {object} utils.StandardResponse{errors=[]services.FieldError}
// @Failure 500 {object} utils.StandardResponse
// @Router /artists [post]
func (h *ArtistHandler) CreateArtist(c *fiber.Ctx) error {
	form, err := formValues(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form body")
	}

	artist, err := h.service.CreateArtist(c.Context(), form)
	if err != nil {
		return respondError(c, h.logger, err, "Artist", "listed")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Artist "+artist.Name+" was successfully listed!", artist)
}

// UpdateArtist godoc
// @Summary Edit artist
// @Description Overwrites every field of the artist with the submitted form
// @Tags artists
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param id path int true "Artist ID"
// @Param name formData string true "Name"
// @Param city formData string true "City"
// @Param state formData string true "State"
// @Param genres formData []string true "Genres" collectionFormat(multi)
// @Success 200 {object} utils.StandardResponse{data=models.Artist}
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Failure 422 {object} utils.StandardResponse{errors=[]services.FieldError}
// @Failure 500 {object} utils.StandardResponse
// @Router /artists/{id}/edit [put]
func (h *ArtistHandler) UpdateArtist(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	form, err := formValues(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form body")
	}

	artist, err := h.service.UpdateArtist(c.Context(), id, form)
	if err != nil {
		return respondError(c, h.logger, err, "Artist", "updated")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Artist "+artist.Name+" was successfully updated!", artist)
}

// DeleteArtist godoc
// @Summary Delete artist
// @Description Deletes the artist together with its shows
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Failure 500 {object} utils.StandardResponse
// @Router /artists/{id} [delete]
func (h *ArtistHandler) DeleteArtist(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	if err := h.service.DeleteArtist(c.Context(), id); err != nil {
		return respondError(c, h.logger, err, "Artist", "deleted")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Artist was successfully deleted", nil)
}
