package handlers

import (
	"errors"

	"booking-backend/internal/services"
	"booking-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	images services.ImageStore
	logger *logrus.Logger
}

// NewUploadHandler accepts a nil store, in which case uploads answer 503.
func NewUploadHandler(images services.ImageStore, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		images: images,
		logger: logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for image upload
// @Description Generate a presigned PUT URL for a venue or artist image. Submit the returned image_link in the form afterwards.
// @Tags Upload
// @Produce json
// @Param filename query string true "Filename with an image extension"
// @Success 200 {object} utils.StandardResponse{data=services.UploadTicket}
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	if h.images == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Image uploads are not configured")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	ticket, err := h.images.PresignUpload(c.Context(), filename)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedImage) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", ticket)
}
