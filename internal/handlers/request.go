package handlers

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"booking-backend/internal/repository"
	"booking-backend/internal/services"
	"booking-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// formValues returns the submitted form as url.Values. Both urlencoded and
// multipart bodies are accepted; repeated keys keep their order.
func formValues(c *fiber.Ctx) (url.Values, error) {
	values := url.Values{}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for key, vals := range form.Value {
			values[key] = append(values[key], vals...)
		}
		return values, nil
	}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return values, nil
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 31)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// respondError maps service errors onto the response envelope and logs the
// ones that are not the client's fault.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, entity, action string) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return utils.ValidationErrorResponse(c, entity+" could not be "+action+": invalid form", validationErr.Fields)
	case errors.Is(err, repository.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, entity+" not found")
	case errors.Is(err, services.ErrEmptySearchTerm):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"entity": entity,
	}).Error("Storage operation failed")
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An error occurred. "+entity+" could not be "+action+".")
}
