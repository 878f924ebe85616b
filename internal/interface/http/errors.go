package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vaanicall/vaani-backend/internal/application"
	"github.com/vaanicall/vaani-backend/internal/domain/entity"
	"github.com/vaanicall/vaani-backend/internal/domain/repository"
	"github.com/vaanicall/vaani-backend/pkg/response"
)

// respondError maps the application error taxonomy onto the API envelope.
// Validation failures stay quiet 422s (the client renders a disabled
// control, not a toast); storage failures are loud and retryable.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error[any](c, http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, entity.ErrUnknownRole):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrStepPrecondition):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, repository.ErrStorageUnavailable):
		logger.WithError(err).Error("profile storage unavailable")
		c.Header("Retry-After", "1")
		response.Error[any](c, http.StatusServiceUnavailable, "storage unavailable, please retry", gin.H{"retryable": true})
	case errors.Is(err, application.ErrNotVerified):
		response.Error[any](c, http.StatusForbidden, "Please complete verification before going live.", gin.H{
			"redirect": entity.ScreenAudioVerification,
		})
	case errors.Is(err, application.ErrVerificationRejected):
		response.Error[any](c, http.StatusForbidden, "Your verification was rejected.", nil)
	case errors.Is(err, application.ErrInsufficientBalance):
		response.Error[any](c, http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, application.ErrProfileNotFound):
		response.Error[any](c, http.StatusNotFound, "profile not found", nil)
	default:
		logger.WithError(err).Error("unhandled error")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}

func deviceID(c *gin.Context) string {
	return c.GetString("deviceID")
}
