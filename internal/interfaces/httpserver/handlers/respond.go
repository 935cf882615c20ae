package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"synthia-server/internal/utils/platformerrors"
)

// respondError maps an error to an HTTP status and a minimal JSON body.
// Server side failures are logged in full but surface only a generic
// message, so no provider or database detail leaks to callers.
func respondError(c *gin.Context, err error) {
	var platformErr *platformerrors.PlatformError
	if !errors.As(err, &platformErr) {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unclassified handler error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := platformerrors.ErrorTypeToHTTPStatus(platformErr.Type)
	platformerrors.LogError(log.With().Str("path", c.FullPath()).Logger(), platformErr)

	message := platformErr.Message
	if status >= http.StatusInternalServerError {
		message = "internal server error"
	}
	c.JSON(status, gin.H{"error": message})
}
