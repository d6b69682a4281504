package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ooakt0/fyi-bolt-sub000/internal/common"
)

// writeError converts service errors into API responses. Every error is
// caught at this boundary; nothing propagates into the rendering path.
func (s *Server) writeError(c *gin.Context, err error) {
	var ve *common.ValidationError
	var se *common.SigningError
	var pe *common.PersistenceError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "detail": ve.Error()})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case errors.Is(err, common.ErrorForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.As(err, &se):
		// never echo the backend error; it may embed credential material
		s.logger.Error(c.Request.Context(), "signing failed", "op", se.Op, "key", se.Path, "error", se.Err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "signing_error"})
	case errors.As(err, &pe):
		// distinct from upload failures so operators can reconcile orphans
		s.logger.Error(c.Request.Context(), "persistence failed", "op", pe.Op, "error", pe.Err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persistence_error"})
	default:
		s.logger.Error(c.Request.Context(), "internal error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}
