package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"fitlife-blog/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto status codes. notFound is the 404 detail.
func writeError(c *gin.Context, err error, notFound string) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": notFound})
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": ve.Fields})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}

// bindError turns a JSON decoding failure into a ValidationError.
func bindError(err error) *domain.ValidationError {
	var typeErr *json.UnmarshalTypeError
	var timeErr *time.ParseError
	switch {
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("body", "field required")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return domain.NewValidationError(field, "expected "+typeErr.Type.String())
	case errors.As(err, &timeErr):
		return domain.NewValidationError("publishDate", "invalid datetime: "+timeErr.Value)
	default:
		return domain.NewValidationError("body", err.Error())
	}
}
