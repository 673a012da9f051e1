package Controllers

import (
	"errors"
	"net/http"

	"DentaDesk/Models"

	"github.com/gin-gonic/gin"
)

// respondError maps the core error taxonomy onto HTTP statuses. Every
// failure carries a one-line explanation for the user.
func respondError(c *gin.Context, err error) {
	var validationErr Models.ValidationError
	var duplicateErr Models.DuplicateUserError
	var notFoundErr Models.NotFoundError
	var preconditionErr Models.PreconditionError
	var storageErr Models.StorageError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusConflict, gin.H{"error": duplicateErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &preconditionErr):
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": preconditionErr.Error()})
	case errors.As(err, &storageErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": storageErr.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
