package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"asada-api/pkg/shortid"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJson binds the request body and, on failure, answers 400 with
// the first violated rule only. No multi-error aggregation.
func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": firstViolation(err),
		})
		return err
	}
	return nil
}

func firstViolation(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fieldError := validationErrors[0]
		field := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", field)
		case "max":
			return fmt.Sprintf("%s is too long (max %s)", field, fieldError.Param())
		case "min":
			return fmt.Sprintf("%s is too short (min %s)", field, fieldError.Param())
		case "gt":
			return fmt.Sprintf("%s must be greater than %s", field, fieldError.Param())
		case "len":
			return fmt.Sprintf("%s must be exactly %s characters", field, fieldError.Param())
		case "numeric":
			return fmt.Sprintf("%s must contain only digits", field)
		case "oneof":
			return fmt.Sprintf("%s must be one of: %s", field, fieldError.Param())
		case "url":
			return fmt.Sprintf("%s must be a valid URL", field)
		default:
			return fmt.Sprintf("%s is invalid", field)
		}
	}
	return "Invalid request format"
}

// EventPublicID pulls the :publicId route param and rejects malformed
// IDs before storage is touched, so garbage maps to 400 rather than 404.
func EventPublicID(c *gin.Context) (string, bool) {
	publicID := c.Param("publicId")
	if !shortid.Valid(publicID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return "", false
	}
	return publicID, true
}

// ParamInt parses a numeric route param, answering 400 when malformed.
func ParamInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s", name)})
		return 0, false
	}
	return value, true
}
