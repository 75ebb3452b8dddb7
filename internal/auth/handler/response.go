package handler

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// errorResponse renders a JSON error body with the given status.
func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// messageResponse renders a JSON message body with the given status.
func messageResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// bindErrorMessage maps a binding failure to an identifying message:
// a missing required field is reported by name, anything else as bad JSON.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "Missing argument: " + snakeCase(verrs[0].Field())
	}
	return "Invalid JSON"
}

// snakeCase converts a Go field name to its snake_case JSON key.
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
