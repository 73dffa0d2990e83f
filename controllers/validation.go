package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures against JSON field names, not Go ones.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FieldError is one entry of the structured validation error list
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validationError writes a 400 response with field-level detail for a
// binding failure.
func validationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: messageForTag(fe)})
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": fields})
		return
	}

	// Type mismatches (e.g. a string where a number belongs) surface as
	// unmarshal errors carrying the JSON field name.
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation error",
			"errors":  []FieldError{{Field: ute.Field, Message: fmt.Sprintf("must be of type %s", ute.Type.String())}},
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation error",
		"errors":  []FieldError{{Field: "", Message: err.Error()}},
	})
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return "is invalid"
	}
}
