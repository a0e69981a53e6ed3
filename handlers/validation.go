package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// validationError responds 400 with the shared validation error shape,
// reporting only the first failing field.
func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation error",
		"details": validationDetail(err),
	})
}

// validationDetailError responds 400 with an explicit detail message, for
// boundary checks the binding tags cannot express.
func validationDetailError(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation error",
		"details": detail,
	})
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		// Fields validate in declaration order; report the first violation only
		fe := verrs[0]
		field := fieldPath(fe)
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", field)
		case "email":
			return fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			if fe.Kind() == reflect.String {
				return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
			}
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		case "oneof":
			return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
		case "gt":
			return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
		case "gte":
			return fmt.Sprintf("%s must be %s or greater", field, fe.Param())
		case "uuid":
			return fmt.Sprintf("%s must be a valid id", field)
		default:
			return fmt.Sprintf("%s is invalid", field)
		}
	}
	return err.Error()
}

// fieldPath renders "CreateRoomRequest.Dimensions.Width" as "dimensions.width"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToLower(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, ".")
}

// budgetPayload is the shared budget body shape; ordering (min <= max) is
// checked explicitly in handlers since it spans two fields.
type budgetPayload struct {
	Min float64 `json:"min" binding:"gte=0"`
	Max float64 `json:"max" binding:"gte=0"`
}

func (b budgetPayload) ordered() bool {
	return b.Min <= b.Max
}

const budgetOrderDetail = "budget.min must be less than or equal to budget.max"
