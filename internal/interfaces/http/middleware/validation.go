package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	billingdomain "github.com/honoraria/backend/internal/domain/billing"
)

// SetupValidator configures gin's binding validator with the custom
// refmonth rule and JSON field names in error messages. Call once at
// startup before routes are served.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// refmonth validates the YYYY-MM accounting period format and bounds.
	_ = v.RegisterValidation("refmonth", func(fl validator.FieldLevel) bool {
		return billingdomain.ValidateReferenceMonth(fl.Field().String()) == nil
	})
}
