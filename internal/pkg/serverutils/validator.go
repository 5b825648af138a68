package serverutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"ouderschapsplan-api/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json (or params) names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "params", "query", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// ValidateRequest validates a struct and returns a 400 listing every violation.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.BadRequest(err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", fieldPath(fe), reason(fe)))
	}
	return apperror.BadRequest(strings.Join(messages, "; "))
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " characters"
	case "max":
		return "must have at most " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "datetime":
		return "must be a date in format " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}

// ParseBody decodes the JSON body into out and validates it.
func ParseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return apperror.BadRequest("Invalid request body")
	}
	return ValidateRequest(out)
}

// ParseParams decodes the path parameters into out and validates them.
func ParseParams(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.ParamsParser(out); err != nil {
		return apperror.BadRequest("Invalid path parameters")
	}
	return ValidateRequest(out)
}

// ParseQuery decodes the query string into out and validates it.
func ParseQuery(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		return apperror.BadRequest("Invalid query parameters")
	}
	return ValidateRequest(out)
}
