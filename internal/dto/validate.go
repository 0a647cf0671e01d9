package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/fadilmartias/feedback-service/internal/apperror"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json names so API errors match the payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func runValidate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperror.NewValidationError(fe.Field(), reasonFor(fe))
	}
	return apperror.NewValidationError("", err.Error())
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// normalizeTags trims and lowercases tags and drops empty entries, so the
// stored form and the filter form always compare equal.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		token := strings.ToLower(strings.TrimSpace(t))
		if token == "" {
			continue
		}
		cleaned = append(cleaned, token)
	}
	return cleaned
}

// NormalizeTagList exposes tag canonicalization for query-side tag filters.
func NormalizeTagList(tags []string) []string {
	return normalizeTags(tags)
}
