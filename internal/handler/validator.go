package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// enumValidators registers one tag per domain enum. Empty values pass;
// use "required" alongside when a value must be present.
var enumValidators = map[string]func(string) bool{
	"category":          func(s string) bool { return domain.PlantCategory(s).IsValid() },
	"material":          func(s string) bool { return domain.ContainerMaterial(s).IsValid() },
	"light":             func(s string) bool { return domain.LightLevel(s).IsValid() },
	"season":            func(s string) bool { return domain.Season(s).IsValid() },
	"environment":       func(s string) bool { return domain.Environment(s).IsValid() },
	"fertilizer_form":   func(s string) bool { return domain.FertilizerForm(s).IsValid() },
	"weather_condition": func(s string) bool { return domain.WeatherCondition(s).IsValid() },
}

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report json names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, valid := range enumValidators {
		_ = v.RegisterValidation(tag, enumValidation(valid))
	}

	validate = &Validator{validate: v}
}

func enumValidation(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		// Allow empty if not required (handled by 'required' tag if needed)
		return s == "" || valid(s)
	}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := fieldPath(e.Namespace())
		if _, isEnum := enumValidators[e.Tag()]; isEnum {
			errs[field] = fmt.Sprintf("Unknown %s %q", strings.ReplaceAll(e.Tag(), "_", " "), e.Value())
			continue
		}
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "gte", "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lte", "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "required_with":
			errs[field] = "Required when the paired field is set"
		case "gtefield":
			errs[field] = "Must not be less than the paired minimum"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// fieldPath drops the top-level struct name from a validator namespace,
// e.g. "WateringRequest.profile.light" becomes "profile.light"
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
