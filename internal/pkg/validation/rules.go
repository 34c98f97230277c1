package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Enrollment number generated by the directory, EN<year><4 digit sequence>
	EnrollmentPattern = `^EN\d{4}\d{4,}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Enrollment *regexp.Regexp
}{
	Enrollment: regexp.MustCompile(EnrollmentPattern),
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so messages match the request payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s against its `validate` tags. The returned error wraps
// apperrors.ErrValidationFailed and describes only the first violation.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.NewValidationError("%s", FormatFieldError(fieldErrs[0]))
	}
	return apperrors.NewValidationError("%s", err.Error())
}

// FormatFieldError creates a human-readable validation error message
func FormatFieldError(e validator.FieldError) string {
	field := fieldPath(e)
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "gte":
		return field + " must be greater than or equal to " + e.Param()
	case "lte":
		return field + " must be less than or equal to " + e.Param()
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + strings.Join(strings.Fields(e.Param()), ", ")
	case "uuid", "uuid4":
		return field + " must be a valid id"
	default:
		return field + " validation failed: " + e.Tag()
	}
}

// fieldPath drops the root struct name from the namespace, e.g. Student.parent.fatherEmail
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// ID checks that id is a record identifier. name is used in the error message.
func ID(name, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError("invalid %s", name)
	}
	return nil
}
