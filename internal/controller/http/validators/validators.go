package validators

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/Egor213/LogiBoard/internal/domain"
	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// ValidationError maps a json field name to a human readable problem.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("loglevel", isLogLevel); err != nil {
		panic(err)
	}
	return v
}

func isLogLevel(fl validator.FieldLevel) bool {
	_, ok := domain.ParseLogLevel(fl.Field().String())
	return ok
}

func levelsList() string {
	names := make([]string, 0, len(domain.LogLevels))
	for _, l := range domain.LogLevels {
		names = append(names, l.String())
	}
	return strings.Join(names, ", ")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "loglevel":
		return "must be one of " + levelsList()
	default:
		return "is invalid"
	}
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errorsUtils.WrapPathErr(err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &ValidationError{Fields: fields}
}

// ValidateRegistration trims reg in place and checks it. Whitespace-only
// service or message count as missing.
func ValidateRegistration(reg *domain.LogRegistration) error {
	reg.Service = strings.TrimSpace(reg.Service)
	reg.Level = strings.TrimSpace(reg.Level)
	reg.Message = strings.TrimSpace(reg.Message)
	reg.Timestamp = strings.TrimSpace(reg.Timestamp)
	return check(reg)
}

func ValidateFilter(f *domain.Filter) error {
	f.Service = strings.TrimSpace(f.Service)
	f.Level = strings.TrimSpace(f.Level)
	return check(f)
}
