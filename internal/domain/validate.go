package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateStruct(s interface{}) error {
	return toValidationError(validate.Struct(s))
}

func validateVar(field string, value interface{}, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return NewValidationError(field, describe(verrs[0]))
	}
	return NewValidationError(field, err.Error())
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "url":
		return "value is not a valid URL"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
		}
		return "failed " + fe.Tag()
	}
}
