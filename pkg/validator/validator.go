package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// fieldMessages carries the violation message for each wire field and tag.
var fieldMessages = map[string]map[string]string{
	"name": {
		"notblank": "Name is required",
		"max":      "Name cannot exceed 100 characters",
	},
	"email": {
		"notblank": "Email is required",
		"email":    "Email should be valid",
	},
	"address": {
		"notblank": "Address is required",
	},
	"dateOfBirth": {
		"notblank": "Date of birth is required",
		"datefmt":  "Date of birth must be in format yyyy-MM-dd",
	},
	"registeredDate": {
		"notblank": "Registered date is required",
		"datefmt":  "Registered date must be in format yyyy-MM-dd",
	},
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report violations under the JSON field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// Syntactic check only; calendrical validity is verified at parse time
	v.RegisterValidation("datefmt", func(fl validator.FieldLevel) bool {
		return datePattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			if _, exists := errors[field]; exists {
				continue
			}
			if msg, ok := fieldMessages[field][e.Tag()]; ok {
				errors[field] = msg
			} else {
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
