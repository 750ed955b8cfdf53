package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	npiPattern     = regexp.MustCompile(`^\d{10}$`)
	ediDatePattern = regexp.MustCompile(`^\d{8}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("npi", validateNPI)
	validate.RegisterValidation("edi_date", validateEDIDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateNPI(fl validator.FieldLevel) bool {
	return npiPattern.MatchString(fl.Field().String())
}

func validateEDIDate(fl validator.FieldLevel) bool {
	return ediDatePattern.MatchString(fl.Field().String())
}
