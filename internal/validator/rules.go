package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// 7 u 8 dígitos, con o sin puntos de miles.
	dniRe = regexp.MustCompile(`^\d{1,2}\.?\d{3}\.?\d{3}$`)
	// Dígitos, espacios, guiones y un + inicial opcional.
	telefonoRe = regexp.MustCompile(`^\+?[\d\s-]{6,20}$`)
)

func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("dni", func(fl validator.FieldLevel) bool {
		return dniRe.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("telefono", func(fl validator.FieldLevel) bool {
		return telefonoRe.MatchString(fl.Field().String())
	})
}
