package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError junta los errores de campo como "campo" -> "mensaje".
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var msgs []string
	for field, msg := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("campo '%s': %s", field, msg))
	}
	return "Datos incompletos: " + strings.Join(msgs, "; ")
}

// Validator envuelve go-playground/validator con nombres de campo
// tomados del tag json, para que el cliente vea los nombres del wire.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := registerCustomRules(v); err != nil {
		panic("no se pudieron registrar las reglas de validación: " + err.Error())
	}

	return &Validator{validate: v}
}

// Validate valida la estructura y devuelve *ValidationError si falla.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	customErrors := make(map[string]string)
	for _, fe := range validationErrors {
		customErrors[fe.Field()] = getErrorMessage(fe)
	}

	return &ValidationError{Errors: customErrors}
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "email":
		return "Debe ser un email válido"
	case "min":
		return fmt.Sprintf("Debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("Debe tener como máximo %s caracteres", fe.Param())
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "dni":
		return "DNI inválido"
	case "telefono":
		return "Teléfono inválido"
	default:
		return fmt.Sprintf("Valor inválido (regla '%s')", fe.Tag())
	}
}
