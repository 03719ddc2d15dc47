package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formPrueba struct {
	Email    string `json:"email" validate:"required,email"`
	Dni      string `json:"dni" validate:"required,dni"`
	Telefono string `json:"telefono" validate:"required,telefono"`
}

func TestValidate(t *testing.T) {
	v := New()

	t.Run("datos correctos pasan", func(t *testing.T) {
		err := v.Validate(formPrueba{
			Email:    "maria@cliente.com",
			Dni:      "30.123.456",
			Telefono: "+54 11 5555-1234",
		})
		assert.NoError(t, err)
	})

	t.Run("los errores usan el nombre del tag json", func(t *testing.T) {
		err := v.Validate(formPrueba{Dni: "30.123.456", Telefono: "1155551234"})
		require.Error(t, err)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Contains(t, vErr.Errors, "email")
		assert.NotContains(t, vErr.Errors, "Email")
	})
}

func TestReglaDni(t *testing.T) {
	v := New()

	validos := []string{"30.123.456", "30123456", "7123456", "7.123.456"}
	for _, dni := range validos {
		err := v.Validate(formPrueba{Email: "a@b.com", Dni: dni, Telefono: "1155551234"})
		assert.NoError(t, err, "dni %q debería ser válido", dni)
	}

	invalidos := []string{"abc", "123", "30.123.45", "301234567890"}
	for _, dni := range invalidos {
		err := v.Validate(formPrueba{Email: "a@b.com", Dni: dni, Telefono: "1155551234"})
		assert.Error(t, err, "dni %q debería ser inválido", dni)
	}
}

func TestReglaTelefono(t *testing.T) {
	v := New()

	validos := []string{"+54 11 5555-1234", "1155551234", "5555-1234"}
	for _, tel := range validos {
		err := v.Validate(formPrueba{Email: "a@b.com", Dni: "30.123.456", Telefono: tel})
		assert.NoError(t, err, "teléfono %q debería ser válido", tel)
	}

	invalidos := []string{"abc", "12345", "11 5555 1234 interno 99999"}
	for _, tel := range invalidos {
		err := v.Validate(formPrueba{Email: "a@b.com", Dni: "30.123.456", Telefono: tel})
		assert.Error(t, err, "teléfono %q debería ser inválido", tel)
	}
}
