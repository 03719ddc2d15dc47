package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"reclamos_backend/internal/repositories"
)

const codigoMaxIntentos = 5

// GenerarCodigo arma un código de expediente PL-<año>-<4 dígitos>.
func GenerarCodigo(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PL-%d-%04d", now.Year(), n.Int64()), nil
}

// generarCodigoUnico reintenta hasta encontrar un código libre. El
// índice único sobre codigo cubre la carrera entre el chequeo y el
// insert; este loop solo reduce la chance de pegarle.
func generarCodigoUnico(repo repositories.ReclamoRepository, now time.Time) (string, error) {
	for i := 0; i < codigoMaxIntentos; i++ {
		codigo, err := GenerarCodigo(now)
		if err != nil {
			return "", err
		}
		exists, err := repo.CodigoExists(codigo)
		if err != nil {
			return "", err
		}
		if !exists {
			return codigo, nil
		}
	}
	return "", fmt.Errorf("no se pudo generar un código libre tras %d intentos", codigoMaxIntentos)
}
