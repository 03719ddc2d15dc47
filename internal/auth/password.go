package auth

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword crea el hash bcrypt de una contraseña.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifica una contraseña contra su hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

const tempPasswordChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateTempPassword genera la contraseña temporal de los usuarios
// auto-provisionados al presentar un reclamo sin cuenta previa.
func GenerateTempPassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(tempPasswordChars)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = tempPasswordChars[n.Int64()]
	}
	return string(out), nil
}
