package auth

import (
	"crypto/subtle"

	"github.com/go-faster/errors"
	"golang.org/x/crypto/bcrypt"
)

// Admin is the single administrator account, configured rather than stored.
type Admin struct {
	Username     string
	PasswordHash string
}

// Verify reports whether the credentials match. An admin without a
// password hash never verifies.
func (a Admin) Verify(username, password string) bool {
	if a.PasswordHash == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	return userOK && passErr == nil
}

// HashPassword returns a bcrypt hash suitable for auth.admin_password_hash.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hashed), nil
}
