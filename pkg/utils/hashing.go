package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashOperatorKey produces the bcrypt hash that goes into ADMIN_KEY_HASH.
// Only used by provisioning tooling, never at request time.
func HashOperatorKey(key string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(key), 10)
	return string(bytes), err
}

// CompareOperatorKey checks a presented operator key against the configured
// bcrypt hash.
func CompareOperatorKey(hashedKey string, plainKey string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(plainKey))
}
