package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashSecret hashes a secret (a PIN) with bcrypt at the given cost.
func HashSecret(secret string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	return string(bytes), err
}

// CheckSecretHash compares a plain secret with a bcrypt hash in constant time.
func CheckSecretHash(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// ValidHashCost reports whether cost is accepted by bcrypt.
func ValidHashCost(cost int) bool {
	return cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost
}
