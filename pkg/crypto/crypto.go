package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// rewardCodeAlphabet avoids look-alike characters so codes survive being read
// aloud or retyped.
const rewardCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateRewardCode produces a random n-character code over the reward
// alphabet.
func GenerateRewardCode(n int) (string, error) {
	if n <= 0 {
		n = 10
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	for i := range b {
		b[i] = rewardCodeAlphabet[int(b[i])%len(rewardCodeAlphabet)]
	}
	return string(b), nil
}
