// Package hash wraps bcrypt for password storage. The cost is fixed here;
// bcrypt embeds it in every hash, so retuning never invalidates stored
// hashes.
package hash

import "golang.org/x/crypto/bcrypt"

// Cost balances brute-force resistance against login latency.
const Cost = 12

// Password hashes a plaintext password. The plaintext is never stored or
// logged anywhere.
func Password(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash.
func Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
