package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const credentialAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// CredentialLength is the default length of generated bootstrap credentials.
const CredentialLength = 12

// GenerateCredential returns a random alphanumeric string of length n drawn
// from crypto/rand, one uniform draw per position. Lengths <= 0 fall back to
// CredentialLength. The result is only ever used to satisfy identity creation;
// the real onboarding path is the credential-reset link.
func GenerateCredential(n int) (string, error) {
	if n <= 0 {
		n = CredentialLength
	}

	max := big.NewInt(int64(len(credentialAlphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate credential: %w", err)
		}
		buf[i] = credentialAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
