package token

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/dtroode/newsletter-server/internal/model"
)

const (
	confirmationTokenLength   = 25
	confirmationTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var _ model.ConfirmationTokenGenerator = (*ConfirmationGenerator)(nil)

// ConfirmationGenerator issues 25 character alphanumeric confirmation tokens.
type ConfirmationGenerator struct {
	random io.Reader
}

// NewConfirmationGenerator creates a generator backed by crypto/rand.
func NewConfirmationGenerator() *ConfirmationGenerator {
	return &ConfirmationGenerator{random: rand.Reader}
}

// Generate returns a new token. Every character is drawn uniformly from the alphabet.
func (g *ConfirmationGenerator) Generate() (string, error) {
	alphabetSize := big.NewInt(int64(len(confirmationTokenAlphabet)))
	token := make([]byte, confirmationTokenLength)

	for i := range token {
		n, err := rand.Int(g.random, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate confirmation token: %w", err)
		}
		token[i] = confirmationTokenAlphabet[n.Int64()]
	}

	return string(token), nil
}
