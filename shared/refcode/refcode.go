// Package refcode generates booking references of the form XXXX-XXXX.
package refcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

const (
	Alphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	GroupSize  = 4
	Separator  = "-"
	groupCount = 2
)

var pattern = regexp.MustCompile(`^[0-9A-Z]{4}-[0-9A-Z]{4}$`)

// Generate draws every character uniformly from Alphabet with crypto/rand.
func Generate() (string, error) {
	alphabetLen := big.NewInt(int64(len(Alphabet)))
	out := make([]byte, 0, groupCount*GroupSize+len(Separator))

	for group := range groupCount {
		if group > 0 {
			out = append(out, Separator...)
		}

		for range GroupSize {
			n, err := rand.Int(rand.Reader, alphabetLen)
			if err != nil {
				return "", fmt.Errorf("failed to generate reference: %w", err)
			}

			out = append(out, Alphabet[n.Int64()])
		}
	}

	return string(out), nil
}

// Valid reports whether ref has the reference shape.
func Valid(ref string) bool {
	return pattern.MatchString(ref)
}
