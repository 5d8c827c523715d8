// Package credentials decides how an account secret is stored and how a
// login attempt is checked against the stored form.
package credentials

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/moviekeeper/internal/common"
	"github.com/dmitrijs2005/moviekeeper/internal/cryptox"
)

// Scheme names accepted by New.
const (
	SchemePlain  = "plain"
	SchemeArgon2 = "argon2"
)

var ErrUnknownScheme = errors.New("unknown credential scheme")

// Verifier turns a secret into its stored representation and checks a
// candidate secret against that representation.
type Verifier interface {
	Seal(secret string) (string, error)
	Verify(stored, candidate string) bool
}

// New returns the Verifier for a scheme name.
func New(scheme string) (Verifier, error) {
	switch scheme {
	case "", SchemePlain:
		return PlainVerifier{}, nil
	case SchemeArgon2:
		return Argon2Verifier{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// PlainVerifier stores secrets verbatim and compares them exactly.
type PlainVerifier struct{}

func (PlainVerifier) Seal(secret string) (string, error) { return secret, nil }

func (PlainVerifier) Verify(stored, candidate string) bool { return stored == candidate }

const argonPrefix = "argon2id"

// Argon2Verifier stores "argon2id$<salt hex>$<verifier hex>".
type Argon2Verifier struct{}

func (Argon2Verifier) Seal(secret string) (string, error) {
	salt := common.GenerateRandByteArray(16)
	key := cryptox.DeriveKey([]byte(secret), salt)
	defer common.WipeByteArray(key)

	verifier := cryptox.MakeVerifier(key)
	return strings.Join([]string{argonPrefix, hex.EncodeToString(salt), hex.EncodeToString(verifier)}, "$"), nil
}

func (Argon2Verifier) Verify(stored, candidate string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[0] != argonPrefix {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	key := cryptox.DeriveKey([]byte(candidate), salt)
	defer common.WipeByteArray(key)

	return cryptox.Equal(want, cryptox.MakeVerifier(key))
}
