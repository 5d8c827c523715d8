package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{
		ErrValidation, ErrDuplicateAccount, ErrNotFound,
		ErrInvalidCredential, ErrUnauthenticated, ErrDuplicateFavorite, ErrCorruptState,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				require.False(t, errors.Is(a, b), "%v must not match %v", a, b)
			}
		}
	}
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("%w: all fields are required", ErrValidation)
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "all fields are required")
}
