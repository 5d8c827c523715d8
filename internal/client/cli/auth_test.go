package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/moviekeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInputs makes getSimpleText return texts in order and getPassword
// return password.
func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Scanner, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ *bufio.Scanner, _ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func TestRegister_Success(t *testing.T) {
	lines := capturePrint(t)
	a, _ := newTestApp(t)
	stubInputs(t, []string{"alice", "alice@example.com"}, []byte("secret1"))

	require.NoError(t, a.Register(context.Background()))
	assert.False(t, a.isLoggedIn(), "register does not log in")
	assert.Contains(t, *lines, "Account created. You can now login as alice@example.com")
}

func TestRegister_ValidationError(t *testing.T) {
	lines := capturePrint(t)
	a, _ := newTestApp(t)
	stubInputs(t, []string{"alice", "alice@example.com"}, []byte("123"))

	err := a.Register(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)
	require.NotEmpty(t, *lines)
	assert.Contains(t, (*lines)[len(*lines)-1], "password must be at least 6 characters")
}

func TestRegister_InputError(t *testing.T) {
	a, _ := newTestApp(t)
	stubInputs(t, nil, nil)

	require.ErrorIs(t, a.Register(context.Background()), io.EOF)
}

func TestLogin_SuccessAndWrongPassword(t *testing.T) {
	capturePrint(t)
	a, _ := newTestApp(t)
	_, err := a.store.Register(context.Background(), "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	stubInputs(t, []string{"alice@example.com"}, []byte("nope!!"))
	require.ErrorIs(t, a.Login(context.Background()), common.ErrInvalidCredential)
	assert.False(t, a.isLoggedIn())

	stubInputs(t, []string{"alice@example.com"}, []byte("secret1"))
	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.isLoggedIn())
}

func TestLogin_UnknownEmail(t *testing.T) {
	capturePrint(t)
	a, _ := newTestApp(t)
	stubInputs(t, []string{"ghost@example.com"}, []byte("secret1"))

	require.ErrorIs(t, a.Login(context.Background()), common.ErrNotFound)
}

func TestLogout(t *testing.T) {
	capturePrint(t)
	a, _ := newTestApp(t)
	loginAlice(t, a)

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestWhoAmI(t *testing.T) {
	lines := capturePrint(t)
	a, _ := newTestApp(t)

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Equal(t, "Not logged in", (*lines)[0])

	loginAlice(t, a)
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, (*lines)[1], "alice <alice@example.com> favorites: 0")
}

func TestReport_UnexpectedErrorIsReturned(t *testing.T) {
	lines := capturePrint(t)
	a, _ := newTestApp(t)
	boom := errors.New("disk on fire")

	require.ErrorIs(t, a.report(context.Background(), "op", boom), boom)
	assert.Equal(t, "Something went wrong: disk on fire", (*lines)[0])
}
