package adapters

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerics(t *testing.T) {
	a := New()
	src := &userEntity{Username: "SampleUser", Email: "sample@email.com"}

	p, err := AdaptTo[userDomain](a, src)
	require.NoError(t, err)
	assert.Equal(t, "SampleUser", p.Username)

	v, err := Make[userDomain](a, src)
	require.NoError(t, err)
	assert.Equal(t, "sample@email.com", v.Email)

	var c userDomain
	require.NoError(t, Copy(a, &c, src))
	assert.Equal(t, v, c)

	_, err = AdaptTo[userDomain](a, *src)
	assert.ErrorIs(t, err, ErrNotPointer)
}

func TestMakeSlice(t *testing.T) {
	a := New()
	out, err := MakeSlice[userDomain](a, []userEntity{
		{Username: "one", Email: "1@x"},
		{Username: "two", Email: "2@x"},
	})
	require.NoError(t, err)
	assert.Equal(t, []userDomain{{Username: "one", Email: "1@x"}, {Username: "two", Email: "2@x"}}, out)

	a.RegisterConverter("Email", func(v any) (any, error) {
		if v == "2@x" {
			return nil, errors.New("rejected")
		}
		return v, nil
	})
	_, err = MakeSlice[userDomain](a, []userEntity{{Email: "1@x"}, {Email: "2@x"}})
	assert.ErrorContains(t, err, "rejected")
}

func TestComposeConverters(t *testing.T) {
	trimLower := ComposeConverters(MapString(strings.TrimSpace), MapString(strings.ToLower))
	out, err := trimLower("  Sample@Email.com ")
	require.NoError(t, err)
	assert.Equal(t, "sample@email.com", out)

	// non-strings pass through MapString
	out, err = trimLower(5)
	require.NoError(t, err)
	assert.Equal(t, 5, out)

	failing := ComposeConverters(func(any) (any, error) { return nil, errors.New("stop") }, MapString(strings.ToUpper))
	_, err = failing("x")
	assert.Error(t, err)

	called := false
	short := ComposeConverters(func(any) (any, error) { return nil, nil }, func(v any) (any, error) {
		called = true
		return v, nil
	})
	out, err = short("x")
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.False(t, called)
}
