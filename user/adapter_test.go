package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_CopiesFieldsVerbatim(t *testing.T) {
	a := NewAdapter()
	e := &Entity{Username: "SampleUser", Email: "sample@email.com"}

	d, err := a.Adapt(e)
	require.NoError(t, err)
	assert.Equal(t, DomainObject{Username: "SampleUser", Email: "sample@email.com"}, d)
}

func TestAdapter_DoesNotValidate(t *testing.T) {
	a := NewAdapter()

	d, err := a.Adapt(&Entity{})
	require.NoError(t, err)
	assert.Equal(t, DomainObject{}, d)

	d, err = a.Adapt(&Entity{Username: "Sample", Email: "invalid-email"})
	require.NoError(t, err)
	assert.Equal(t, "invalid-email", d.Email)
}

func TestAdapter_NoAliasing(t *testing.T) {
	a := NewAdapter()
	e := &Entity{Username: "SampleUser", Email: "sample@email.com"}

	d, err := a.Adapt(e)
	require.NoError(t, err)

	d.Username = "changed"
	assert.Equal(t, "SampleUser", e.Username)

	e.Email = "other@email.com"
	assert.Equal(t, "sample@email.com", d.Email)
}

func TestAdapter_NilEntity(t *testing.T) {
	_, err := NewAdapter().Adapt(nil)
	assert.Error(t, err)
}

type recordingSaver struct {
	saved []Entity
	err   error
}

func (r *recordingSaver) Save(_ context.Context, e Entity) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, e)
	return nil
}

func TestEntity_Save(t *testing.T) {
	s := &recordingSaver{}
	e := &Entity{Username: "SampleUser", Email: "sample@email.com"}

	require.NoError(t, e.Save(context.Background(), s))
	require.Len(t, s.saved, 1)
	assert.Equal(t, *e, s.saved[0])
}

func TestEntity_SaveWrapsBackendError(t *testing.T) {
	boom := errors.New("disk full")
	e := &Entity{Username: "SampleUser"}

	err := e.Save(context.Background(), &recordingSaver{err: boom})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "SampleUser")
}
