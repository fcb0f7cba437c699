package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/flexible-adapter/adapters/storage"
	"github.com/flexible-adapter/adapters/storage/memory"
	"github.com/flexible-adapter/adapters/user"
)

type failingSaver struct{ err error }

func (f failingSaver) Save(context.Context, user.Entity) error { return f.err }

type ApplicationSuite struct {
	suite.Suite
	out   *bytes.Buffer
	store *memory.Repository
	app   *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, new(ApplicationSuite))
}

func (s *ApplicationSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.store = memory.New()
	s.app = New(user.NewAdapter(), s.store, s.out)
}

func (s *ApplicationSuite) lines() []string {
	trimmed := strings.TrimRight(s.out.String(), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func (s *ApplicationSuite) TestProcess_SampleUser() {
	e := &user.Entity{Username: "SampleUser", Email: "sample@email.com"}

	s.Require().NoError(s.app.Process(context.Background(), e))
	s.Equal([]string{StatusAdapted, StatusValidated, StatusSaved}, s.lines())

	saved, err := s.store.Find(context.Background(), "SampleUser")
	s.Require().NoError(err)
	s.Equal(*e, saved)
}

func (s *ApplicationSuite) TestProcess_EmptyUsername() {
	for _, email := range []string{"sample@email.com", "invalid-email", ""} {
		s.out.Reset()
		err := s.app.Process(context.Background(), &user.Entity{Username: "", Email: email})

		s.Require().Error(err)
		s.True(errors.Is(err, user.ErrEmptyUsername), "email %q", email)
		s.Equal(user.MsgEmptyUsername, err.Error())
		s.Equal([]string{StatusAdapted}, s.lines())
	}
	s.Equal(0, s.store.Len())
}

func (s *ApplicationSuite) TestProcess_InvalidEmail() {
	for _, email := range []string{"invalid-email", ""} {
		s.out.Reset()
		err := s.app.Process(context.Background(), &user.Entity{Username: "Sample", Email: email})

		s.Require().Error(err)
		s.True(errors.Is(err, user.ErrInvalidEmailFormat))
		s.Equal(user.MsgInvalidEmailFormat, err.Error())
		s.Equal([]string{StatusAdapted}, s.lines())
	}
	_, err := s.store.Find(context.Background(), "Sample")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *ApplicationSuite) TestProcess_DoesNotMutateEntity() {
	e := &user.Entity{Username: "SampleUser", Email: "sample@email.com"}
	before := *e

	s.Require().NoError(s.app.Process(context.Background(), e))
	s.Equal(before, *e)
}

func (s *ApplicationSuite) TestProcess_InvocationsAreIndependent() {
	ctx := context.Background()
	s.Require().Error(s.app.Process(ctx, &user.Entity{Username: "Sample", Email: "invalid-email"}))
	s.out.Reset()

	s.Require().NoError(s.app.Process(ctx, &user.Entity{Username: "Sample", Email: "sample@email.com"}))
	s.Equal([]string{StatusAdapted, StatusValidated, StatusSaved}, s.lines())
}

func TestProcess_SaveFailure(t *testing.T) {
	out := &bytes.Buffer{}
	boom := errors.New("disk full")
	a := New(user.NewAdapter(), failingSaver{err: boom}, out)

	err := a.Process(context.Background(), &user.Entity{Username: "SampleUser", Email: "sample@email.com"})
	require.ErrorIs(t, err, boom)
	require.Equal(t, StatusAdapted+"\n"+StatusValidated+"\n", out.String())
}
