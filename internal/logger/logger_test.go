package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGet_DefaultsWithoutSetup(t *testing.T) {
	assert.NotNil(t, Get(context.Background()))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := WithLogger(context.Background(), zap.New(core))
	ctx = WithFields(ctx, zap.String("username", "SampleUser"))

	Debug(ctx, "adapting")
	Warn(ctx, "validation failed")

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "adapting", entries[0].Message)
	assert.Equal(t, "SampleUser", entries[0].ContextMap()["username"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
}

func TestSetup(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	Setup(ProductionEnvironment)
	assert.False(t, Get(context.Background()).Core().Enabled(zap.DebugLevel))

	Setup(DevelopmentEnvironment)
	assert.True(t, Get(context.Background()).Core().Enabled(zap.DebugLevel))
}
