package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "custom")
	assert.Equal(t, "custom", GetEnvString("TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("TEST_STRING_UNSET", "default"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("TEST_INT", 7))

	t.Setenv("TEST_INT_BAD", "forty-two")
	assert.Equal(t, 7, GetEnvInt("TEST_INT_BAD", 7))

	assert.Equal(t, 7, GetEnvInt("TEST_INT_UNSET", 7))
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("TEST_INT64", "9000000000")
	assert.Equal(t, int64(9000000000), GetEnvInt64("TEST_INT64", 1))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, GetEnvBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL_BAD", "yes please")
	assert.True(t, GetEnvBool("TEST_BOOL_BAD", true))
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "2.5")
	assert.Equal(t, 2.5, GetEnvFloat("TEST_FLOAT", 1.0))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION_BAD", "90")
	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DURATION_BAD", time.Minute))
}
