package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	t.Setenv("TEST_ENV_STRING", "value")

	assert.Equal(t, "value", GetString("TEST_ENV_STRING", "fallback"))
	assert.Equal(t, "fallback", GetString("TEST_ENV_STRING_MISSING", "fallback"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "42")
	t.Setenv("TEST_ENV_INT_BAD", "not a number")

	assert.Equal(t, 42, GetInt("TEST_ENV_INT", 7))
	assert.Equal(t, 7, GetInt("TEST_ENV_INT_BAD", 7))
	assert.Equal(t, 7, GetInt("TEST_ENV_INT_MISSING", 7))
}

func TestGetBool(t *testing.T) {
	t.Setenv("TEST_ENV_BOOL", "true")
	t.Setenv("TEST_ENV_BOOL_BAD", "yep")

	assert.True(t, GetBool("TEST_ENV_BOOL", false))
	assert.False(t, GetBool("TEST_ENV_BOOL_BAD", false))
	assert.True(t, GetBool("TEST_ENV_BOOL_MISSING", true))
}
