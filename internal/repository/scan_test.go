package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAsBool(t *testing.T) {
	// SQLite hands booleans back as 0/1 integers, Postgres as real bools.
	assert.True(t, asBool(int64(1)))
	assert.False(t, asBool(int64(0)))
	assert.True(t, asBool(true))
	assert.True(t, asBool("1"))
	assert.True(t, asBool("true"))
	assert.False(t, asBool(nil))
}

func TestAsTime(t *testing.T) {
	native := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, native, asTime(native))

	parsed := asTime("2025-03-01 12:00:00")
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())

	assert.True(t, asTime("not a timestamp").IsZero())
	assert.True(t, asTime(nil).IsZero())
}

func TestAsInt(t *testing.T) {
	assert.Equal(t, 42, asInt(int64(42)))
	assert.Equal(t, 42, asInt(42.0))
	assert.Equal(t, 42, asInt([]byte("42")))
	assert.Zero(t, asInt(nil))
}

func TestAsTags(t *testing.T) {
	assert.Equal(t, []string{"camping", "family"}, asTags(`["camping","family"]`))
	// Legacy rows hold a bare comma-separated string.
	assert.Equal(t, []string{"camping", "family"}, asTags("camping, family"))
	assert.Nil(t, asTags(""))
	assert.Nil(t, asTags(nil))
}

func TestEncodeTags(t *testing.T) {
	assert.Equal(t, `["a","b"]`, encodeTags([]string{"a", "b"}))
	assert.Equal(t, "[]", encodeTags(nil))
}
