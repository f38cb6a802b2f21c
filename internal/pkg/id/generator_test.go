package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUUID(t *testing.T) {
	first := NewUUID()
	second := NewUUID()

	assert.True(t, ValidateUUID(first))
	assert.NotEqual(t, first, second)
}

func TestValidateUUID(t *testing.T) {
	assert.True(t, ValidateUUID("a3bb189e-8bf9-3888-9912-ace4e6543002"))
	assert.False(t, ValidateUUID("not-a-uuid"))
	assert.False(t, ValidateUUID(""))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "gukbap-alley", Slugify("Gukbap Alley"))
	assert.Equal(t, "seongsu-cafe-tour", Slugify("  Seongsu Cafe Tour!  "))
	// Hangul letters survive; only spacing and punctuation normalize.
	assert.Equal(t, "서울-맛집-투어", Slugify("서울 맛집 투어"))
	assert.Equal(t, "2025-festival", Slugify("2025 Festival"))
	assert.Empty(t, Slugify("!!!"))
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("gukbap-alley"))
	assert.True(t, ValidSlug("서울-맛집"))
	assert.False(t, ValidSlug("has space"))
	assert.False(t, ValidSlug(""))
}
