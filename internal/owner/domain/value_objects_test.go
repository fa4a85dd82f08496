package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusinessName(t *testing.T) {
	name, err := NewBusinessName("  わんわんサロン  ")
	require.NoError(t, err)
	assert.Equal(t, "わんわんサロン", name.String())

	_, err = NewBusinessName("   ")
	assert.Error(t, err)

	_, err = NewBusinessName(strings.Repeat("あ", 101))
	assert.Error(t, err)

	name, err = NewBusinessName(strings.Repeat("あ", 100))
	require.NoError(t, err)
	assert.Len(t, []rune(name.String()), 100)
}

func TestNewServiceType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"トリミング", "トリミング"},
		{"grooming", "トリミング"},
		{"VET", "動物病院"},
		{"hotel", "ペットホテル"},
		{"training", "しつけ教室"},
		{"walking", "散歩代行"},
		{"cafe", "ペットカフェ"},
		{"petshop", "ペットショップ"},
	}

	for _, tt := range tests {
		st, err := NewServiceType(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, st.String())
	}

	_, err := NewServiceType("")
	assert.Error(t, err)

	_, err = NewServiceType("水族館")
	assert.Error(t, err)
}

func TestNewAddress(t *testing.T) {
	addr, err := NewAddress(" 東京都渋谷区1-2-3 ")
	require.NoError(t, err)
	assert.Equal(t, "東京都渋谷区1-2-3", addr.String())

	_, err = NewAddress("")
	assert.Error(t, err)
}

func TestNewCoordinates(t *testing.T) {
	coords, err := NewCoordinates(139.7671, 35.6812)
	require.NoError(t, err)
	assert.Equal(t, 139.7671, coords.Longitude())
	assert.Equal(t, 35.6812, coords.Latitude())

	_, err = NewCoordinates(181, 0)
	assert.Error(t, err)
	_, err = NewCoordinates(0, -91)
	assert.Error(t, err)

	_, err = NewCoordinates(-180, 90)
	assert.NoError(t, err)
}
