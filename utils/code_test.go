package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPropertyCode(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{
			name:     "no existing codes",
			existing: nil,
			want:     "MU-0001",
		},
		{
			name:     "continues from highest canonical code",
			existing: []string{"MU-0001", "MU-0003"},
			want:     "MU-0004",
		},
		{
			name:     "legacy short codes are ignored",
			existing: []string{"MU-0001", "MU-0003", "MU-7"},
			want:     "MU-0004",
		},
		{
			name:     "three-digit legacy padding is ignored",
			existing: []string{"MU-001", "MU-099"},
			want:     "MU-0001",
		},
		{
			name:     "gaps are not reused",
			existing: []string{"MU-0010", "MU-0002"},
			want:     "MU-0011",
		},
		{
			name:     "five-digit codes are ignored",
			existing: []string{"MU-00042", "MU-0007"},
			want:     "MU-0008",
		},
		{
			name:     "unrelated codes are ignored",
			existing: []string{"XX-0042", "MU-ABCD", "mu-0042"},
			want:     "MU-0001",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextPropertyCode(tt.existing))
		})
	}
}

func TestIsValidPropertyCode(t *testing.T) {
	assert.True(t, IsValidPropertyCode("MU-0001"))
	assert.True(t, IsValidPropertyCode("MU-9999"))

	assert.False(t, IsValidPropertyCode("MU-001"))
	assert.False(t, IsValidPropertyCode("MU-00001"))
	assert.False(t, IsValidPropertyCode("mu-0001"))
	assert.False(t, IsValidPropertyCode("MU-0001 "))
	assert.False(t, IsValidPropertyCode("MU0001"))
	assert.False(t, IsValidPropertyCode(""))
}
