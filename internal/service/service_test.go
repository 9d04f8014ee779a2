package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{105, "1:45"},
		{105.9, "1:45"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{-3, "0:00"},
		{math.NaN(), "0:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDuration(tt.seconds), "seconds=%v", tt.seconds)
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name          string
		page, limit   int
		expectedPage  int
		expectedLimit int
	}{
		{"defaults", 0, 0, 1, CatalogDefaultLimit},
		{"negative page", -4, 5, 1, 5},
		{"capped limit", 2, 500, 2, MaxPageLimit},
		{"kept", 3, 20, 3, 20},
		{"huge page", 2000000000000000000, 9, MaxPage, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := normalizePage(tt.page, tt.limit, CatalogDefaultLimit)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}
