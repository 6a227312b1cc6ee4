package shift

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"standard day shift", "08:00", "16:00", 8.0},
		{"overnight shift", "22:00", "06:00", 8.0},
		{"half hours", "09:15", "17:45", 8.5},
		{"short span", "08:00", "08:20", 0.33},
		{"almost full day", "00:00", "23:59", 23.98},
		{"equal times", "08:00", "08:00", 0.0},
		{"one minute before start wraps", "08:00", "07:59", 23.98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeDuration(tt.start, tt.end)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDuration_Malformed(t *testing.T) {
	malformed := [][2]string{
		{"8am", "16:00"},
		{"08:00", ""},
		{"", ""},
		{"25:00", "16:00"},
		{"08:61", "16:00"},
		{"08", "16:00"},
		{"08:00:00", "16:00"},
		{"-1:00", "16:00"},
	}

	for _, pair := range malformed {
		_, ok := ComputeDuration(pair[0], pair[1])
		require.False(t, ok, "expected %q-%q to be rejected", pair[0], pair[1])
	}
}
