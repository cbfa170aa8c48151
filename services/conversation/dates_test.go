package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2025-03-15":            "2025-03-15",
		"2025-3-5":              "2025-03-05",
		"15/03/2025":            "2025-03-15",
		"15/03/25":              "2025-03-15",
		"15.03.2025":            "2025-03-15",
		"March 15th, 2025":      "2025-03-15",
		"15 march 2025":         "2025-03-15",
		"the 3rd of September":  "2025-09-03",
		"5 sept":                "2025-09-05",
		"5 Jan":                 "2026-01-05",
		"10 january":            "2025-01-10",
	}
	for raw, want := range cases {
		got, ok := NormalizeDate(raw, fixedNow)
		if assert.True(t, ok, raw) {
			assert.Equal(t, want, got, raw)
		}
	}

	for _, raw := range []string{"", "garbage", "31/02/2025", "15/13/2025"} {
		_, ok := NormalizeDate(raw, fixedNow)
		assert.False(t, ok, raw)
	}
}

func TestDateArithmetic(t *testing.T) {
	d, ok := AddDays("2025-03-15", 5)
	assert.True(t, ok)
	assert.Equal(t, "2025-03-20", d)

	d, ok = AddDays("2024-02-28", 2)
	assert.True(t, ok)
	assert.Equal(t, "2024-03-01", d)

	_, ok = AddDays("15/03/2025", 5)
	assert.False(t, ok)

	n, ok := DaysBetween("2025-03-15", "2025-03-25")
	assert.True(t, ok)
	assert.Equal(t, 10, n)
}
