package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9876543210", "+919876543210"},
		{"98765 43210", "+919876543210"},
		{"+919876543210", "+919876543210"}, // 12 digits after strip
		{"919876543210", "+919876543210"},
		{"0919876543210", "+919876543210"}, // 13 digits not starting 91: last 10 kept
		{"9198765432109", "+9198765432109"}, // 13 digits starting 91
		{"123", "+91123"},                   // lossy truncation, documented behavior
		{"001-555-867-5309", "+915558675309"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, NormalizePhone(tc.in), "input %q", tc.in)
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	once := NormalizePhone("9876543210")
	require.Equal(t, once, NormalizePhone(once))
}

func TestValidatePhone(t *testing.T) {
	require.True(t, ValidatePhone("9876543210"))
	require.True(t, ValidatePhone("98765-43210"))
	require.False(t, ValidatePhone("987654321"))  // 9 digits
	require.False(t, ValidatePhone("abcd987654")) // 6 digits after strip
	require.False(t, ValidatePhone(""))
}

func TestGenerateSessionID(t *testing.T) {
	re := regexp.MustCompile(`^session_\d+_[0-9a-f]{16}$`)
	a := GenerateSessionID()
	b := GenerateSessionID()
	require.Regexp(t, re, a)
	require.Regexp(t, re, b)
	require.NotEqual(t, a, b)
}
