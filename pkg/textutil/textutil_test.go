package textutil

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "29 Ekim 2023", FormatDate(time.Date(2023, 10, 29, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 Ocak 2024", FormatDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestValidISBN13(t *testing.T) {
	tests := []struct {
		isbn string
		want bool
	}{
		{"9780306406157", true},
		{"978-0-306-40615-7", true},
		{"9780306406158", false},
		{"978030640615", false},
		{"97803064061X7", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidISBN13(tt.isbn), tt.isbn)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "kısa", Truncate("kısa", 10))
	assert.Equal(t, "çok...", Truncate("çok uzun", 3))

	long := strings.Repeat("a", 150)
	assert.Equal(t, strings.Repeat("a", 100)+"...", Truncate(long, 0))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***e@example.com", MaskEmail("alice@example.com"))
	assert.Equal(t, "ab@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestPasswordStrength(t *testing.T) {
	ok, unmet := PasswordStrength("Str0ng!pass")
	assert.True(t, ok)
	assert.Empty(t, unmet)

	ok, unmet = PasswordStrength("weak")
	assert.False(t, ok)
	assert.ElementsMatch(t, []string{"min_length", "uppercase", "digit", "symbol"}, unmet)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512.00 B", FormatBytes(512))
	assert.Equal(t, "1.50 KB", FormatBytes(1536))
	assert.Equal(t, "1.00 GB", FormatBytes(1<<30))
}
