package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesto-be/internal/apperr"
)

func TestURLPattern(t *testing.T) {
	valid := []string{
		"https://x/y.jpg",
		"http://example.com",
		"https://www.example.com/path/to/img.png?size=large#top",
		"https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png",
	}
	invalid := []string{
		"",
		"example.com/img.png",
		"ftp://example.com/file",
		"https://",
		"https://exa mple.com",
	}

	for _, u := range valid {
		assert.True(t, URLPattern.MatchString(u), u)
	}
	for _, u := range invalid {
		assert.False(t, URLPattern.MatchString(u), u)
	}
}

type sample struct {
	Email string  `validate:"required,email"`
	Name  *string `validate:"omitempty,min=2,max=30"`
	Link  string  `validate:"required,urlpattern"`
}

func TestStruct(t *testing.T) {
	short := "a"

	tests := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{"valid", sample{Email: "a@b.co", Link: "https://x/y.jpg"}, ""},
		{"missing email", sample{Link: "https://x/y.jpg"}, `Field "email" is required`},
		{"bad email", sample{Email: "nope", Link: "https://x/y.jpg"}, "Invalid email address"},
		{"short name", sample{Email: "a@b.co", Name: &short, Link: "https://x/y.jpg"}, `Field "name" has invalid length`},
		{"bad link", sample{Email: "a@b.co", Link: "not a link"}, `Field "link" must be a valid URL`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

			var ae *apperr.Error
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tt.wantErr, ae.Message)
		})
	}
}

func TestRegisterBinding_Idempotent(t *testing.T) {
	require.NoError(t, RegisterBinding())
	require.NoError(t, RegisterBinding())
}
