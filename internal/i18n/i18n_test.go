package i18n

import (
	"fmt"
	"testing"

	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNewMatchesSupportedLanguage(t *testing.T) {
	assert.Equal(t, language.French, New("fr-CA").Tag())
	assert.Equal(t, language.Arabic, New("ar").Tag())
	assert.Equal(t, language.English, New("de").Tag())
	assert.Equal(t, language.English, New("not a locale").Tag())
}

func TestErrorMessages(t *testing.T) {
	l := New("en")

	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("GET /api/products: %w", domain.ErrNetwork), "Cannot reach the server. Check your connection."},
		{domain.ErrAuth, "Access denied or session expired."},
		{fmt.Errorf("delete: %w", domain.ErrNotFound), "The item no longer exists."},
		{domain.ErrServer, "The server failed to process the request."},
		{&domain.FieldError{Field: "price", Err: domain.ErrNotANumber}, "Price must be a number."},
		{&domain.FieldError{Field: "name", Err: domain.ErrRequiredField}, "Name is required."},
		{domain.ErrEmptyCredentials, "Enter your username and password."},
		{fmt.Errorf("boom"), "Something went wrong."},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Error(tt.err))
		})
	}

	assert.Empty(t, l.Error(nil))
}

func TestTranslatedMessages(t *testing.T) {
	fr := New("fr")
	assert.Equal(t, "Page 2 sur 5", fr.T(KeyPageOf, 2, 5))
	assert.Equal(t, "Produits", fr.T("resource.products"))
	assert.Equal(t, "L'élément n'existe plus.", fr.Error(domain.ErrNotFound))
}

func TestEveryKeyHasAllLanguages(t *testing.T) {
	for key, e := range messages {
		assert.NotEmpty(t, e.en, key)
		assert.NotEmpty(t, e.fr, key)
		assert.NotEmpty(t, e.ar, key)
	}
}
