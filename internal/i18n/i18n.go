// Package i18n holds the dashboard's message catalog and maps errors to
// user-facing text in the operator's language.
package i18n

import (
	"errors"

	"github.com/dmehra2102/menudash/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{
	language.English,
	language.French,
	language.Arabic,
}

var (
	matcher = language.NewMatcher(supported)
	builder = newCatalog()
)

// Localizer renders catalog messages for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New picks the closest supported language for locale, falling back to English.
func New(locale string) *Localizer {
	tag := language.English
	if parsed, err := language.Parse(locale); err == nil {
		_, idx, conf := matcher.Match(parsed)
		if conf != language.No {
			tag = supported[idx]
		}
	}

	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}
}

func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T renders the message stored under key.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Error converts any error from the dashboard's operations into one message.
func (l *Localizer) Error(err error) string {
	if err == nil {
		return ""
	}

	var fe *domain.FieldError
	if errors.As(err, &fe) {
		field := l.T("field." + fe.Field)
		switch {
		case errors.Is(fe.Err, domain.ErrRequiredField):
			return l.T(KeyErrRequired, field)
		case errors.Is(fe.Err, domain.ErrNotANumber):
			return l.T(KeyErrNotNumber, field)
		case errors.Is(fe.Err, domain.ErrNotABool):
			return l.T(KeyErrNotBool, field)
		case errors.Is(fe.Err, domain.ErrFieldTooLong):
			return l.T(KeyErrTooLong, field)
		default:
			return l.T(KeyErrValidation)
		}
	}

	switch {
	case errors.Is(err, domain.ErrNetwork):
		return l.T(KeyErrNetwork)
	case errors.Is(err, domain.ErrAuth):
		return l.T(KeyErrAuth)
	case errors.Is(err, domain.ErrNotFound):
		return l.T(KeyErrNotFound)
	case errors.Is(err, domain.ErrServer):
		return l.T(KeyErrServer)
	case errors.Is(err, domain.ErrEmptyCredentials):
		return l.T(KeyErrCredentials)
	case errors.Is(err, domain.ErrValidation):
		return l.T(KeyErrValidation)
	case errors.Is(err, domain.ErrUnauthenticated):
		return l.T(KeyErrUnauthenticated)
	case errors.Is(err, domain.ErrCancelled):
		return l.T(KeyCancelled)
	default:
		return l.T(KeyErrUnknown)
	}
}
