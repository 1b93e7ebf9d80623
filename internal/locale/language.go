// Package locale holds the two supported interface languages and every
// user-facing string, so that text, reading direction and default labels
// always switch together.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Language is the active interface and document language.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// ErrUnsupported is returned for languages other than Arabic and English.
var ErrUnsupported = errors.New("unsupported language (use ar or en)")

// Default is the language used when nothing else is configured.
const Default = Arabic

// Direction is the reading direction of a language.
type Direction string

const (
	LeftToRight Direction = "ltr"
	RightToLeft Direction = "rtl"
)

// Parse resolves user input such as "ar", "en-GB", "Arabic" or "عربي"
// to a supported Language.
func Parse(s string) (Language, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "arabic", "عربي", "العربية":
		return Arabic, nil
	case "english", "انجليزي", "الإنجليزية":
		return English, nil
	}

	tag, err := language.Parse(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ar":
		return Arabic, nil
	case "en":
		return English, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == Arabic || l == English
}

// Direction returns the reading direction.
func (l Language) Direction() Direction {
	if l == Arabic {
		return RightToLeft
	}
	return LeftToRight
}

// IsRTL reports whether text in this language is read right-to-left.
func (l Language) IsRTL() bool {
	return l.Direction() == RightToLeft
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

// Labels returns the user-facing strings for the language.
// Unknown values fall back to the default language.
func (l Language) Labels() Labels {
	if l == English {
		return englishLabels
	}
	return arabicLabels
}

// GeneralItems is the label of the implicit default budget group.
func (l Language) GeneralItems() string {
	return l.Labels().GeneralItems
}

// DefaultCategories is the category set implied when the user supplies none.
func (l Language) DefaultCategories() []string {
	if l == English {
		return []string{"Staff", "Procurement", "Transport", "Activities", "Management"}
	}
	return []string{"الموظفين", "المشتريات", "المواصلات", "الأنشطة", "الإدارة"}
}

// FormatAmount renders a money amount with the language's digit grouping.
func (l Language) FormatAmount(v float64) string {
	p := message.NewPrinter(l.Tag())
	return p.Sprintf("%.2f", v)
}
