package domain

import (
	"strings"

	"github.com/fift2939-create/ather1/internal/locale"
)

// Category names the display group of a budget line. The zero value (or
// whitespace only) is the uncategorized variant, which is shown under the
// language's "General Items" label.
type Category string

// Uncategorized is the explicit absent category.
const Uncategorized Category = ""

// IsUncategorized reports whether no category was given.
func (c Category) IsUncategorized() bool {
	return strings.TrimSpace(string(c)) == ""
}

// Label returns the group name under which the line is displayed.
func (c Category) Label(lang locale.Language) string {
	if c.IsUncategorized() {
		return lang.GeneralItems()
	}
	return strings.TrimSpace(string(c))
}

// ParseCategories splits comma separated user input into category names,
// dropping blanks and duplicates while keeping first-seen order. Both the
// ASCII and the Arabic comma are accepted.
func ParseCategories(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '،' || r == '\n'
	})
	seen := make(map[string]bool, len(fields))
	var out []string
	for _, f := range fields {
		name := strings.TrimSpace(f)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
