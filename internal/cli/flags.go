package cli

import (
	"github.com/spf13/pflag"

	"github.com/fift2939-create/ather1/internal/locale"
)

// languageFlag is a pflag.Value accepting anything locale.Parse does.
type languageFlag struct {
	lang locale.Language
}

var _ pflag.Value = (*languageFlag)(nil)

func newLanguageFlag(def locale.Language) *languageFlag {
	if !def.Valid() {
		def = locale.Default
	}
	return &languageFlag{lang: def}
}

func (f *languageFlag) String() string { return string(f.lang) }
func (f *languageFlag) Type() string   { return "language" }

func (f *languageFlag) Set(s string) error {
	l, err := locale.Parse(s)
	if err != nil {
		return err
	}
	f.lang = l
	return nil
}

func (f *languageFlag) Language() locale.Language {
	return f.lang
}
