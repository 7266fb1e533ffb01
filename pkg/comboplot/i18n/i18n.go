// Package i18n holds the message catalogs and the Localizer that picks
// between them.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Supported languages. The first one is the default.
var (
	EnglishUS         = language.AmericanEnglish
	ChineseSimplified = language.MustParse("zh-CN")

	Supported = []language.Tag{EnglishUS, ChineseSimplified}
)

// ErrUnsupportedLanguage is returned for languages without a catalog.
var ErrUnsupportedLanguage = errors.New("unsupported language")

var matcher = language.NewMatcher(Supported)

// Listener is called after the display language changes.
type Listener func(tag language.Tag) error

// Localizer translates message keys for the current display language and
// notifies listeners when it changes. The zero value is not usable; create
// one with New.
type Localizer struct {
	bundle    *goi18n.Bundle
	tag       language.Tag
	localizer *goi18n.Localizer
	listeners []Listener
}

// New returns a Localizer for tag, falling back to the default language
// when tag is not supported.
func New(tag language.Tag) (*Localizer, error) {
	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}
	l := &Localizer{bundle: bundle}
	l.use(Match(tag))
	return l, nil
}

func newBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(EnglishUS)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, "locales/"+f.Name()); err != nil {
			return nil, fmt.Errorf("load %s: %w", f.Name(), err)
		}
	}
	return bundle, nil
}

func (l *Localizer) use(tag language.Tag) {
	l.tag = tag
	l.localizer = goi18n.NewLocalizer(l.bundle, tag.String())
}

// Language returns the current display language.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// AddListener registers fn to run after every language change.
func (l *Localizer) AddListener(fn Listener) {
	l.listeners = append(l.listeners, fn)
}

// SetLanguage switches the display language and notifies listeners. Setting
// the current language again does nothing. Listener errors are joined; the
// change itself is kept.
func (l *Localizer) SetLanguage(tag language.Tag) error {
	if !IsSupported(tag) {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, tag)
	}
	if tag == l.tag {
		return nil
	}
	l.use(tag)

	var errs []error
	for _, fn := range l.listeners {
		if err := fn(tag); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// T returns the message for key, filled from data. Unknown keys come back
// as "!key!".
func (l *Localizer) T(key string, data ...map[string]interface{}) string {
	cfg := &goi18n.LocalizeConfig{MessageID: key}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	msg, err := l.localizer.Localize(cfg)
	if err != nil && msg == "" {
		return "!" + key + "!"
	}
	return msg
}

// IsSupported reports whether tag has a catalog.
func IsSupported(tag language.Tag) bool {
	for _, s := range Supported {
		if s == tag {
			return true
		}
	}
	return false
}

// Match returns the supported language closest to tag, or the default.
func Match(tag language.Tag) language.Tag {
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Supported[0]
	}
	return Supported[index]
}

// Parse parses a language name such as "zh-CN", "zh_CN" or "en" and matches
// it to a supported language.
func Parse(s string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	return Supported[index], nil
}

// SystemDefault derives the display language from LC_ALL, LC_MESSAGES or
// LANG (e.g. "zh_CN.UTF-8"), falling back to the default language.
func SystemDefault() language.Tag {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if tag, err := Parse(v); err == nil {
			return tag
		}
	}
	return Supported[0]
}
