package render

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrMissingTranslation is returned by Catalog when no message exists for a
// key in the requested locale or any of its fallbacks.
var ErrMissingTranslation = errors.New("render: missing translation")

// Catalog is a Translator backed by static per-locale message tables. Locale
// lookups fall back along the language tag (pt-BR to pt) and finally to the
// catalog's default locale.
type Catalog struct {
	messages map[language.Tag]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
}

var _ Translator = (*Catalog)(nil)

// NewCatalog builds a catalog from locale -> key -> message tables.
// defaultLocale picks the last-resort table.
func NewCatalog(defaultLocale string, messages map[string]map[string]string) (*Catalog, error) {
	def, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("render: default locale %q: %w", defaultLocale, err)
	}

	c := &Catalog{
		messages: make(map[language.Tag]map[string]string, len(messages)),
		tags:     []language.Tag{def},
	}
	for locale, table := range messages {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("render: locale %q: %w", locale, err)
		}
		cloned := make(map[string]string, len(table))
		for key, msg := range table {
			cloned[strings.TrimSpace(key)] = msg
		}
		c.messages[tag] = cloned
		if tag != def {
			c.tags = append(c.tags, tag)
		}
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// ParseCatalog decodes a YAML (or JSON) document of the form
// {locale: {key: message}}.
func ParseCatalog(defaultLocale string, data []byte) (*Catalog, error) {
	var messages map[string]map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("render: parse catalog: %w", err)
	}
	return NewCatalog(defaultLocale, messages)
}

// Translate returns the message for key. Args, when present, are applied with
// fmt.Sprintf.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	for _, tag := range c.candidates(locale) {
		if msg, ok := c.messages[tag][key]; ok {
			if len(args) > 0 {
				return fmt.Sprintf(msg, args...), nil
			}
			return msg, nil
		}
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrMissingTranslation, key, locale)
}

// candidates lists the tables to consult for locale, most specific first.
func (c *Catalog) candidates(locale string) []language.Tag {
	var out []language.Tag
	seen := make(map[language.Tag]bool)
	add := func(tag language.Tag) {
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}

	if tag, err := language.Parse(locale); err == nil {
		for t := tag; !t.IsRoot(); t = t.Parent() {
			add(t)
		}
		_, index, confidence := c.matcher.Match(tag)
		if confidence != language.No {
			add(c.tags[index])
		}
	}
	add(c.tags[0])
	return out
}
