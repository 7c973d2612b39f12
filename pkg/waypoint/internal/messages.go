package internal

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed locales/*.toml
var localeFS embed.FS

var fallbackLanguage = language.English

// Messages is a localized message catalogue bound to one language.
type Messages struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
	printer   *message.Printer
}

// NewMessages loads the embedded catalogues and picks the best language
// for the given preferences, most preferred first. Unparseable preferences
// are skipped; English is used when nothing matches.
func NewMessages(preferred ...string) (*Messages, error) {
	bundle := i18n.NewBundle(fallbackLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list catalogues: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("load catalogue %s: %w", file, err)
		}
	}

	tags := make([]language.Tag, 0, len(preferred))
	for _, raw := range preferred {
		tag, err := language.Parse(raw)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	tag, _, _ := matcher.Match(tags...)
	base, _ := tag.Base()
	tag = language.Make(base.String())

	return &Messages{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
		printer:   message.NewPrinter(tag),
	}, nil
}

// Tag returns the language the catalogue resolved to.
func (m *Messages) Tag() language.Tag {
	return m.tag
}

// Text localizes a message. A missing message yields its id so a gap in a
// catalogue never blanks the page.
func (m *Messages) Text(id string, data map[string]any) string {
	out, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		GetInternalLogger().Warn("missing message", "id", id, "language", m.tag.String(), "error", err)
		return id
	}
	return out
}

// Plural localizes a message with plural forms selected by count.
func (m *Messages) Plural(id string, count int, data map[string]any) string {
	if data == nil {
		data = map[string]any{}
	}
	data["Count"] = count
	out, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		PluralCount:  count,
	})
	if err != nil {
		GetInternalLogger().Warn("missing message", "id", id, "language", m.tag.String(), "error", err)
		return id
	}
	return out
}

// Number formats a decimal with the language's separators.
func (m *Messages) Number(v float64, decimals int) string {
	return m.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}
