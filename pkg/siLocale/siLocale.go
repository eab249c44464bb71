package silocale

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"

	siunits "github.com/siquant/siquant/pkg/siUnits"
)

// Localizer is the capability interface for items with localizable
// names. Prefixes and units satisfy it, other display types can opt
// in. Key returns the lookup key of the item, Name its untranslated
// name used as fallback.
type Localizer interface {
	Key() string
	Name() string
}

// Table maps localization keys to translated names per language. A
// lookup matches the requested language against the registered ones,
// missing languages or keys fall back to the fallback language and
// finally to the untranslated name. A Table is not safe for concurrent
// mutation, populate it before handing it out.
type Table struct {
	fallback language.Tag
	entries  map[language.Tag]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
}

func NewTable(fallback language.Tag) *Table {
	return &Table{
		fallback: fallback,
		entries:  make(map[language.Tag]map[string]string),
	}
}

// Add registers a translated name for a key.
func (t *Table) Add(tag language.Tag, key, name string) {
	if _, ok := t.entries[tag]; !ok {
		t.entries[tag] = make(map[string]string)
	}
	t.entries[tag][key] = name
	t.matcher = nil
}

// AddAll registers all translations of the given map.
func (t *Table) AddAll(tag language.Tag, names map[string]string) {
	for key, name := range names {
		t.Add(tag, key, name)
	}
}

// Tags returns the registered languages, the fallback language first,
// the rest in deterministic order.
func (t *Table) Tags() []language.Tag {
	tags := maps.Keys(t.entries)
	slices.SortFunc(tags, func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	ordered := []language.Tag{t.fallback}
	for _, tag := range tags {
		if tag != t.fallback {
			ordered = append(ordered, tag)
		}
	}
	return ordered
}

func (t *Table) match(tag language.Tag) language.Tag {
	if t.matcher == nil {
		t.tags = t.Tags()
		t.matcher = language.NewMatcher(t.tags)
	}
	_, idx, _ := t.matcher.Match(tag)
	return t.tags[idx]
}

// Lookup returns the translated name for key in the language matching
// tag. The second return value reports whether a translation was
// found, after falling back to the fallback language.
func (t *Table) Lookup(tag language.Tag, key string) (string, bool) {
	matched := t.match(tag)
	if name, ok := t.entries[matched][key]; ok {
		return name, true
	}
	if name, ok := t.entries[t.fallback][key]; ok {
		return name, true
	}
	return "", false
}

// Name returns the localized name of item, falling back to the
// untranslated name when no translation is registered.
func (t *Table) Name(tag language.Tag, item Localizer) string {
	if name, ok := t.Lookup(tag, item.Key()); ok {
		return name
	}
	return item.Name()
}

// QuantityString renders a quantity with its prefix and unit written
// out in the language matching tag, e.g. "9.9 Kilometer" for German.
func (t *Table) QuantityString(tag language.Tag, q siunits.Quantity) string {
	words := t.Name(tag, q.Number().Prefix()) + t.Name(tag, q.Unit())
	if words == "" {
		return siunits.FormatFloat(q.Number().Mantissa())
	}
	return siunits.FormatFloat(q.Number().Mantissa()) + " " + words
}
