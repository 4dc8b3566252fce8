package adaptable

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLang is the language strings fall back to.
const DefaultLang = "en"

// ErrFallbackLangMissing is returned when a StringTable is loaded without a
// language pack for its fallback language.
var ErrFallbackLangMissing = errors.New("fallback language pack not loaded")

// StringTable holds the theme's localized strings, keyed by language and then
// by string key. It's read-only once loaded and safe for concurrent use.
type StringTable struct {
	packs    map[string]map[string]string
	fallback string

	// matchLangs[i] is the pack name for the i-th tag given to matcher
	matcher    language.Matcher
	matchLangs []string
}

// LoadStrings reads every "<lang>.yaml" file in dir of fsys as a language
// pack: a flat mapping of string keys to translations. fallback must be one
// of the loaded languages.
func LoadStrings(fsys fs.FS, dir, fallback string) (*StringTable, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("error listing language packs in %q: %w", dir, err)
	}
	table := &StringTable{
		packs:    map[string]map[string]string{},
		fallback: fallback,
	}
	for _, file := range files {
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading language pack %q: %w", file, err)
		}
		pack := map[string]string{}
		if err := yaml.Unmarshal(raw, &pack); err != nil {
			return nil, fmt.Errorf("error parsing language pack %q: %w", file, err)
		}
		lang := strings.TrimSuffix(path.Base(file), ".yaml")
		table.packs[lang] = pack
	}
	if _, ok := table.packs[fallback]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrFallbackLangMissing, fallback)
	}
	table.buildMatcher()
	return table, nil
}

// DefaultStrings returns the language packs bundled with the theme.
func DefaultStrings() (*StringTable, error) {
	return LoadStrings(bundled, "lang", DefaultLang)
}

// buildMatcher indexes the packs whose names are BCP 47 tags, with the
// fallback first so it wins when nothing else matches.
func (t *StringTable) buildMatcher() {
	langs := []string{t.fallback}
	for _, lang := range t.Langs() {
		if lang != t.fallback {
			langs = append(langs, lang)
		}
	}
	var tags []language.Tag
	for _, lang := range langs {
		tag, err := parseLangTag(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		t.matchLangs = append(t.matchLangs, lang)
	}
	if len(tags) > 0 {
		t.matcher = language.NewMatcher(tags)
	}
}

func parseLangTag(lang string) (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-"))
}

// resolve returns the name of the pack serving lang: the pack of that exact
// name, else the closest pack by language tag, else the fallback.
func (t *StringTable) resolve(lang string) string {
	if _, ok := t.packs[lang]; ok {
		return lang
	}
	if t.matcher == nil {
		return t.fallback
	}
	tag, err := parseLangTag(lang)
	if err != nil {
		return t.fallback
	}
	_, idx, confidence := t.matcher.Match(tag)
	if confidence == language.No {
		return t.fallback
	}
	return t.matchLangs[idx]
}

// Get returns the string for key in lang, falling back to the fallback
// language and finally to "[[key]]" so missing strings are visible. Regional
// variants like "es_mx" use the "es" pack when there's no pack of their own.
func (t *StringTable) Get(lang, key string) string {
	if pack, ok := t.packs[t.resolve(lang)]; ok {
		if val, ok := pack[key]; ok {
			return val
		}
	}
	if val, ok := t.packs[t.fallback][key]; ok {
		return val
	}
	return "[[" + key + "]]"
}

// Langs returns the loaded languages, sorted.
func (t *StringTable) Langs() []string {
	out := make([]string, 0, len(t.packs))
	for lang := range t.packs {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}
