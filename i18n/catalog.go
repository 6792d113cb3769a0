// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// BaseLocale is the default locale used when no specific locale is set.
const BaseLocale = "en"

// poDomain is the gettext domain to load under each locale.
const poDomain = "langforge"

// baseTag is the canonical tag for BaseLocale.
var baseTag = language.Make(BaseLocale)

var (
	// localesByTag maps canonical BCP 47 tags, for example
	// "en", "ja", "pt-BR", to their loaded gotext.Locale.
	localesByTag map[string]*gotext.Locale

	// supportedTags holds the list of BCP 47 tags for which a locale was successfully loaded.
	supportedTags []language.Tag

	// matcher is a private [language.Matcher] derived from the loaded locales.
	matcher language.Matcher
)

// Setup initialises package i18n by loading gettext catalogues from fsys
// and constructing a language matcher.
//
// It scans dir within fsys for .po files and loads the "langforge" gettext
// domain. The expected layout is:
//
//	<dir>/<locale>.po
//
// The <locale> filename part may use hyphens or underscores, for example
// "pt-BR.po" or "pt_BR.po", and is normalised to a canonical BCP 47 language
// tag for matching. The template file, "<dir>/langforge.pot", is ignored.
// The base locale, specified by BaseLocale, is always included and acts as
// the default fallback.
//
// Calling Setup again replaces the previously loaded locales and matcher.
func Setup(fsys fs.FS, dir string) error {
	Logger = log.With().Str("sys", "i18n").Logger()

	localesByTag = make(map[string]*gotext.Locale)
	supportedTags = nil
	matcher = nil

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read catalogue directory %s: %w", dir, err)
	}

	var tagsList []language.Tag

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".po") {
			continue
		}

		fileName := entry.Name()
		localeName := strings.TrimSuffix(fileName, ".po")

		// Accept both underscore and hyphen.
		// Convert to a canonical BCP 47 string for matching and display.
		t, err := language.Parse(strings.ReplaceAll(localeName, "_", "-"))
		if err != nil {
			Logger.Warn().Err(err).Str("file", fileName).Msg("Skipping invalid locale file")
			continue
		}

		canonical := t.String()

		po := gotext.NewPoFS(fsys)
		po.ParseFile(path.Join(dir, fileName))

		loc := gotext.NewLocale("", canonical) // Base path is unused when manually adding translators.
		loc.AddTranslator(poDomain, po)

		localesByTag[canonical] = loc

		tagsList = append(tagsList, t)

		Logger.Info().
			Str("locale", canonical).
			Str("domain", poDomain).
			Msg("Loaded locale")
	}

	// Build a private matcher from the loaded languages.
	// baseTag is first to make it the default fallback for matching.
	all := make([]language.Tag, 0, len(tagsList)+1)

	all = append(all, baseTag)

	sort.Slice(tagsList, func(i, j int) bool { return tagsList[i].String() < tagsList[j].String() })

	for _, t := range tagsList {
		if t == baseTag {
			continue
		}

		all = append(all, t)
	}

	matcher = language.NewMatcher(all)
	supportedTags = all

	return nil
}

// Locales returns the list of supported language tags derived from
// the loaded gettext catalogues.
//
// The returned slice is a copy, is sorted by tag string, and is safe to retain.
//
// Setup must be called successfully before using Locales; otherwise it panics.
func Locales() []language.Tag {
	if matcher == nil {
		panic("i18n: Setup must be called before calling Locales")
	}

	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)

	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// resolveLocale matches t to one of the loaded locales and returns the
// corresponding gotext.Locale and the matched tag.
// If no matcher or no locale is found, it returns nil and baseTag.
func resolveLocale(t language.Tag) (*gotext.Locale, language.Tag) {
	if matcher == nil {
		return nil, baseTag
	}

	matched, _ := language.MatchStrings(matcher, t.String())

	return localesByTag[matched.String()], matched
}
