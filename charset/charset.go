package charset

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"

	"github.com/npillmayer/paneltext/codepoint"
	"github.com/npillmayer/paneltext/linewrap"
)

// Byte footprints of one display character in the panel charset.
const (
	narrowFootprint = 1 // Latin, Cyrillic, Greek, … fonts
	wideFootprint   = 3 // East/South East Asian code points in UTF-8
)

// Context represents information about the typesetting environment of the
// target panel.
type Context struct {
	ForceEastAsian bool            // force East Asian footprints
	Script         language.Script // ISO 15924 script identifier
	Locale         string          // ISO 639/3166 locale string
}

// EastAsianContext is a context for East Asian panels.
var EastAsianContext = makeEastAsianContext()

// LatinContext is a context for western panels.
var LatinContext = makeLatinContext()

func makeEastAsianContext() *Context {
	ctx := &Context{
		ForceEastAsian: true,
		Script:         language.MustParseScript("Hant"),
		Locale:         "zh-Hant",
	}
	return ctx
}

func makeLatinContext() *Context {
	ctx := &Context{
		ForceEastAsian: false,
		Script:         language.MustParseScript("Latn"),
		Locale:         "en-US",
	}
	return ctx
}

// ContextFromEnvironment creates a Context from the user's environment,
// i.e. the locale the host process runs under. If no locale can be
// detected, en-US is assumed.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
		T().Infof("charset sets default user locale %v", userLocale)
	} else {
		T().Infof("charset detected user locale %v", userLocale)
	}
	lang := language.Make(userLocale)
	script, _ := lang.Script()
	ctx := &Context{
		Script: script,
		Locale: userLocale,
	}
	return ctx
}

// BytesPerChar returns the byte footprint of one display character under
// ctx: 1 for narrow-script charsets, 3 for charsets carrying East or South
// East Asian glyphs. A nil or empty context is treated like LatinContext.
func (ctx *Context) BytesPerChar() int {
	if ctx == nil {
		return narrowFootprint
	}
	if ctx.ForceEastAsian {
		return wideFootprint
	}
	lang := language.Make(ctx.Locale)
	script := ctx.Script
	if script == (language.Script{}) {
		script, _ = lang.Script()
	}
	return footprintFor(script, lang)
}

// WrapConfig pairs ctx with a line length limit, yielding a complete
// configuration for linewrap.Wrap.
func (ctx *Context) WrapConfig(limit int) linewrap.Config {
	return linewrap.Config{
		LineLimit:    limit,
		BytesPerChar: ctx.BytesPerChar(),
	}
}

func footprintFor(script language.Script, lang language.Tag) int {
	scrcode := script.String()
	switch scrcode {
	case
		// East Asian
		"Bopo", "Hanb", "Hani", "Hans",
		"Hant", "Hang", "Hira", "Kana",
		"Lana", "Kitl", "Kits", "Nkdb",
		"Nkgb", "Plrd",
		// South East Asian; 3 UTF-8 bytes per code point as well
		"Batk", "Beng", "Bugi", "Mymr",
		"Cham", "Java", "Khmr", "Laoo",
		"Lisu", "Mtei", "Thai", "Yiii",
		"Bali", "Khar", "Rjng", "Roro",
		"Tglg", "Wole", "Buhd", "Tagb":
		return wideFootprint
	}
	_, _, confidence := eaMatch.Match(lang)
	if confidence == language.No {
		return narrowFootprint
	}
	return wideFootprint
}

var eaMatch = language.NewMatcher([]language.Tag{
	language.Chinese, // The first language is used as fallback.
	language.Japanese,
	language.Korean,
	language.Vietnamese,
	language.Thai,
	language.Mongolian,
	language.Burmese,
	language.Khmer,
})

// Footprint returns the widest UTF-8 sequence length observed in sample,
// which is the bytes-per-char factor a panel font covering all of sample
// needs. Invalid sequences and anything following them contribute nothing;
// the minimum footprint is 1.
func Footprint(sample string) int {
	footprint := narrowFootprint
	sc := codepoint.NewScanner([]byte(sample))
	for sc.Next() {
		if sc.Width() > footprint {
			footprint = sc.Width()
		}
	}
	return footprint
}
