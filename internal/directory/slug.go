package directory

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify turns a display title into a lower-case, hyphen-separated slug.
// Runs of anything that is not a letter or digit collapse into one hyphen,
// so "Painting & Drywall" becomes "painting-drywall".
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// Humanize replaces hyphens with spaces, as used in directory headings.
func Humanize(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}

// TitleFromSlug builds a title-cased label from a slug ("interior-painting"
// becomes "Interior Painting").
func TitleFromSlug(slug string) string {
	// a Caser keeps state, so each call gets its own
	return cases.Title(language.English).String(Humanize(slug))
}
