// Package arabic provides script detection and canonicalization of Arabic
// text: diacritic stripping, letter-variant folding, whitespace collapsing,
// and a cosmetic display-formatting pass.
//
// Normalization is used as classification input only; FormatDisplay is used
// for response formatting only and never feeds back into classification.
package arabic

import (
	"regexp"
	"strings"
)

var (
	// Arabic combining diacritic marks (tashkeel).
	diacriticsRe = regexp.MustCompile(`[\x{0617}-\x{061A}\x{064B}-\x{0652}]`)

	// Any code point in the Arabic Unicode block.
	arabicRangeRe = regexp.MustCompile(`[\x{0600}-\x{06FF}]`)

	alefVariantsRe = regexp.MustCompile(`[إأآا]`)
	tehMarbutaRe   = regexp.MustCompile(`ة`)
	whitespaceRe   = regexp.MustCompile(`\s+`)

	arabicPunctRe = regexp.MustCompile(`\s*([،؛؟])\s*`)
	periodRe      = regexp.MustCompile(`\s*\.\s*`)
	digitLetterRe = regexp.MustCompile(`([0-9])([ء-ي])`)
)

// IsArabic reports whether text contains at least one Arabic code point.
// This is a language-routing signal, not exhaustive script detection.
func IsArabic(text string) bool {
	return arabicRangeRe.MatchString(text)
}

// RemoveDiacritics strips Arabic tashkeel marks. Non-Arabic input is
// returned unchanged.
func RemoveDiacritics(text string) string {
	return diacriticsRe.ReplaceAllString(text, "")
}

// Normalize canonicalizes Arabic text: diacritics are removed, the four
// Alef variants fold to bare Alef, Teh Marbuta folds to Heh, and runs of
// whitespace collapse to a single space with leading/trailing space trimmed.
//
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	text = RemoveDiacritics(text)
	text = alefVariantsRe.ReplaceAllString(text, "ا")
	text = tehMarbutaRe.ReplaceAllString(text, "ه")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// FormatDisplay fixes spacing around Arabic punctuation and digit/letter
// boundaries. Cosmetic only: used when rendering responses.
func FormatDisplay(text string) string {
	text = arabicPunctRe.ReplaceAllString(text, "$1 ")
	text = periodRe.ReplaceAllString(text, ". ")
	text = digitLetterRe.ReplaceAllString(text, "$1 $2")
	return strings.TrimSpace(text)
}
