// Package entity extracts structured fragments (filenames, URLs, quoted
// phrases) from raw input text via pattern matching.
//
// Extraction operates on the un-normalized original so casing and URLs
// survive intact. All patterns run independently over the same input;
// overlapping matches (a quoted filename, say) appear in every list whose
// pattern they satisfy.
package entity

import (
	"regexp"

	"github.com/dalil-ai/dalil/model"
)

var (
	// Filenames with a whitelisted extension. The extension comparison is
	// case-insensitive; the rest of the name is matched verbatim. The name
	// class spans Unicode letters and digits so Arabic filenames match; a
	// leading \b would be ASCII-only and never hold before an Arabic letter.
	fileRe = regexp.MustCompile(`[\p{L}\p{N}_\-]+\.(?i:py|js|txt|md|json|html|css|sh|yml|yaml|env)\b`)

	// scheme:// followed by a run of non-whitespace, non-bracket,
	// non-quote characters.
	urlRe = regexp.MustCompile("https?://[^\\s<>\"{}|\\\\^`\\[\\]]+")

	// Substrings enclosed in single or double quotes. The quote characters
	// are matched as a class, so a phrase opened with " may close with '.
	// That leniency is deliberate and pinned by tests.
	quotedRe = regexp.MustCompile(`["']([^"']+)["']`)
)

// Extract pulls file names, URLs and quoted keywords out of text.
// It is total: no input produces an error. Lists preserve first-occurrence
// order and keep duplicates. The Commands list is reserved and stays empty.
func Extract(text string) model.Entities {
	entities := model.Entities{
		Files:    []string{},
		URLs:     []string{},
		Commands: []string{},
		Keywords: []string{},
	}

	entities.Files = append(entities.Files, fileRe.FindAllString(text, -1)...)
	entities.URLs = append(entities.URLs, urlRe.FindAllString(text, -1)...)

	for _, m := range quotedRe.FindAllStringSubmatch(text, -1) {
		entities.Keywords = append(entities.Keywords, m[1])
	}

	return entities
}
