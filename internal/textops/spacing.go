// Package textops holds whole-document text transforms used by editor
// commands and imports.
package textops

import "regexp"

var (
	hanThenLatin = regexp.MustCompile(`(\p{Han})([A-Za-z0-9])`)
	latinThenHan = regexp.MustCompile(`([A-Za-z0-9])(\p{Han})`)
)

// InsertCJKSpacing puts a single space between Han characters and
// directly adjacent ASCII letters or digits. Existing spacing is kept, so
// the transform is idempotent.
func InsertCJKSpacing(s string) string {
	s = hanThenLatin.ReplaceAllString(s, "${1} ${2}")
	return latinThenHan.ReplaceAllString(s, "${1} ${2}")
}
