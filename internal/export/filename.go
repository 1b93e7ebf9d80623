package export

import (
	"regexp"
	"strings"
)

const (
	documentTitleRunes    = 30
	spreadsheetTitleRunes = 15
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// DocumentFileName is "ATHAR_Proposal_" plus the first 30 characters of the
// title with whitespace runs collapsed to "_".
func DocumentFileName(title string) string {
	name := whitespaceRun.ReplaceAllString(firstRunes(title, documentTitleRunes), "_")
	return "ATHAR_Proposal_" + stripSeparators(name) + ".docx"
}

// SpreadsheetFileName is "ATHAR_Budget_" plus the first 15 characters of
// the title.
func SpreadsheetFileName(title string) string {
	return "ATHAR_Budget_" + stripSeparators(firstRunes(title, spreadsheetTitleRunes)) + ".xlsx"
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return -1
		}
		return r
	}, s)
}
