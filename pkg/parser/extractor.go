package parser

import (
	"regexp"
	"strings"
)

// collegeCodeStart matches the token that opens the college column group,
// e.g. "1001:Govt" in "1001:Govt Medical College".
var collegeCodeStart = regexp.MustCompile(`^\d+:`)

// womenMarker follows a category code when the seat was allotted under the
// women's quota; the code then belongs to the quota text, not the category
// column.
const womenMarker = "(W)"

// extract decodes the whitespace tokens of one in-table line into a Record.
// The tokens are consumed left to right with no backtracking. A non-empty
// reject reason means the row failed a mandatory field and must be dropped
// whole; partial rows are never emitted.
func extract(tokens []string) (Record, string) {
	var rec Record
	idx := 0

	// Four mandatory numeric fields, fixed order.
	mandatory := []struct {
		name string
		dst  *string
	}{
		{"Sr No", &rec.SrNo},
		{"AIR", &rec.AIR},
		{"NEET Roll No.", &rec.NEETRollNo},
		{"CET Form No.", &rec.CETFormNo},
	}
	for _, field := range mandatory {
		if idx >= len(tokens) || !allDigits(tokens[idx]) {
			return Record{}, "invalid " + field.name
		}
		*field.dst = tokens[idx]
		idx++
	}

	// Name runs until the gender marker or the tokens run out.
	start := idx
	for idx < len(tokens) && tokens[idx] != "M" && tokens[idx] != "F" {
		idx++
	}
	rec.Name = strings.Join(tokens[start:idx], " ")

	if idx < len(tokens) && (tokens[idx] == "M" || tokens[idx] == "F") {
		rec.Gender = tokens[idx]
		idx++
	}

	// Category is optional: at most one primary code plus one sub-code. A
	// category token followed by the women marker is left for the quota.
	if idx < len(tokens) && isCategory(tokens[idx]) {
		if idx+1 < len(tokens) && tokens[idx+1] == womenMarker {
			// leave the token unconsumed
		} else {
			cat := tokens[idx]
			idx++
			if idx < len(tokens) && isSubCode(tokens[idx]) && !isSubCode(cat) {
				cat += " " + tokens[idx]
				idx++
			}
			rec.Category = cat
		}
	}

	// Quota runs until a college-code-shaped token. Truncated renderings of
	// "Choice Not Available/Filled" collapse to one canonical value.
	start = idx
	for idx < len(tokens) && !collegeCodeStart.MatchString(tokens[idx]) {
		idx++
	}
	quota := strings.Join(tokens[start:idx], " ")
	if strings.HasPrefix(quota, "Choice") {
		quota = "Choice Not Available"
	}
	rec.Quota = quota

	// The remaining tokens form "code:name"; split on the first colon only,
	// since college names may contain none but codes never contain one.
	if idx < len(tokens) {
		code, name, found := strings.Cut(strings.Join(tokens[idx:], " "), ":")
		if found {
			rec.CollegeCode = strings.TrimSpace(code)
			rec.CollegeName = strings.TrimSpace(name)
		}
	}

	return rec, ""
}

// allDigits reports whether s is non-empty and consists only of ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
