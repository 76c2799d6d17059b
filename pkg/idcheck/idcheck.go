// Package idcheck implements the rule-based validation of Philippine KYC ID
// numbers used by the console's review screens. Validation is pure: it
// returns the list of failed rules, empty when the ID passes.
package idcheck

import (
	"regexp"
	"sort"
	"strings"
)

var (
	allowedCharPattern = regexp.MustCompile(`^[A-Za-z0-9\-\s]+$`)
	stripPattern       = regexp.MustCompile(`[\s\-]`)
	alnumPattern       = regexp.MustCompile(`^[A-Z0-9]+$`)
)

type rule struct {
	pattern *regexp.Regexp
	message string
}

var typeRules = map[string]rule{
	"Philippine Passport": {regexp.MustCompile(`^[A-Z0-9]{8,9}$`), "Passport number must be 8-9 alphanumeric characters."},
	"Driver's License":    {regexp.MustCompile(`^[A-Z0-9]{9,20}$`), "Driver's License number must be 9-20 alphanumeric characters."},
	"SSS ID":              {regexp.MustCompile(`^\d{10}$`), "SSS ID number must be exactly 10 digits."},
	"GSIS ID":             {regexp.MustCompile(`^\d{8,13}$`), "GSIS ID number must be 8-13 digits."},
	"UMID":                {regexp.MustCompile(`^\d{10,13}$`), "UMID number must be 10-13 digits."},
	"PhilHealth ID":       {regexp.MustCompile(`^\d{12}$`), "PhilHealth ID number must be exactly 12 digits."},
	"TIN ID":              {regexp.MustCompile(`^(\d{9}|\d{12})$`), "TIN ID number must be 9 or 12 digits."},
	"Postal ID":           {regexp.MustCompile(`^[A-Z0-9]{6,20}$`), "Postal ID number must be 6-20 alphanumeric characters."},
	"Voter's ID":          {regexp.MustCompile(`^[A-Z0-9]{6,20}$`), "Voter's ID number must be 6-20 alphanumeric characters."},
	"PRC ID":              {regexp.MustCompile(`^[A-Z0-9]{6,20}$`), "PRC ID number must be 6-20 alphanumeric characters."},
	"Senior Citizen ID":   {regexp.MustCompile(`^[A-Z0-9]{6,20}$`), "Senior Citizen ID number must be 6-20 alphanumeric characters."},
	"PWD ID":              {regexp.MustCompile(`^[A-Z0-9]{6,20}$`), "PWD ID number must be 6-20 alphanumeric characters."},
	"National ID":         {regexp.MustCompile(`^\d{16}$`), "National ID number must be exactly 16 digits."},
	"Others":              {regexp.MustCompile(`^[A-Z0-9]{6,20}$`), "ID number must be 6-20 alphanumeric characters."},
}

// Long-form labels the console's dropdown uses for some types.
var typeAliases = map[string]string{
	"UMID (Unified Multi-Purpose ID)": "UMID",
	"PRC ID (Professional License)":   "PRC ID",
	"National ID (PhilSys)":           "National ID",
}

// Normalize strips spaces and dashes and upper-cases an ID number.
func Normalize(idNumber string) string {
	return strings.ToUpper(stripPattern.ReplaceAllString(idNumber, ""))
}

// NormalizeType maps a raw ID-type label to a supported type, defaulting to
// "Others" for anything unrecognized.
func NormalizeType(idType string) string {
	trimmed := strings.TrimSpace(idType)
	if trimmed == "" {
		return "Others"
	}
	if _, ok := typeRules[trimmed]; ok {
		return trimmed
	}
	if canonical, ok := typeAliases[trimmed]; ok {
		return canonical
	}
	return "Others"
}

// Validate applies the generic and type-specific rules to an ID number and
// returns the deduplicated, sorted list of failure reasons. An empty result
// means the ID is valid.
func Validate(idNumber, idType string) []string {
	var reasons []string

	raw := idNumber
	if strings.TrimSpace(raw) == "" {
		return []string{"ID number is required."}
	}

	normalized := Normalize(raw)
	normalizedType := NormalizeType(idType)

	if !allowedCharPattern.MatchString(raw) {
		reasons = append(reasons, "ID contains unsupported characters.")
	}
	if normalizedType == "Others" && (len(normalized) < 6 || len(normalized) > 20) {
		reasons = append(reasons, "ID length must be between 6 and 20 characters.")
	}
	if normalized != "" {
		if !alnumPattern.MatchString(normalized) {
			reasons = append(reasons, "ID must be alphanumeric after normalization.")
		}
		if digitCount(normalized) < 2 {
			reasons = append(reasons, "ID must contain at least one digit.")
		}
		if hasRepeatRun(normalized, 5) {
			reasons = append(reasons, "ID contains excessive repeated characters.")
		}
		if r := typeRules[normalizedType]; !r.pattern.MatchString(normalized) {
			reasons = append(reasons, r.message)
		}
	}

	return dedupeSorted(reasons)
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// hasRepeatRun reports whether s contains the same character repeated at
// least n times in a row.
func hasRepeatRun(s string, n int) bool {
	run := 0
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

func dedupeSorted(reasons []string) []string {
	seen := make(map[string]struct{}, len(reasons))
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
