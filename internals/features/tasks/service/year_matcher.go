package service

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Cohort tags on tasks are free text ("3rd Year", "Year 3", "third year").
// Matching derives every equivalent textual form of each tag and builds one
// case-insensitive, word-bounded alternation. The same escaping scheme
// (QuoteMeta on the literal, derived forms are plain alphanumerics) is used
// by every caller.

var (
	digitRx = regexp.MustCompile(`\d+`)

	ordinalWords = map[string]int{
		"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
		"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9,
	}
	ordinalWordByDigit = map[int]string{
		1: "first", 2: "second", 3: "third", 4: "fourth", 5: "fifth",
		6: "sixth", 7: "seventh", 8: "eighth", 9: "ninth",
	}
)

func ordinalSuffix(n int) string {
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// MatchesAllYears reports whether the tag list places no restriction:
// empty, or any tag is the literal "all" (case-insensitive).
func MatchesAllYears(tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	for _, t := range tokens {
		if strings.EqualFold(strings.TrimSpace(t), "all") {
			return true
		}
	}
	return false
}

// yearTokenForms derives the equivalent textual forms of one tag.
func yearTokenForms(token string) []string {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	set := map[string]struct{}{
		regexp.QuoteMeta(token): {},
	}

	add := func(n int) {
		d := strconv.Itoa(n)
		set[d] = struct{}{}
		set[d+ordinalSuffix(n)] = struct{}{}
		if w, ok := ordinalWordByDigit[n]; ok {
			set[w] = struct{}{}
		}
	}

	for _, d := range digitRx.FindAllString(token, -1) {
		if n, err := strconv.Atoi(d); err == nil && n > 0 {
			add(n)
		}
	}

	lower := strings.ToLower(token)
	for word, n := range ordinalWords {
		if containsWord(lower, word) {
			add(n)
		}
	}

	forms := make([]string, 0, len(set))
	for f := range set {
		forms = append(forms, f)
	}
	sort.Strings(forms)
	return forms
}

func containsWord(s, word string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordChar(s[start-1])
		afterOK := end == len(s) || !isWordChar(s[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// BuildYearPattern compiles the union alternation for a tag list. The bool
// result is true when the tags match everyone (no pattern needed).
func BuildYearPattern(tokens []string) (*regexp.Regexp, bool, error) {
	if MatchesAllYears(tokens) {
		return nil, true, nil
	}

	seen := map[string]struct{}{}
	var forms []string
	for _, t := range tokens {
		for _, f := range yearTokenForms(t) {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				forms = append(forms, f)
			}
		}
	}
	if len(forms) == 0 {
		return nil, true, nil
	}
	sort.Strings(forms)

	rx, err := regexp.Compile(`(?i)\b(?:` + strings.Join(forms, "|") + `)\b`)
	if err != nil {
		return nil, false, err
	}
	return rx, false, nil
}

// IsCandidate reports whether a user's free-text cohort field matches the
// task's assigned-year tags.
func IsCandidate(assignedYears []string, yearClassDept string) bool {
	rx, matchAll, err := BuildYearPattern(assignedYears)
	if err != nil {
		return false
	}
	if matchAll {
		return true
	}
	return rx.MatchString(yearClassDept)
}
