package format

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonDigit  = regexp.MustCompile(`\D`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe   = regexp.MustCompile(`^[1-9]\d{0,15}$`)
	ssnRe     = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)
	excelExts = map[string]bool{"xlsx": true, "xls": true, "csv": true}
)

// Digits strips everything but 0-9.
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// Phone renders a US number as (555) 418-1944, or 1-555-418-1944 when it
// carries the country code. Anything else is returned unchanged.
func Phone(s string) string {
	d := Digits(s)
	switch {
	case len(d) == 10:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	case len(d) == 11 && d[0] == '1':
		return d[:1] + "-" + d[1:4] + "-" + d[4:7] + "-" + d[7:]
	}
	return s
}

// CapitalizeFirst upper-cases the first letter and lower-cases the rest.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.English).String(string(r)) + cases.Lower(language.English).String(s[size:])
}

// CapitalizeWords title-cases every word.
func CapitalizeWords(s string) string {
	return cases.Title(language.English).String(s)
}

// Truncate shortens s to n runes followed by "...".
func Truncate(s string, n int) string {
	n = max(n, 0)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "..."
}

func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPhone accepts numbers of at least ten digits, ignoring punctuation.
func IsValidPhone(s string) bool {
	d := Digits(s)
	return len(d) >= 10 && phoneRe.MatchString(d)
}

func IsValidSSN(s string) bool {
	return ssnRe.MatchString(s)
}

// FileExtension returns the lower-cased extension without the dot.
func FileExtension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// IsSpreadsheet reports whether name looks like an importable sheet.
func IsSpreadsheet(name string) bool {
	return excelExts[FileExtension(name)]
}

// QueryString encodes params with keys sorted, skipping empty values, and
// prefixes the result with "?". No parameters yields "".
func QueryString(params url.Values) string {
	clean := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			if v != "" {
				clean.Add(k, v)
			}
		}
	}
	if len(clean) == 0 {
		return ""
	}
	return "?" + clean.Encode()
}
