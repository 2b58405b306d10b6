// Package sanitize cleans and validates untrusted input before it is
// persisted or put on the wire. Invalid input is signaled by returning an
// empty string, never by an error, so callers check for emptiness.
package sanitize

import (
	"crypto/rand"
	"crypto/subtle"
	"net/url"
	"regexp"
	"strings"
)

type Kind string

const (
	KindText   Kind = "text"
	KindEmail  Kind = "email"
	KindURL    Kind = "url"
	KindGithub Kind = "github"
	KindHTML   Kind = "html"
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	githubRe = regexp.MustCompile(`^[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*$`)

	angleBracketsRe = regexp.MustCompile(`[<>]`)
	uriSchemeRe     = regexp.MustCompile(`(?i)(javascript|data|vbscript):`)
	eventAttrRe     = regexp.MustCompile(`(?i)on\w+\s*=`)

	dangerousPairTags = []string{"script", "iframe", "object", "embed", "form", "textarea", "select"}
	dangerousTagRes   = buildTagRes()
	inputTagRe        = regexp.MustCompile(`(?i)<input\b[^>]*>`)
)

func buildTagRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(dangerousPairTags))
	for _, tag := range dangerousPairTags {
		res = append(res, regexp.MustCompile(`(?is)<`+tag+`\b.*?</`+tag+`>`))
	}
	return res
}

// Text strips angle brackets and dangerous URI schemes and trims whitespace.
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = angleBracketsRe.ReplaceAllString(s, "")
	s = uriSchemeRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// HTML removes a fixed denylist of dangerous tags, inline event-handler
// attributes and script-carrying URI schemes. It is a denylist cleaner, not
// a parser; anything needing real HTML sanitation should not pass through
// this package.
func HTML(s string) string {
	if s == "" {
		return ""
	}
	for _, re := range dangerousTagRes {
		s = re.ReplaceAllString(s, "")
	}
	s = inputTagRe.ReplaceAllString(s, "")
	s = uriSchemeRe.ReplaceAllString(s, "")
	s = eventAttrRe.ReplaceAllString(s, "")
	return s
}

// Email returns the trimmed address if it looks like local@domain.tld,
// else the empty string.
func Email(s string) string {
	s = strings.TrimSpace(s)
	if emailRe.MatchString(s) {
		return s
	}
	return ""
}

// URL returns the value only if it parses as an absolute http(s) URL.
func URL(s string) string {
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return s
}

// GithubUsername validates against GitHub's username grammar: alphanumeric
// with single inner hyphens, at most 39 characters.
func GithubUsername(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 39 {
		return ""
	}
	if githubRe.MatchString(s) {
		return s
	}
	return ""
}

// UserInput validates and cleans a value according to kind. Unknown kinds
// fall back to plain-text sanitization.
func UserInput(s string, kind Kind) string {
	s = strings.TrimSpace(s)

	switch kind {
	case KindEmail:
		return Email(s)
	case KindURL:
		return URL(s)
	case KindGithub:
		return GithubUsername(s)
	case KindHTML:
		return HTML(s)
	default:
		return Text(s)
	}
}

// Object sanitizes a decoded JSON object in place of transmission: string
// values are text-sanitized, numbers and booleans pass through, nested
// objects recurse, and slices are sanitized element-wise. When allowedKeys
// is non-empty, keys outside the list are dropped.
func Object(obj map[string]any, allowedKeys []string) map[string]any {
	allowed := make(map[string]bool, len(allowedKeys))
	for _, k := range allowedKeys {
		allowed[k] = true
	}

	out := make(map[string]any, len(obj))
	for key, value := range obj {
		if len(allowed) > 0 && !allowed[key] {
			continue
		}
		if v, ok := sanitizeValue(value, allowedKeys); ok {
			out[key] = v
		}
	}
	return out
}

func sanitizeValue(value any, allowedKeys []string) (any, bool) {
	switch v := value.(type) {
	case string:
		// Inline event-handler attributes survive plain text sanitization
		// once the brackets are gone, so strip them here too.
		return eventAttrRe.ReplaceAllString(Text(v), ""), true
	case map[string]any:
		return Object(v, allowedKeys), true
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			if s, ok := sanitizeValue(item, allowedKeys); ok {
				out = append(out, s)
			}
		}
		return out, true
	case bool, float64, int, int64:
		return v, true
	default:
		return nil, false
	}
}

// FormData validates a flat form against a field→kind schema. Fields missing
// from the data come back as empty strings, the same signal as rejection.
func FormData(data map[string]string, schema map[string]Kind) map[string]string {
	validated := make(map[string]string, len(schema))
	for field, kind := range schema {
		validated[field] = UserInput(data[field], kind)
	}
	return validated
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EscapeHTML escapes special characters for safe embedding in markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

const randomAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns n characters drawn from crypto/rand.
func RandomString(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	for i, b := range buf {
		buf[i] = randomAlphabet[int(b)%len(randomAlphabet)]
	}
	return string(buf)
}

// CSRFToken returns a fresh token for double-submit cookie protection.
func CSRFToken() string {
	return RandomString(32)
}

// ValidateCSRFToken compares a submitted token against the expected one in
// constant time. Empty values never validate.
func ValidateCSRFToken(token, expected string) bool {
	if token == "" || expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}
