package util

import "regexp"

var (
	reEmail  = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	reBearer = regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9._~+/-]+=*`)
	reSecret = regexp.MustCompile(`(?i)\b(api[_-]?key|secret|token|password|passwd)(\s*[=:]\s*)("?)[^\s",;]{4,}("?)`)
	reIPv4   = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)
)

// Redact masks e-mail addresses, bearer tokens, key=value secrets and IPv4
// addresses in s. It is applied to text that leaves the viewer.
func Redact(s string) string {
	s = reEmail.ReplaceAllString(s, "[email]")
	s = reBearer.ReplaceAllString(s, "Bearer [redacted]")
	s = reSecret.ReplaceAllString(s, "$1$2$3[redacted]$4")
	s = reIPv4.ReplaceAllString(s, "[ip]")
	return s
}

// RedactAll applies Redact to every line, returning a new slice.
func RedactAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Redact(l)
	}
	return out
}
