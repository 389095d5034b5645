package common

import "regexp"

// CompilePattern compiles a rule pattern into a regex. Callers that get an
// error are expected to fall back to substring matching rather than reject
// the pattern.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(pattern)
}
