package naming

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/renamer/pkg/errors"
)

// RewriteRule is a compiled pattern and the template that replaces its matches
type RewriteRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// ParseRule parses a REGEX=REPLACEMENT argument. The input is split on the
// first '=' so the replacement may itself contain '='.
func ParseRule(s string) (RewriteRule, error) {
	pos := strings.IndexByte(s, '=')
	if pos < 0 {
		return RewriteRule{}, errors.Newf(errors.ErrInvalidPattern,
			"invalid REGEX=REPLACEMENT: no `=` found in `%s`", s).
			WithDetail("input", s)
	}

	re, err := regexp.Compile(s[:pos])
	if err != nil {
		return RewriteRule{}, errors.Wrapf(err, errors.ErrInvalidPattern,
			"invalid regular expression `%s`", s[:pos]).
			WithDetail("input", s)
	}

	return RewriteRule{Pattern: re, Replacement: s[pos+1:]}, nil
}

// ParseRules parses every argument in order
func ParseRules(args []string) ([]RewriteRule, error) {
	rules := make([]RewriteRule, 0, len(args))
	for _, arg := range args {
		rule, err := ParseRule(arg)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// MustRule compiles pattern and panics on error
func MustRule(pattern, replacement string) RewriteRule {
	return RewriteRule{Pattern: regexp.MustCompile(pattern), Replacement: replacement}
}

// String returns the rule in its REGEX=REPLACEMENT form
func (r RewriteRule) String() string {
	return r.Pattern.String() + "=" + r.Replacement
}

// Apply replaces the leftmost match, or every non-overlapping match when
// matchAll is set.
func (r RewriteRule) Apply(name string, matchAll bool) string {
	if matchAll {
		return r.Pattern.ReplaceAllString(name, r.Replacement)
	}

	loc := r.Pattern.FindStringSubmatchIndex(name)
	if loc == nil {
		return name
	}

	var out []byte
	out = append(out, name[:loc[0]]...)
	out = r.Pattern.ExpandString(out, r.Replacement, name, loc)
	out = append(out, name[loc[1]:]...)
	return string(out)
}

// ApplyRules runs the rules in order, each one seeing the previous output
func ApplyRules(name string, rules []RewriteRule, matchAll bool) (string, error) {
	if !utf8.ValidString(name) {
		return "", errors.Newf(errors.ErrInvalidEncoding,
			"%q is not valid UTF-8", name).
			WithDetail("name", name)
	}

	for _, rule := range rules {
		name = rule.Apply(name, matchAll)
	}
	return name, nil
}
