package discovery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quantmind-br/toolprobe/internal/helpers"
	"github.com/quantmind-br/toolprobe/internal/security"
)

// Pattern matches executable file names of one interpreter family.
type Pattern struct {
	Name   string // human readable, e.g. "python<major>.<minor>"
	Family string // name prefix used for version hints; may be empty
	Regexp *regexp.Regexp
}

// PatternSet is an ordered list of patterns. The first match wins.
type PatternSet struct {
	patterns []Pattern
}

// NewPatternSet returns an empty set
func NewPatternSet() *PatternSet {
	return &PatternSet{}
}

// DefaultPatterns builds the standard patterns for each family name:
// the exact name, name+major and name+major.minor, each accepting the
// platform's executable suffixes.
func DefaultPatterns(families ...string) (*PatternSet, error) {
	s := NewPatternSet()
	for _, family := range families {
		if err := s.AddFamily(family); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddFamily appends the standard patterns for one family name.
func (s *PatternSet) AddFamily(family string) error {
	if err := security.ValidateExecutableName(family); err != nil {
		return err
	}

	base := regexp.QuoteMeta(family)
	suffix := suffixGroup(helpers.ExecutableSuffixes())
	variants := []struct {
		name string
		expr string
	}{
		{family, `^` + base + suffix + `$`},
		{family + "<major>", `^` + base + `\d+` + suffix + `$`},
		{family + "<major>.<minor>", `^` + base + `\d+\.\d+` + suffix + `$`},
	}

	for _, v := range variants {
		s.patterns = append(s.patterns, Pattern{
			Name:   v.name,
			Family: family,
			Regexp: regexp.MustCompile(v.expr),
		})
	}
	return nil
}

// Add appends a custom pattern.
func (s *PatternSet) Add(name, family, expr string) error {
	re, err := security.ValidatePattern(expr)
	if err != nil {
		return err
	}
	if name == "" {
		name = expr
	}
	s.patterns = append(s.patterns, Pattern{Name: name, Family: family, Regexp: re})
	return nil
}

// Match returns the first pattern matching a file name.
func (s *PatternSet) Match(fileName string) (Pattern, bool) {
	for _, p := range s.patterns {
		if p.Regexp.MatchString(fileName) {
			return p, true
		}
	}
	return Pattern{}, false
}

// Patterns returns a copy of the patterns in match order.
func (s *PatternSet) Patterns() []Pattern {
	out := make([]Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Len returns the number of patterns
func (s *PatternSet) Len() int { return len(s.patterns) }

func (s *PatternSet) String() string {
	names := make([]string, len(s.patterns))
	for i, p := range s.patterns {
		names[i] = p.Name
	}
	return fmt.Sprintf("[%s]", strings.Join(names, ", "))
}

func suffixGroup(suffixes []string) string {
	if len(suffixes) == 0 {
		return ""
	}
	quoted := make([]string, len(suffixes))
	for i, s := range suffixes {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return `(?i:` + strings.Join(quoted, "|") + `)?`
}
