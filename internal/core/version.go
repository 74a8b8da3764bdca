package core

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// versionRegex accepts MAJOR.MINOR, MAJOR.MINOR.PATCH and MAJOR.MINOR.PATCHsuffix
var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+)([A-Za-z+~-][0-9A-Za-z.+~-]*)?)?$`)

// Version is an interpreter version. A missing patch sorts before any patch.
type Version struct {
	Major    int    `json:"major"`
	Minor    int    `json:"minor"`
	Patch    int    `json:"patch,omitempty"`
	HasPatch bool   `json:"has_patch"`
	Suffix   string `json:"suffix,omitempty"`
}

// ParseVersion parses strings such as "3.9", "3.9.7" and "3.13.0rc1".
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	m := versionRegex.FindStringSubmatch(s)
	if m == nil {
		return Version{}, &ParseError{Kind: ErrMalformedVersion, Input: s}
	}

	var v Version
	var err error
	if v.Major, err = strconv.Atoi(m[1]); err != nil {
		return Version{}, &ParseError{Kind: ErrMalformedVersion, Input: s, Err: err}
	}
	if v.Minor, err = strconv.Atoi(m[2]); err != nil {
		return Version{}, &ParseError{Kind: ErrMalformedVersion, Input: s, Err: err}
	}
	if m[3] != "" {
		if v.Patch, err = strconv.Atoi(m[3]); err != nil {
			return Version{}, &ParseError{Kind: ErrMalformedVersion, Input: s, Err: err}
		}
		v.HasPatch = true
		v.Suffix = m[4]
	}
	return v, nil
}

// String formats the version in the same shape ParseVersion accepts.
func (v Version) String() string {
	if !v.HasPatch {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d.%d%s", v.Major, v.Minor, v.Patch, v.Suffix)
}

// Compare returns -1, 0 or +1. A release without suffix sorts after any
// suffixed build of the same triple; suffixes compare lexically.
func (v Version) Compare(o Version) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	if v.HasPatch != o.HasPatch {
		if v.HasPatch {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(v.Patch, o.Patch); c != 0 {
		return c
	}
	switch {
	case v.Suffix == o.Suffix:
		return 0
	case v.Suffix == "":
		return 1
	case o.Suffix == "":
		return -1
	default:
		return strings.Compare(v.Suffix, o.Suffix)
	}
}

// Less reports whether v sorts before o.
func (v Version) Less(o Version) bool { return v.Compare(o) < 0 }

// Equal reports whether v and o are the same version.
func (v Version) Equal(o Version) bool { return v.Compare(o) == 0 }

// AtLeast reports whether v is major.minor or newer.
func (v Version) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

// Constraint is a conjunction of version clauses such as ">=3.8, <4".
type Constraint struct {
	raw     string
	clauses []clause
}

type clause struct {
	op    string
	parts []int
}

var clauseRegex = regexp.MustCompile(`^(==|!=|>=|<=|=|>|<)?\s*(\d+(?:\.\d+){0,2})$`)

// ParseConstraint parses a comma separated list of clauses. A bare version
// ("3" or "3.11") means equality on the given components.
func ParseConstraint(s string) (Constraint, error) {
	c := Constraint{raw: strings.TrimSpace(s)}
	if c.raw == "" {
		return c, nil
	}
	for _, part := range strings.Split(c.raw, ",") {
		part = strings.TrimSpace(part)
		m := clauseRegex.FindStringSubmatch(part)
		if m == nil {
			return Constraint{}, fmt.Errorf("invalid version constraint %q", part)
		}
		op := m[1]
		if op == "" || op == "=" {
			op = "=="
		}
		var nums []int
		for _, n := range strings.Split(m[2], ".") {
			i, err := strconv.Atoi(n)
			if err != nil {
				return Constraint{}, fmt.Errorf("invalid version constraint %q: %w", part, err)
			}
			nums = append(nums, i)
		}
		c.clauses = append(c.clauses, clause{op: op, parts: nums})
	}
	return c, nil
}

// Check reports whether v satisfies every clause. An empty constraint matches
// everything.
func (c Constraint) Check(v Version) bool {
	for _, cl := range c.clauses {
		if !cl.check(v) {
			return false
		}
	}
	return true
}

func (c Constraint) String() string { return c.raw }

func (cl clause) check(v Version) bool {
	patch := -1
	if v.HasPatch {
		patch = v.Patch
	}
	have := []int{v.Major, v.Minor, patch}

	res := 0
	for i, want := range cl.parts {
		if res = cmp.Compare(have[i], want); res != 0 {
			break
		}
	}

	switch cl.op {
	case "==":
		return res == 0
	case "!=":
		return res != 0
	case ">=":
		return res >= 0
	case "<=":
		return res <= 0
	case ">":
		return res > 0
	case "<":
		return res < 0
	}
	return false
}
