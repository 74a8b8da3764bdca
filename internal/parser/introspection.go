package parser

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/quantmind-br/toolprobe/internal/core"
)

// parseKeyValues reads "key=value", "key: value" and "key value" lines.
// Blank lines, comments and lines without a value separator are skipped.
// The last occurrence of a key wins.
func parseKeyValues(text string) (map[string]string, error) {
	values := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(text))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := splitLine(line)
		if !ok {
			continue
		}
		values[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan introspection output: %w", err)
	}
	return values, nil
}

func splitLine(line string) (key, value string, ok bool) {
	end := 0
	for end < len(line) && isKeyByte(line[end]) {
		end++
	}
	if end == 0 || end == len(line) {
		return "", "", false
	}

	key = line[:end]
	rest := strings.TrimLeft(line[end:], " \t")
	switch {
	case strings.HasPrefix(rest, "="), strings.HasPrefix(rest, ":"):
		rest = rest[1:]
	case len(rest) == len(line)-end:
		// neither a separator nor whitespace after the key
		return "", "", false
	}
	return key, strings.TrimSpace(rest), true
}

func isKeyByte(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// introspection is the typed form of the key/value output
type introspection struct {
	version        core.Version
	abi            string
	static         bool
	implementation core.Implementation
	executable     string
	libDir         string
	basePrefix     string
	ldVersion      string
	pointerWidth   int
}

func parseIntrospection(text string) (*introspection, error) {
	kv, err := parseKeyValues(text)
	if err != nil {
		return nil, err
	}

	info := &introspection{
		abi:            kv["abi"],
		implementation: core.ParseImplementation(kv["implementation"]),
		executable:     kv["executable"],
		libDir:         kv["libdir"],
		basePrefix:     kv["base_prefix"],
		ldVersion:      kv["ld_version"],
	}

	if info.version, err = versionField(kv); err != nil {
		return nil, err
	}

	switch {
	case hasKey(kv, "static"):
		if info.static, err = boolField("static", kv["static"]); err != nil {
			return nil, err
		}
	case hasKey(kv, "shared"):
		shared, err := boolField("shared", kv["shared"])
		if err != nil {
			return nil, err
		}
		info.static = !shared
	default:
		return nil, &core.ParseError{Kind: core.ErrMissingField, Field: "static"}
	}

	for _, key := range []string{"pointer_size", "calcsize_pointer"} {
		raw, ok := kv[key]
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, &core.ParseError{Kind: core.ErrMalformedField, Field: key, Input: raw, Err: err}
		}
		info.pointerWidth = n
		break
	}

	return info, nil
}

// versionField prefers "version" and falls back to the version_major and
// version_minor pair.
func versionField(kv map[string]string) (core.Version, error) {
	if raw, ok := kv["version"]; ok {
		return core.ParseVersion(raw)
	}

	major, hasMajor := kv["version_major"]
	minor, hasMinor := kv["version_minor"]
	if hasMajor && hasMinor {
		return core.ParseVersion(major + "." + minor)
	}
	return core.Version{}, &core.ParseError{Kind: core.ErrMissingField, Field: "version"}
}

func boolField(name, raw string) (bool, error) {
	switch raw {
	case "true", "True", "1":
		return true, nil
	case "false", "False", "0":
		return false, nil
	}
	return false, &core.ParseError{Kind: core.ErrMalformedField, Field: name, Input: raw}
}

func hasKey(kv map[string]string, key string) bool {
	_, ok := kv[key]
	return ok
}
