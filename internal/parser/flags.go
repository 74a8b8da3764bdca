package parser

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/quantmind-br/toolprobe/internal/core"
)

// TokenKind classifies one flags token
type TokenKind int

const (
	IncludePath TokenKind = iota // -I<path>
	LibPath                      // -L<path>
	LibName                      // -l<name>
	OpaqueFlag                   // anything else, kept verbatim
)

func (k TokenKind) String() string {
	switch k {
	case IncludePath:
		return "include-path"
	case LibPath:
		return "lib-path"
	case LibName:
		return "lib-name"
	default:
		return "opaque"
	}
}

// Token is one recognized element of a flags line. Value is the path or
// library name for the first three kinds and the raw flag for OpaqueFlag.
// Linker is set for opaque flags that only matter when linking.
type Token struct {
	Kind   TokenKind
	Value  string
	Linker bool
}

// String renders the token back into flag form
func (t Token) String() string {
	switch t.Kind {
	case IncludePath:
		return "-I" + t.Value
	case LibPath:
		return "-L" + t.Value
	case LibName:
		return "-l" + t.Value
	default:
		return t.Value
	}
}

var valuePrefixes = map[string]TokenKind{
	"-I": IncludePath,
	"-L": LibPath,
	"-l": LibName,
}

// linkerPrefixes mark opaque flags consumed by the linker
var linkerPrefixes = []string{
	"-Wl,",
	"-Xlinker",
	"-framework",
	"-pthread",
	"-rdynamic",
	"-export-dynamic",
	"-shared",
	"-static",
	"-Bsymbolic",
	"-u",
}

// linkerArgFlags take the following word as their argument
var linkerArgFlags = map[string]bool{
	"-Xlinker":   true,
	"-framework": true,
	"-u":         true,
}

// Tokenize splits a flags line with shell quoting rules and classifies each
// word. "-I <path>" is accepted as well as "-I<path>". A value flag or a
// linker flag without its argument, an empty value, or unbalanced quoting
// is a MalformedFlags error.
func Tokenize(line string) ([]Token, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, &core.ParseError{Kind: core.ErrMalformedFlags, Input: line, Err: err}
	}

	tokens := make([]Token, 0, len(words))
	for i := 0; i < len(words); i++ {
		word := words[i]

		if kind, ok := valuePrefixes[word]; ok {
			if i+1 >= len(words) || strings.HasPrefix(words[i+1], "-") {
				return nil, missingArgument(word)
			}
			if words[i+1] == "" {
				return nil, &core.ParseError{
					Kind:  core.ErrMalformedFlags,
					Input: word,
					Err:   fmt.Errorf("empty argument"),
				}
			}
			i++
			tokens = append(tokens, Token{Kind: kind, Value: words[i]})
			continue
		}

		if len(word) > 2 {
			if kind, ok := valuePrefixes[word[:2]]; ok {
				tokens = append(tokens, Token{Kind: kind, Value: word[2:]})
				continue
			}
		}

		linker := isLinkerFlag(word)
		tokens = append(tokens, Token{Kind: OpaqueFlag, Value: word, Linker: linker})
		if linkerArgFlags[word] {
			if i+1 >= len(words) {
				return nil, missingArgument(word)
			}
			i++
			tokens = append(tokens, Token{Kind: OpaqueFlag, Value: words[i], Linker: true})
		}
	}

	return tokens, nil
}

func missingArgument(flag string) error {
	return &core.ParseError{
		Kind:  core.ErrMalformedFlags,
		Input: flag,
		Err:   fmt.Errorf("missing argument"),
	}
}

func isLinkerFlag(word string) bool {
	for _, prefix := range linkerPrefixes {
		if word == prefix || (strings.HasSuffix(prefix, ",") && strings.HasPrefix(word, prefix)) {
			return true
		}
	}
	return false
}

// flagSet is a tokenized flags line grouped by destination
type flagSet struct {
	includes []string
	libPaths []string
	libs     []string
	compiler []string
	linker   []string
}

// classify groups tokens, keeping their relative order in each list
func classify(tokens []Token) flagSet {
	var fs flagSet
	for _, t := range tokens {
		switch t.Kind {
		case IncludePath:
			fs.includes = append(fs.includes, t.Value)
		case LibPath:
			fs.libPaths = append(fs.libPaths, t.Value)
		case LibName:
			fs.libs = append(fs.libs, t.Value)
		default:
			if t.Linker {
				fs.linker = append(fs.linker, t.Value)
			} else {
				fs.compiler = append(fs.compiler, t.Value)
			}
		}
	}
	return fs
}

// Render joins tokens into a flags line that Tokenize reads back to the
// same tokens.
func Render(tokens []Token) string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = shellquote.Join(t.String())
	}
	return strings.Join(words, " ")
}
