package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/manifoldco/promptui"
)

// ErrCancelled is returned when the user aborts a prompt
var ErrCancelled = errors.New("selection cancelled by user")

// SelectOption is one entry of a detailed selection list
type SelectOption struct {
	Label  string
	Detail string
	Value  string
}

// Selector runs a selection prompt and returns the chosen index
type Selector func(label string, options []SelectOption) (int, error)

// SelectPromptDetailed presents options with details. Typing filters the
// list with fuzzy matching on label and detail.
func SelectPromptDetailed(label string, options []SelectOption) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("nothing to select")
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▸ {{ .Label | cyan }} ({{ .Detail | faint }})",
		Inactive: "  {{ .Label | faint }} ({{ .Detail | faint }})",
		Selected: "▸ {{ .Label | green }}",
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     options,
		Templates: templates,
		Size:      min(10, len(options)),
		Searcher:  optionSearcher(options),
	}

	index, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return -1, ErrCancelled
		}
		return -1, err
	}

	return index, nil
}

func optionSearcher(options []SelectOption) func(input string, index int) bool {
	return func(input string, index int) bool {
		if index < 0 || index >= len(options) {
			return false
		}
		opt := options[index]
		return FuzzyMatch(input, opt.Label) || FuzzyMatch(input, opt.Detail)
	}
}

// FuzzyMatch reports whether query fuzzily matches s, ignoring case and
// diacritics. An empty query matches everything.
func FuzzyMatch(query, s string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return fuzzy.MatchNormalizedFold(query, s)
}
