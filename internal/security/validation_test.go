package security

import (
	"strings"
	"testing"
)

func TestValidateExecutableName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain", input: "python", wantErr: false},
		{name: "versioned", input: "python3.11", wantErr: false},
		{name: "with dash", input: "python3-dbg", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "path separator", input: "bin/python", wantErr: true},
		{name: "shell metacharacter", input: "python;rm", wantErr: true},
		{name: "space", input: "py thon", wantErr: true},
		{name: "too long", input: strings.Repeat("p", 256), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExecutableName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExecutableName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePattern(t *testing.T) {
	re, err := ValidatePattern(`^python\d+$`)
	if err != nil {
		t.Fatalf("ValidatePattern() error = %v", err)
	}
	if !re.MatchString("python3") {
		t.Error("expected pattern to match python3")
	}

	if _, err := ValidatePattern(`^python(`); err == nil {
		t.Error("expected error for unbalanced pattern")
	}
	if _, err := ValidatePattern(""); err == nil {
		t.Error("expected error for empty pattern")
	}
}
