package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flavor/frontend-go/pkg/ast"
	"flavor/frontend-go/pkg/token"

	"gopkg.in/yaml.v3"
)

// Fixture cases live in testdata/programs.yaml. Each case supplies a token
// stream as [kind] or [kind, lexeme] pairs (kind names as printed by
// token.Kind.String) plus either an expected AST dump or an expected error
// substring.
type parseFixtureFile struct {
	Cases []parseFixtureCase `yaml:"cases"`
}

type parseFixtureCase struct {
	Name   string     `yaml:"name"`
	Tokens [][]string `yaml:"tokens"`
	Dump   string     `yaml:"dump,omitempty"`
	Error  string     `yaml:"error,omitempty"`
}

func decodeFixtureTokens(t *testing.T, entries [][]string) []token.Token {
	t.Helper()
	toks := make([]token.Token, 0, len(entries))
	for i, entry := range entries {
		if len(entry) == 0 || len(entry) > 2 {
			t.Fatalf("token entry %d: want [kind] or [kind, lexeme], got %v", i, entry)
		}
		kind, ok := token.KindByName(entry[0])
		if !ok {
			t.Fatalf("token entry %d: unknown kind %q", i, entry[0])
		}
		lexeme := entry[0]
		if len(entry) == 2 {
			lexeme = entry[1]
		}
		toks = append(toks, token.Token{Kind: kind, Lexeme: lexeme})
	}
	return toks
}

func TestParseFixtures(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "programs.yaml"))
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	var file parseFixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		t.Fatalf("decode fixtures: %v", err)
	}
	if len(file.Cases) == 0 {
		t.Fatalf("no fixture cases found")
	}

	for _, tc := range file.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			stmts, err := New(decodeFixtureTokens(t, tc.Tokens)).Parse()
			if tc.Error != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got none", tc.Error)
				}
				if !strings.Contains(err.Error(), tc.Error) {
					t.Fatalf("expected error containing %q, got: %v", tc.Error, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			got := strings.TrimRight(ast.Dump(stmts), "\n")
			want := strings.TrimRight(tc.Dump, "\n")
			if got != want {
				t.Fatalf("AST dump mismatch\ngot:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}
