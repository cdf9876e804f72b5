package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func kinds(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tk := range tokens {
		out[i] = tk.Kind().String()
	}
	return out
}

func scan(t *testing.T, source string) []Token {
	t.Helper()
	tokens, errs := Tokenize(source)
	if len(errs) > 0 {
		t.Fatalf("unexpected scan errors for %q: %v", source, errs)
	}
	return tokens
}

func TestScanKinds(t *testing.T) {
	tests := []struct {
		source string
		want   []string
	}{
		{"", []string{"EOF"}},
		{"(){},.-+;/*", []string{
			"LEFT_PAREN", "RIGHT_PAREN", "LEFT_BRACE", "RIGHT_BRACE", "COMMA", "DOT",
			"MINUS", "PLUS", "SEMICOLON", "SLASH", "STAR", "EOF",
		}},
		{"! != = == > >= < <=", []string{
			"BANG", "BANG_EQUAL", "EQUAL", "EQUAL_EQUAL",
			"GREATER", "GREATER_EQUAL", "LESS", "LESS_EQUAL", "EOF",
		}},
		{"var x = 1;", []string{"VAR", "IDENTIFIER", "EQUAL", "NUMBER", "SEMICOLON", "EOF"}},
		{"1.", []string{"NUMBER", "DOT", "EOF"}},
		{"a // comment ( ) {\nb", []string{"IDENTIFIER", "IDENTIFIER", "EOF"}},
		{"_under score9", []string{"IDENTIFIER", "IDENTIFIER", "EOF"}},
		{`"a" + "b"`, []string{"STRING", "PLUS", "STRING", "EOF"}},
	}

	for _, test := range tests {
		got := kinds(scan(t, test.source))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", test.source, diff)
		}
	}
}

func TestScanKeywords(t *testing.T) {
	words := []string{
		"and", "class", "else", "false", "fun", "for", "if", "nil", "or",
		"print", "return", "super", "this", "true", "var", "while",
	}
	tokens := scan(t, strings.Join(words, " "))
	if len(tokens) != len(words)+1 {
		t.Fatalf("expected %d tokens, got %d", len(words)+1, len(tokens))
	}
	for i, word := range words {
		if tokens[i].Kind() == tkIdentifier {
			t.Errorf("%s should be a keyword", word)
		}
		if tokens[i].Kind().String() != strings.ToUpper(word) {
			t.Errorf("%s scanned as %s", word, tokens[i].Kind())
		}
	}

	// Prefixes and case variants are plain identifiers
	for _, tk := range scan(t, "classy orchid If Var")[:4] {
		if tk.Kind() != tkIdentifier {
			t.Errorf("%s should be an identifier, got %s", tk.Lexeme(), tk.Kind())
		}
	}
}

func TestScanLiterals(t *testing.T) {
	tokens := scan(t, `123 4.5 "hello world" ""`)
	want := []interface{}{123.0, 4.5, "hello world", "", nil}
	got := make([]interface{}, len(tokens))
	for i, tk := range tokens {
		got[i] = tk.Literal()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("literal mismatch (-want +got):\n%s", diff)
	}

	if lexeme := tokens[2].Lexeme(); lexeme != `"hello world"` {
		t.Errorf("string lexeme should keep its quotes, got %s", lexeme)
	}
}

func TestScanLines(t *testing.T) {
	tokens := scan(t, "a\nb\n\"multi\nline\"\nc // x\nd")
	want := []int{1, 2, 4, 5, 6, 6}
	got := make([]int, len(tokens))
	for i, tk := range tokens {
		got[i] = tk.Line()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
}

func TestScanDeterministic(t *testing.T) {
	source := `fun f(a) { return a * 2.5; } print f("x" == "y");`
	first, _ := Tokenize(source)
	second, _ := Tokenize(source)
	if diff := cmp.Diff(first, second, cmp.AllowUnexported(Token{})); diff != "" {
		t.Errorf("scans differ (-first +second):\n%s", diff)
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		err    error
		line   int
		kinds  []string
	}{
		{
			name:   "unterminated string",
			source: "print \"abc\n",
			err:    errUnclosedString,
			line:   2,
			kinds:  []string{"PRINT", "EOF"},
		},
		{
			name:   "unexpected character",
			source: "1 @ 2",
			err:    errUnexpectedChar,
			line:   1,
			kinds:  []string{"NUMBER", "NUMBER", "EOF"},
		},
		{
			name:   "number out of range",
			source: "\n" + strings.Repeat("9", 400) + ";",
			err:    errMalformedNumber,
			line:   2,
			kinds:  []string{"SEMICOLON", "EOF"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tokens, errs := Tokenize(test.source)
			if len(errs) != 1 {
				t.Fatalf("expected one error, got %v", errs)
			}
			if !errors.Is(errs[0], test.err) {
				t.Errorf("expected %v, got %v", test.err, errs[0])
			}
			if errs[0].Line != test.line {
				t.Errorf("expected line %d, got %d", test.line, errs[0].Line)
			}
			if diff := cmp.Diff(test.kinds, kinds(tokens)); diff != "" {
				t.Errorf("token mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanKeepsGoingAfterErrors(t *testing.T) {
	tokens, errs := Tokenize("# a $ b")
	if len(errs) != 2 {
		t.Fatalf("expected two errors, got %v", errs)
	}
	if diff := cmp.Diff([]string{"IDENTIFIER", "IDENTIFIER", "EOF"}, kinds(tokens)); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestScanMultibyteCharacters(t *testing.T) {
	tokens, errs := Tokenize("a é\n\"ünïcode\" 日本 b")
	if len(errs) != 3 {
		t.Fatalf("expected one error per character, got %v", errs)
	}
	for i, line := range []int{1, 2, 2} {
		if !errors.Is(errs[i], errUnexpectedChar) || errs[i].Line != line {
			t.Errorf("error %d: expected %v on line %d, got %v", i, errUnexpectedChar, line, errs[i])
		}
	}
	if diff := cmp.Diff([]string{"IDENTIFIER", "STRING", "IDENTIFIER", "EOF"}, kinds(tokens)); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
	if lit := tokens[1].Literal(); lit != "ünïcode" {
		t.Errorf("string literal should keep its bytes, got %v", lit)
	}
}
