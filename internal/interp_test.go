package internal

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

type script struct {
	Name    string `yaml:"name"`
	Source  string `yaml:"source"`
	Output  string `yaml:"output"`
	Errors  string `yaml:"errors"`
	Outcome string `yaml:"outcome"`
}

func loadScripts(t *testing.T, path string) []script {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var scripts []script
	if err := yaml.Unmarshal(data, &scripts); err != nil {
		t.Fatalf("cannot parse %s: %v", path, err)
	}
	return scripts
}

func outcomeName(o Outcome) string {
	switch {
	case o.SyntaxError:
		return "syntax"
	case o.RuntimeError:
		return "runtime"
	}
	return "ok"
}

func TestScripts(t *testing.T) {
	for _, s := range loadScripts(t, "testdata/scripts.yaml") {
		t.Run(s.Name, func(t *testing.T) {
			tp := &testPrinter{}
			errOut := &bytes.Buffer{}
			outcome := RunSourceWithPrinter(s.Source, tp, errOut)

			if got := outcomeName(outcome); got != s.Outcome {
				t.Errorf("expected outcome %s, got %s\n%s", s.Outcome, got, errOut.String())
			}
			if diff := cmp.Diff(s.Output, tp.printed); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(s.Errors, errOut.String()); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		source string
		code   int
	}{
		{"print 1;", 0},
		{"print 1", 65},
		{"print @;", 65},
		{"return 1;", 65},
		{"print nil + 1;", 70},
		{"", 0},
	}
	for _, test := range tests {
		outcome := RunSourceWithPrinter(test.source, &testPrinter{}, &bytes.Buffer{})
		if outcome.ExitCode() != test.code {
			t.Errorf("%q: expected exit code %d, got %d", test.source, test.code, outcome.ExitCode())
		}
	}
}

func TestSyntaxErrorsStopExecution(t *testing.T) {
	tp := &testPrinter{}
	errOut := &bytes.Buffer{}
	outcome := RunSourceWithPrinter("print 1;\nvar = 2;\nprint 3 @;", tp, errOut)
	if !outcome.SyntaxError {
		t.Fatalf("expected syntax error, got %+v", outcome)
	}
	if tp.printed != "" {
		t.Errorf("nothing should run, got %q", tp.printed)
	}
	want := "[line 3] Error: Unexpected character.\n[line 2] Error at '=': Expect variable name.\n"
	if diff := cmp.Diff(want, errOut.String()); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerSession(t *testing.T) {
	tp := &testPrinter{}
	errOut := &bytes.Buffer{}
	cfg := DefaultConfig()
	cfg.Color = false
	r := NewRunner(cfg, tp, errOut)

	steps := []struct {
		source string
		output string
	}{
		{"var count = 0;", ""},
		{"fun bump() { var step = 1; count = count + step; return count; }", ""},
		{"print bump();", "1\n"},
		{"{ var local = bump(); print local; }", "2\n"},
		{"print count;", "2\n"},
		{"print missing;", ""},
		{"print bump();", "3\n"},
	}
	for _, step := range steps {
		r.Run(step.source)
		if diff := cmp.Diff(step.output, tp.printed); diff != "" {
			t.Errorf("%s: output mismatch (-want +got):\n%s", step.source, diff)
		}
		tp.Reset()
	}
	if !strings.Contains(errOut.String(), "Undefined variable 'missing'.") {
		t.Errorf("missing variable was not reported: %q", errOut.String())
	}
}

func TestRunnerDebugLogging(t *testing.T) {
	errOut := &bytes.Buffer{}
	cfg := DefaultConfig()
	cfg.Color = false
	cfg.LogLevel = "debug"
	r := NewRunner(cfg, &testPrinter{}, errOut)

	r.Run("print nil + 1;")
	out := errOut.String()
	for _, want := range []string{"scan finished", "parse finished", "stage=interpret", "kind=unexpectedNil"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output should contain %q:\n%s", want, out)
		}
	}
}
