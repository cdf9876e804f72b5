package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func resolveSource(t *testing.T, source string) ([]Stmt, SideTable, error) {
	t.Helper()
	stmts, errs := parseSource(t, source)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", source, errs)
	}
	locals, err := Resolve(stmts)
	return stmts, locals, err
}

// findPrinted returns the variable read by the first print statement
func findPrinted(stmts []Stmt) *variableExpr {
	for _, s := range stmts {
		switch st := s.(type) {
		case *printStmt:
			if v, ok := st.expression.(*variableExpr); ok {
				return v
			}
		case *blockStmt:
			if v := findPrinted(st.stmts); v != nil {
				return v
			}
		case *fnStmt:
			if v := findPrinted(st.body); v != nil {
				return v
			}
		}
	}
	return nil
}

func nestedBlocks(depth int, shadowAt int) string {
	var b strings.Builder
	b.WriteString("{ var a = 0;\n")
	for level := 1; level <= depth; level++ {
		if level == shadowAt {
			fmt.Fprintf(&b, "{ var a = %d;\n", level)
		} else {
			fmt.Fprintf(&b, "{ var x%d = %d;\n", level, level)
		}
	}
	b.WriteString("print a;\n")
	b.WriteString(strings.Repeat("}\n", depth+1))
	return b.String()
}

func TestResolveDistance(t *testing.T) {
	for depth := 0; depth < 20; depth++ {
		source := nestedBlocks(depth, -1)
		stmts, locals, err := resolveSource(t, source)
		if err != nil {
			t.Fatal(err)
		}
		v := findPrinted(stmts)
		if got, ok := locals[v.id]; !ok || got != depth {
			t.Errorf("depth %d: expected distance %d, got %d (recorded %v)", depth, depth, got, ok)
		}

		tp := &testPrinter{}
		if err := interpretSource(t, source, tp); err != nil {
			t.Fatal(err)
		}
		if !tp.Equals("0") {
			t.Errorf("depth %d: expected 0, got %q", depth, tp.printed)
		}
	}
}

func TestResolveNearestShadow(t *testing.T) {
	const depth = 8
	for shadow := 1; shadow <= depth; shadow++ {
		source := nestedBlocks(depth, shadow)
		stmts, locals, err := resolveSource(t, source)
		if err != nil {
			t.Fatal(err)
		}
		v := findPrinted(stmts)
		if got := locals[v.id]; got != depth-shadow {
			t.Errorf("shadow at %d: expected distance %d, got %d", shadow, depth-shadow, got)
		}

		tp := &testPrinter{}
		if err := interpretSource(t, source, tp); err != nil {
			t.Fatal(err)
		}
		if !tp.Equals(fmt.Sprint(shadow)) {
			t.Errorf("shadow at %d: printed %q", shadow, tp.printed)
		}
	}
}

func TestResolveGlobalsNotRecorded(t *testing.T) {
	_, locals, err := resolveSource(t, "var a = 1; print a; a = 2; fun f() { return a; }")
	if err != nil {
		t.Fatal(err)
	}
	if len(locals) != 0 {
		t.Errorf("globals should not be recorded, got %v", locals)
	}
}

func TestResolveFunctionScopes(t *testing.T) {
	stmts, locals, err := resolveSource(t, "fun f(x) { print x; }")
	if err != nil {
		t.Fatal(err)
	}
	if v := findPrinted(stmts); locals[v.id] != 0 {
		t.Errorf("parameter should be at distance 0, got %d", locals[v.id])
	}

	stmts, locals, err = resolveSource(t, `
	fun outer() {
		var c = 0;
		fun inner() {
			c = c + 1;
			print c;
		}
		return inner;
	}
	`)
	if err != nil {
		t.Fatal(err)
	}
	if v := findPrinted(stmts); locals[v.id] != 1 {
		t.Errorf("captured variable should be at distance 1, got %d", locals[v.id])
	}
	assign := stmts[0].(*fnStmt).body[1].(*fnStmt).body[0].(*exprStmt).expression.(*assignExpr)
	if distance, ok := locals[assign.id]; !ok || distance != 1 {
		t.Errorf("captured assignment should be at distance 1, got %d", distance)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		source string
		err    error
		lexeme string
	}{
		{"{ var a = a; }", errOwnInitializer, "a"},
		{"{ var a = 1; { var a = a + 1; } }", errOwnInitializer, "a"},
		{"{ var a = 1; var a = 2; }", errAlreadyDeclared, "a"},
		{"fun f(a, a) {}", errAlreadyDeclared, "a"},
		{"fun f(a) { var a = 1; }", errAlreadyDeclared, "a"},
		{"{ fun g() {} class g {} }", errAlreadyDeclared, "g"},
		{"return 1;", errTopLevelReturn, "return"},
		{"{ return; }", errTopLevelReturn, "return"},
		{"class A { m() { var a = a; } }", errOwnInitializer, "a"},
	}

	for _, test := range tests {
		_, _, err := resolveSource(t, test.source)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: expected %v, got %v", test.source, test.err, err)
			continue
		}
		var resolveErr *ResolveError
		if !errors.As(err, &resolveErr) || resolveErr.Token.Lexeme() != test.lexeme {
			t.Errorf("%s: expected error at %q, got %v", test.source, test.lexeme, err)
		}
	}
}

func TestResolveAllowsGlobalRedeclaration(t *testing.T) {
	for _, source := range []string{
		"var a = 1; var a = 2;",
		"var a = a;",
		"fun f() { return 1; }",
		"{ var a = 1; } { var a = 2; }",
		"fun f() { fun f() {} }",
	} {
		if _, _, err := resolveSource(t, source); err != nil {
			t.Errorf("%s: unexpected error %v", source, err)
		}
	}
}

func TestResolveRunnerReportsAsSyntaxError(t *testing.T) {
	errOut := &strings.Builder{}
	outcome := RunSourceWithPrinter("print 1; { var a = a; }", &testPrinter{}, errOut)
	if !outcome.SyntaxError || outcome.ExitCode() != 65 {
		t.Errorf("expected syntax error outcome, got %+v", outcome)
	}
	want := "[line 1] Error at 'a': " + errOwnInitializer.Error() + "\n"
	if errOut.String() != want {
		t.Errorf("expected %q, got %q", want, errOut.String())
	}
}
