package internal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PrintTree writes one S-expression per statement
func PrintTree(w io.Writer, stmts []Stmt) error {
	var out strings.Builder
	for _, s := range stmts {
		out.WriteString(stmtString(s))
		out.WriteString("\n")
	}
	_, err := io.WriteString(w, out.String())
	return err
}

func stmtString(stmt Stmt) string {
	switch s := stmt.(type) {
	case *exprStmt:
		return exprString(s.expression)
	case *printStmt:
		return fmt.Sprintf("(print %s)", exprString(s.expression))
	case *varStmt:
		return fmt.Sprintf("(var %s %s)", s.name.lexeme, exprString(s.initializer))
	case *blockStmt:
		out := "(scope"
		for _, st := range s.stmts {
			out += " " + stmtString(st)
		}
		return out + ")"
	case *ifStmt:
		out := fmt.Sprintf("(if %s %s", exprString(s.condition), stmtString(s.thenBranch))
		if s.elseBranch != nil {
			out += " " + stmtString(s.elseBranch)
		}
		return out + ")"
	case *whileStmt:
		return fmt.Sprintf("(while %s %s)", exprString(s.condition), stmtString(s.body))
	case *fnStmt:
		return fnString(s)
	case *returnStmt:
		if _, empty := s.value.(*emptyExpr); empty {
			return "(return)"
		}
		return fmt.Sprintf("(return %s)", exprString(s.value))
	case *classStmt:
		out := "(class " + s.name.lexeme
		for _, m := range s.methods {
			out += " " + fnString(m)
		}
		return out + ")"
	}
	return ""
}

func fnString(fn *fnStmt) string {
	out := "(fun " + fn.name.lexeme + " ("
	for i, param := range fn.params {
		out += param.lexeme
		if i < len(fn.params)-1 {
			out += ", "
		}
	}
	out += ")"
	for _, st := range fn.body {
		out += " " + stmtString(st)
	}
	return out + ")"
}

func exprString(expr Expr) string {
	switch x := expr.(type) {
	case *assignExpr:
		return fmt.Sprintf("(= %s %s)", x.name.lexeme, exprString(x.value))
	case *binaryExpr:
		return fmt.Sprintf("(%s %s %s)", x.operator.lexeme, exprString(x.left), exprString(x.right))
	case *logicalExpr:
		return fmt.Sprintf("(%s %s %s)", x.operator.lexeme, exprString(x.left), exprString(x.right))
	case *unaryExpr:
		return fmt.Sprintf("(%s %s)", x.operator.lexeme, exprString(x.right))
	case *groupingExpr:
		return fmt.Sprintf("(group %s)", exprString(x.expression))
	case *callExpr:
		out := "(call " + exprString(x.callee)
		for _, arg := range x.arguments {
			out += " " + exprString(arg)
		}
		return out + ")"
	case *literalExpr:
		if str, isString := x.value.(string); isString {
			return strconv.Quote(str)
		}
		return stringify(x.value)
	case *variableExpr:
		return x.name.lexeme
	case *emptyExpr:
		return "<empty>"
	}
	return ""
}
