package main

import (
	"flag"
	"fmt"
	"go/format"
	"io/ioutil"
	"log"
	"os"
	"strings"
)

var nodes = map[string][]string{
	"Stmt": {
		"Expr: expression Expr",
		"Print: keyword *Token, expression Expr",
		"Var: name *Token, initializer Expr",
		"Block: stmts []Stmt",
		"If: keyword *Token, condition Expr, thenBranch Stmt, elseBranch Stmt",
		"While: keyword *Token, condition Expr, body Stmt",
		"Fn: name *Token, params []*Token, body []Stmt",
		"Return: keyword *Token, value Expr",
		"Class: name *Token, methods []*fnStmt",
	},
	"Expr": {
		"Assign: id int, name *Token, value Expr",
		"Binary: left Expr, operator *Token, right Expr",
		"Call: callee Expr, paren *Token, arguments []Expr",
		"Grouping: expression Expr",
		"Literal: value interface{}",
		"Logical: left Expr, operator *Token, right Expr",
		"Unary: operator *Token, right Expr",
		"Variable: id int, name *Token",
		"Empty:",
	},
}

var docs = map[string]string{
	"Stmt": "Stmt is a statement node. The set of implementations is closed.",
	"Expr": "Expr is an expression node. The set of implementations is closed.",
}

//go:generate go run . -type Expr -out ../../internal/expr.go
//go:generate go run . -type Stmt -out ../../internal/stmt.go

func main() {
	baseName := flag.String("type", "", "node family to generate: Expr or Stmt")
	out := flag.String("out", "", "output file, stdout when empty")
	flag.Parse()

	types, ok := nodes[*baseName]
	if !ok {
		fmt.Fprintln(os.Stderr, "Usage: ast -type Expr|Stmt [-out file]")
		os.Exit(64)
	}

	src, err := format.Source([]byte(generateAst(*baseName, types)))
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		fmt.Print(string(src))
		return
	}
	if err := ioutil.WriteFile(*out, src, 0644); err != nil {
		log.Fatal(err)
	}
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "// " + docs[baseName] + "\n"
	out += "type " + baseName + " interface {\n"
	out += "\t" + strings.ToLower(baseName) + "Node()\n"
	out += "}\n\n"
	// End base interface

	// Start structs
	for _, t := range types {
		typeDef := strings.SplitN(t, ":", 2)
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	if fields != "" {
		for _, field := range strings.Split(fields, ",") {
			out += "\t" + strings.TrimSpace(field) + "\n"
		}
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Marker Method
	out += "func (*" + structName + ") " + strings.ToLower(baseName) + "Node() {}\n\n"
	// End Marker Method

	return out
}
