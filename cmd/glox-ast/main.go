package main

import (
	"fmt"
	"glox/internal"
	"io/ioutil"
	"log"
	"os"
)

func main() {
	argsWithoutProg := os.Args[1:]

	if len(argsWithoutProg) != 1 {
		fmt.Println("Usage: glox-ast /path/to/source.lox")
		os.Exit(64)
	}

	b, err := ioutil.ReadFile(argsWithoutProg[0])
	if err != nil {
		log.Fatal(err)
	}

	tokens, scanErrs := internal.Tokenize(string(b))
	stmts, parseErrs := internal.Parse(tokens)

	for _, e := range scanErrs {
		fmt.Fprintln(os.Stderr, e)
	}
	for _, e := range parseErrs {
		fmt.Fprintln(os.Stderr, e)
	}
	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		os.Exit(65)
	}

	if err := internal.PrintTree(os.Stdout, stmts); err != nil {
		log.Fatal(err)
	}
}
