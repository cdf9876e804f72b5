package main

import (
	"bufio"
	"fmt"
	"glox/internal"
	"io/ioutil"
	"log"
	"os"
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func main() {
	argsWithoutProg := os.Args[1:]

	if len(argsWithoutProg) > 1 {
		fmt.Println("Usage: glox [script]")
		os.Exit(64)
	}

	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := internal.FindConfig(wd)
	if err != nil {
		log.Fatal(err)
	}

	runner := internal.NewRunner(cfg, stdPrinter{}, os.Stderr)

	if len(argsWithoutProg) == 0 {
		runPrompt(runner)
		return
	}

	b, err := ioutil.ReadFile(argsWithoutProg[0])
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(runner.Run(string(b)).ExitCode())
}

func runPrompt(runner *internal.Runner) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		runner.Run(scanner.Text())
	}
}
