// Command nixeval is a line-at-a-time read-evaluate-print loop over
// the kernel in internal/evaluator.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/nixlang/nixeval/internal/config"
	"github.com/nixlang/nixeval/internal/evaluator"
	"github.com/nixlang/nixeval/internal/parser"
)

func main() {
	capsPath := ""
	if len(os.Args) > 1 {
		capsPath = os.Args[1]
	}
	caps := config.DefaultCapabilities()
	if capsPath != "" {
		var err error
		caps, err = config.LoadCapabilities(capsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	e := evaluator.New()
	e.Caps = caps
	env := e.BaseEnvironment()

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	session := uuid.New()

	if interactive {
		fmt.Printf("nixeval %s (session %s)\n", config.Version, session)
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for {
		if interactive {
			fmt.Print("nix-eval> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := evalLine(e, env, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] error: %v\n", session, err)
			continue
		}
		fmt.Println(result)
	}
}

func evalLine(e *evaluator.Evaluator, env *evaluator.Environment, line string) (string, error) {
	root, errs := parser.ParseProgram(line)
	if len(errs) > 0 {
		return "", fmt.Errorf("parse error: %s", strings.Join(errs, "; "))
	}
	v, err := e.Eval(root, env)
	if err != nil {
		return "", err
	}
	return e.Render(v)
}
