package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

// REPL starts interactive mode. Every line is taken as an input string, except for
// lines starting with a colon, which are commands.
func (s *Session) REPL() error {
	repl, err := readline.New("pdarun> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := s.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
	return nil
}

// Eval executes a command or runs an input string, given on a line by itself.
// It returns true if the user wants to quit.
func (s *Session) Eval(line string) bool {
	if !strings.HasPrefix(line, ":") {
		if line == s.format.Epsilon() {
			line = ""
		}
		s.Run(line)
		return false
	}
	switch cmd := strings.Fields(line)[0]; cmd {
	case ":quit", ":q":
		return true
	case ":rules":
		s.listRules()
	case ":all":
		s.all = !s.all
		if s.all {
			pterm.Info.Println("reporting all accepting trails")
		} else {
			pterm.Info.Println("reporting the first accepting trail")
		}
	default:
		pterm.Error.Println("unknown command " + cmd)
	}
	return false
}
