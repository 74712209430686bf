package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/logic-horizon/logiceval/config"
	"github.com/logic-horizon/logiceval/session"
)

// repl starts interactive mode. One session environment lives for the whole
// loop, so variables and rules persist across inputs. Statements are buffered
// until a line contains ';', then the buffer is processed as one program.
func repl(cfg *config.Config) {
	pterm.Info.Println("Welcome to LogicEval") // colored welcome message
	tracer().Infof("Quit with <ctrl>D or 'exit'")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer rl.Close()

	s := session.New()
	loadInitFile(s, cfg.InitFile)
	buffer := ""
	for {
		if buffer == "" {
			rl.SetPrompt(cfg.Prompt)
		} else {
			rl.SetPrompt(cfg.ContinuationPrompt)
		}
		line, err := rl.Readline()
		if err != nil { // io.EOF, interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if buffer == "" && line == "exit" {
			break
		}
		buffer += line + "\n"
		if strings.Contains(line, ";") {
			process(s, buffer) // errors are printed, the session lives on
			buffer = ""
		}
	}
	println("Good bye!")
}

// loadInitFile executes a statements file in the REPL's session before the
// first prompt.
func loadInitFile(s *session.Session, filename string) {
	if filename == "" {
		return
	}
	text, err := os.ReadFile(filename)
	if err != nil {
		tracer().Errorf("unable to read init file: %s", filename)
		return
	}
	tracer().Infof("loading init file %s", filename)
	process(s, string(text))
}
