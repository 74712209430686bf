package main

import (
	"flag"
	"os"

	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/logic-horizon/logiceval/config"
	"github.com/logic-horizon/logiceval/interp"
	"github.com/logic-horizon/logiceval/session"
)

// traceKeys are the pipeline's trace selectors, in pipeline order.
var traceKeys = []string{
	"logiceval.scanner",
	"logiceval.parser",
	"logiceval.sem",
	"logiceval.ir",
	"logiceval.opt",
	"logiceval.runtime",
	"logiceval.interp",
	"logiceval.session",
	"logiceval.cli",
}

func main() {
	// set up logging and display
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	cfgPath := flag.String("config", "", "YAML configuration file")
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Statements file the REPL executes at startup")
	stages := flag.Bool("stages", false, "Show every compiler stage for a script file")
	watch := flag.Bool("watch", false, "Watch a script file and re-run it on change")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
	}
	if *tlevel != "" {
		cfg.TraceLevel = *tlevel
	}
	if *initf != "" {
		cfg.InitFile = *initf
	}
	setTraceLevels(cfg.TraceLevel)

	if flag.NArg() == 0 {
		if *stages || *watch {
			pterm.Error.Println("-stages and -watch need a script file argument")
			os.Exit(2)
		}
		repl(cfg)
		return
	}
	filename := flag.Arg(0)
	switch {
	case *stages:
		runStages(filename)
	case *watch:
		watchFile(filename, cfg)
	default:
		if !runFile(filename) {
			os.Exit(1)
		}
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  =",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevels(level string) {
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}

// runFile processes a whole script in a fresh session. Returns false if the
// run ended in an error.
func runFile(filename string) bool {
	text, err := os.ReadFile(filename)
	if err != nil {
		pterm.Error.Printf("cannot read %s: %v\n", filename, err)
		return false
	}
	return process(session.New(), string(text))
}

// process runs source text against a session and prints whatever the
// statements emitted. Results produced before an error are still printed.
func process(s *session.Session, text string) bool {
	results, err := s.Process(text)
	for _, res := range results {
		printResult(res)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	return true
}

func printResult(res *interp.Result) {
	switch res.Kind {
	case interp.NoOutput:
	case interp.ValueResult:
		pterm.Info.Println(res.Lines()[0])
	default:
		for _, line := range res.Lines() {
			pterm.Println(line)
		}
	}
}
