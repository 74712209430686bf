/*
Command logiceval runs the boolean-logic language.

Without arguments it starts an interactive REPL; the REPL keeps one
environment alive across inputs, so variables and rules persist between
lines. With a script-file argument it runs the file through the pipeline and
prints the emitted results. Flags:

	-config file   YAML configuration (prompt, history, trace level, …)
	-trace level   trace level [Debug|Info|Error], overrides the config
	-init file     statements file the REPL executes at startup
	-stages        show every compiler stage for a script file
	-watch         watch a script file and re-run it on change

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'logiceval.cli'.
func tracer() tracing.Trace {
	return tracing.Select("logiceval.cli")
}
