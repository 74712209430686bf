/*
Package logiceval is a compiler and interpreter for a small boolean-logic
language.

The language knows boolean variables, named rules and four connectives
(and '&', or '|', xor '^', implication '->', plus prefix negation '!').
Source text is compiled front to back through a fixed pipeline:

■ scanner: Package scanner turns source text into a stream of positioned
tokens, backed by a lexmachine DFA.

■ parser: Package parser is a recursive-descent parser producing an AST
(see package ast) with the usual precedence climbing.

■ sem: Package sem validates rule-name uniqueness and inference references.

■ ir: Package ir lowers statements to three-address code (3AC) and collects
free variables.

■ opt: Package opt is a single-pass peephole optimizer applying boolean
identities to 3AC.

■ interp: Package interp executes 3AC blocks against a session environment
(package runtime), supporting direct evaluation, truth-table enumeration
and rule inference.

■ session: Package session wires the stages together for drivers (CLI, REPL).

The base package contains data types which are used throughout all the other
packages: the token model and the error taxonomy.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package logiceval
