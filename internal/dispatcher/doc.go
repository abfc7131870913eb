// Package dispatcher routes a submitted input line to the command it names.
//
// The identifier is the text before the first separator. The dispatcher
// does not tokenize the rest of the line: the raw line, quoting included,
// is handed to the command so each command parses its own arguments.
//
// Dispatch never writes anything itself. An unknown identifier comes back
// as a negative command.Result and the caller decides how to report it.
package dispatcher
