// Package command holds the named commands a prompt can run.
//
// A Command is identified by the first token of an input line. Its handler
// receives the whole raw line and parses its own arguments, usually with
// Tokenize. Handlers report back through a Result: code 0 is silent
// success, a positive code is success with a message to show, and a
// negative code is an error message.
//
// Every Registry starts with two built-ins: "help", which lists commands
// or shows one command's help text, and "exit", which fires the hook set
// with OnExit.
package command
