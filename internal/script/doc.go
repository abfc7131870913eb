// Package script defines commands in Lua.
//
// A script runs in a sandboxed gopher-lua state with only the base,
// table, string and math libraries. It sees one global module:
//
//	keyline.register(id, fn [, opts])
//	    Registers a command. fn receives the raw line and returns
//	    code, message, a lone message (shown as success), or nothing
//	    (silent success). opts may hold description, help and a
//	    complete function returning the text to append to the line.
//
//	keyline.tokenize(line)
//	    Splits line with the registry's syntax. Returns a list of
//	    tokens, or nil and an error message.
//
// Example:
//
//	keyline.register("greet", function(line)
//	    local args = keyline.tokenize(line)
//	    return 1, "hello " .. (args[2] or "world")
//	end, { description = "Says hello.", help = "greet [name]" })
//
// Errors raised by a handler become error results; they never reach the
// key loop.
package script
