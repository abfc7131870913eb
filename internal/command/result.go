package command

import "fmt"

// Result is the outcome of running a command.
type Result struct {
	// Code is 0 for silent success, positive for success with a message
	// and negative for an error.
	Code int
	// Message is shown to the user when Code is not 0.
	Message string
}

// Success is the silent success result.
var Success = Result{}

// Ok returns a success result that displays msg.
func Ok(msg string) Result {
	return Result{Code: 1, Message: msg}
}

// Errorf returns an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{Code: -1, Message: fmt.Sprintf(format, args...)}
}

// FromError converts err into an error result. A nil error is Success.
func FromError(err error) Result {
	if err == nil {
		return Success
	}
	return Result{Code: -1, Message: err.Error()}
}

// UnknownCommand is the result for an identifier nothing is registered under.
func UnknownCommand(id string) Result {
	return Errorf("\"%s\" is not recognized as a command. Try \"help\"", id)
}

// IsError reports whether the result is an error.
func (r Result) IsError() bool {
	return r.Code < 0
}

// IsSilent reports whether the result has nothing to show.
func (r Result) IsSilent() bool {
	return r.Code == 0
}

func (r Result) String() string {
	return fmt.Sprintf("%d: %s", r.Code, r.Message)
}
