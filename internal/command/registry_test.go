package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(line string) Result {
	return Ok(line)
}

func TestNewRegistryHasBuiltins(t *testing.T) {
	r := NewRegistry(DefaultSyntax)

	assert.Equal(t, []string{"help", "exit"}, r.IDs())
	help, ok := r.Lookup("help")
	require.True(t, ok)
	assert.Equal(t, "help [command]", help.Help)
}

func TestRegister(t *testing.T) {
	r := NewRegistry(DefaultSyntax)

	require.NoError(t, r.Add("cat", echo))
	require.NoError(t, r.Add("zip", echo, WithDescription("Creates a zip file"), WithHelp("zip <filename>")))

	cat, ok := r.Lookup("cat")
	require.True(t, ok)
	assert.Equal(t, DefaultDescription, cat.Description)
	assert.Equal(t, DefaultHelp, cat.Help)

	zip, ok := r.Lookup("zip")
	require.True(t, ok)
	assert.Equal(t, "Creates a zip file", zip.Description)
	assert.Equal(t, Ok("zip a.zip"), zip.Run("zip a.zip"))

	assert.Equal(t, []string{"help", "exit", "cat", "zip"}, r.IDs())
	assert.Equal(t, 4, r.Len())
}

func TestRemove(t *testing.T) {
	r := NewRegistry(DefaultSyntax)
	require.NoError(t, r.Add("cat", echo))
	require.NoError(t, r.Add("zip", echo))

	assert.True(t, r.Remove("cat"))
	assert.False(t, r.Remove("cat"))
	assert.False(t, r.Has("cat"))
	assert.Equal(t, []string{"help", "exit", "zip"}, r.IDs())

	require.NoError(t, r.Add("cat", echo))
	assert.Equal(t, []string{"help", "exit", "zip", "cat"}, r.IDs())
}

func TestRegisterErrors(t *testing.T) {
	r := NewRegistry(DefaultSyntax)
	require.NoError(t, r.Add("cat", echo))

	tests := []struct {
		name string
		cmd  *Command
		want error
	}{
		{"duplicate", &Command{ID: "cat", Handler: echo}, ErrDuplicateID},
		{"builtin duplicate", &Command{ID: "help", Handler: echo}, ErrDuplicateID},
		{"empty id", &Command{ID: "", Handler: echo}, ErrInvalidID},
		{"separator in id", &Command{ID: "two words", Handler: echo}, ErrInvalidID},
		{"nil handler", &Command{ID: "nothing"}, ErrNilHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, r.Register(tt.cmd), tt.want)
		})
	}
	assert.Equal(t, 3, r.Len())
}

func TestRegisterCopiesCommand(t *testing.T) {
	r := NewRegistry(DefaultSyntax)
	cmd := &Command{ID: "cat", Handler: echo, Description: "before"}
	require.NoError(t, r.Register(cmd))

	cmd.Description = "after"

	got, _ := r.Lookup("cat")
	assert.Equal(t, "before", got.Description)
}

func TestSetDescriptionAndHelp(t *testing.T) {
	r := NewRegistry(DefaultSyntax)
	require.NoError(t, r.Add("cat", echo))

	require.NoError(t, r.SetDescription("cat", "Prints its arguments"))
	require.NoError(t, r.SetHelp("cat", "cat [args...]"))

	cat, _ := r.Lookup("cat")
	assert.Equal(t, "Prints its arguments", cat.Description)
	assert.Equal(t, "cat [args...]", cat.Help)

	assert.ErrorIs(t, r.SetDescription("dog", "x"), ErrNotFound)
	assert.ErrorIs(t, r.SetHelp("dog", "x"), ErrNotFound)
}

func TestPrefixComplete(t *testing.T) {
	r := NewRegistry(DefaultSyntax)
	require.NoError(t, r.Add("cat", echo))
	require.NoError(t, r.Add("catalog", echo))
	require.NoError(t, r.Add("hexdump", echo))

	tests := []struct {
		partial string
		want    string
	}{
		{"c", "at"},
		{"cata", "log"},
		{"he", "lp"},
		{"hex", "dump"},
		{"cat", ""},
		{"x", ""},
		{"cat x", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.PrefixComplete(tt.partial), tt.partial)
	}
}

func TestComplete(t *testing.T) {
	r := NewRegistry(DefaultSyntax)
	require.NoError(t, r.Add("cat", echo, WithCompleter(func(line string) string {
		if strings.HasSuffix(line, " fi") {
			return "le.txt"
		}
		return ""
	})))
	require.NoError(t, r.Add("plain", echo))

	assert.Equal(t, "t", r.Complete("ca"))
	assert.Equal(t, "le.txt", r.Complete("cat fi"))
	assert.Equal(t, "", r.Complete("plain x"))
	assert.Equal(t, "", r.Complete("dog x"))
	assert.Equal(t, "", r.Complete(`cat "fi`))
	assert.Equal(t, "xit", r.Complete("help e"))
	assert.Equal(t, "", r.Complete("help e x"))
}

func TestHelpListsEveryCommandOnce(t *testing.T) {
	r := NewRegistry(DefaultSyntax)
	require.NoError(t, r.Add("cat", echo, WithDescription("Prints its arguments")))
	require.NoError(t, r.Add("zip", echo))

	help, _ := r.Lookup("help")
	res := help.Run("help")

	assert.Equal(t, 1, res.Code)
	lines := strings.Split(res.Message, "\n")
	assert.Equal(t, "Available commands:", lines[0])
	assert.Equal(t, []string{
		"help : Prints the list of available commands, or provides help with the specified one.",
		"exit : Ends the current process.",
		"cat : Prints its arguments",
		"zip : " + DefaultDescription,
	}, lines[2:])
}

func TestHelpForCommand(t *testing.T) {
	r := NewRegistry(DefaultSyntax)
	require.NoError(t, r.Add("zip", echo, WithHelp("zip <filename>")))
	help, _ := r.Lookup("help")

	assert.Equal(t, Ok("zip <filename>"), help.Run("help zip"))

	res := help.Run("help frob")
	assert.True(t, res.IsError())
	assert.Equal(t, `"frob" is not recognized as a command`, res.Message)

	res = help.Run(`help "zip`)
	assert.True(t, res.IsError())
}

func TestExitCallsHook(t *testing.T) {
	r := NewRegistry(DefaultSyntax)
	exit, _ := r.Lookup("exit")

	assert.Equal(t, Success, exit.Run("exit"))

	called := false
	r.OnExit(func() { called = true })
	assert.Equal(t, Success, exit.Run("exit"))
	assert.True(t, called)
}
