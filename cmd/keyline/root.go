package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/keyline/internal/app"
	"github.com/dshills/keyline/internal/command"
	"github.com/dshills/keyline/internal/config"
	"github.com/dshills/keyline/internal/logging"
	"github.com/dshills/keyline/internal/script"
	"github.com/dshills/keyline/internal/terminal"
)

// errNotTerminal is returned when stdin is redirected.
var errNotTerminal = errors.New("stdin is not a terminal")

// flags holds the command line settings that override the config file.
type flags struct {
	configPath string
	logFile    string
	logLevel   string
	prompt     string
	script     string
}

func newRootCmd(code *int) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "keyline",
		Short: "An interactive command shell",
		Long: `keyline reads commands at a prompt with line editing, history and
completion. Type "help" for the list of commands and "exit" to leave.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errNotTerminal
			}
			screen, err := terminal.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			defer screen.Close()

			*code, err = runSession(cfg, screen)
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	fl.StringVar(&f.logFile, "log-file", "", "write the log to this file")
	fl.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fl.StringVar(&f.prompt, "prompt", "", "prompt text")
	fl.StringVar(&f.script, "script", "", "Lua script defining extra commands")
	return cmd
}

// loadConfig reads the config file and environment, then applies the
// flags the user set.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	fl := cmd.Flags()
	if fl.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("prompt") {
		cfg.Prompt = f.prompt
	}
	if fl.Changed("script") {
		cfg.Script = f.script
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runSession runs the shell on term until "exit" or a terminal failure.
func runSession(cfg *config.Config, term terminal.Terminal) (int, error) {
	level, err := cfg.Level()
	if err != nil {
		return app.ExitTerminal, err
	}
	logger, err := logging.Open(cfg.LogFile, level, "keyline")
	if err != nil {
		return app.ExitTerminal, fmt.Errorf("open log: %w", err)
	}
	defer logger.Close()
	logger = logger.With("session", uuid.NewString())

	application, err := app.New(app.Options{
		Terminal: term,
		Prompt:   cfg.Prompt + " ",
		Margin:   cfg.Margin,
		Syntax:   cfg.Syntax(),
		Keys:     cfg.Keys,
		Logger:   logger,
	})
	if err != nil {
		return app.ExitTerminal, err
	}

	reg := application.Registry()
	if err := registerCat(reg); err != nil {
		return app.ExitTerminal, err
	}
	if cfg.Script != "" {
		s, err := script.Load(cfg.Script, reg, script.WithLogger(logger))
		if err != nil {
			return app.ExitTerminal, err
		}
		defer s.Close()
	}

	return application.Run(), nil
}

// registerCat adds the sample "cat" command, which prints its arguments
// one per line.
func registerCat(reg *command.Registry) error {
	syntax := reg.Syntax()
	return reg.Add("cat", func(line string) command.Result {
		args, err := syntax.Tokenize(line)
		if err != nil {
			return command.FromError(err)
		}
		if len(args) < 2 {
			return command.Success
		}
		return command.Ok(strings.Join(args[1:], "\n"))
	},
		command.WithDescription("Prints its arguments, one per line."),
		command.WithHelp(`cat [text...]  e.g. cat one "two words"`),
	)
}

// execute runs the root command and returns the process exit code.
func execute(args []string) int {
	code := app.ExitOK
	cmd := newRootCmd(&code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return code
}
