package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/lincolnpuzey/fourth"
)

// errReported is returned by commands that have already printed their
// failure, such as a script error with its backtrace.
var errReported = errors.New("error already reported")

// config is the merged result of flags, FOURTH_* environment variables
// and the YAML config file, in that order of precedence.
type config struct {
	Zone     string `mapstructure:"zone"`
	Timespec string `mapstructure:"timespec"`
	Sep      string `mapstructure:"sep"`
	LogLevel string `mapstructure:"log-level"`
	History  string `mapstructure:"history"`
}

type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	v          *viper.Viper
	configDirs []string // searched for fourth.yaml when --config is unset
	cfg        config
	log        zerolog.Logger

	zone *time.Location
	sep  rune
	spec fourth.Timespec
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		v:      viper.New(),
		log:    zerolog.Nop(),
	}
	if dir, err := os.UserConfigDir(); err == nil {
		a.configDirs = append(a.configDirs, filepath.Join(dir, "fourth"))
	}
	return a
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fourth",
		Short: "Work with naive local and UTC datetimes",
		Long: `Work with naive local and UTC datetimes.

With no subcommand, fourth executes the Starlark program on stdin, or
starts the REPL when stdin is a terminal.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execScript(cmd, "", nil, false)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default fourth.yaml in the user config directory)")
	flags.String("zone", "Local", "IANA zone of local datetimes")
	flags.String("timespec", "auto", "precision of printed times: auto, hours, minutes, seconds, milliseconds or microseconds")
	flags.String("sep", "T", "separator between date and time in printed datetimes")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("history", "", "REPL history file")
	for _, name := range []string{"zone", "timespec", "sep", "log-level", "history"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		a.nowCmd(),
		a.parseCmd(),
		a.formatCmd(),
		a.diffCmd(),
		a.timestampCmd(),
		a.runCmd(),
		a.replCmd(),
	)
	return root
}

// configure loads the config file, then resolves and validates the
// settings every subcommand shares.
func (a *app) configure(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("FOURTH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	a.v.SetConfigType("yaml")

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		a.v.SetConfigName("fourth")
		for _, dir := range a.configDirs {
			a.v.AddConfigPath(dir)
		}
		var notFound viper.ConfigFileNotFoundError
		if err := a.v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	a.log = newLogger(a.stderr, a.cfg.LogLevel)
	if f := a.v.ConfigFileUsed(); f != "" {
		a.log.Debug().Str("file", f).Msg("config loaded")
	}

	var err error
	if a.zone, err = loadZone(a.cfg.Zone); err != nil {
		return err
	}
	r, size := utf8.DecodeRuneInString(a.cfg.Sep)
	if size == 0 || size != len(a.cfg.Sep) {
		return fmt.Errorf("sep must be a single character, got %q", a.cfg.Sep)
	}
	a.sep = r
	if a.spec, err = fourth.ParseTimespec(a.cfg.Timespec); err != nil {
		return err
	}
	a.log.Debug().
		Str("zone", a.zone.String()).
		Str("timespec", a.spec.String()).
		Msg("configured")
	return nil
}

func loadZone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("zone: %w", err)
	}
	return loc, nil
}

// newLogger writes JSON lines to w, or a console format when w is a
// terminal.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("component", "fourth").
		Logger()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
