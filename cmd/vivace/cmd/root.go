// Package cmd holds the vivace command tree.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-vivace/internal/config"
	"github.com/tartampluch/go-vivace/internal/i18n"
)

// app carries state shared by every subcommand once the root pre-run is done.
type app struct {
	configPath string
	debug      bool

	settings   *config.Settings
	translator *i18n.Translator
	logCloser  io.Closer
}

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context, args []string) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	defer a.closeLog()
	return root.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           config.CmdRoot,
		Short:         config.CmdShortRoot,
		Long:          config.CmdLongRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for help commands
			switch cmd.Name() {
			case config.CmdHelp, config.CmdCompletion, config.CmdVersion:
				return nil
			}
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, config.FlagConfig, "", config.FlagDescConfig)
	root.PersistentFlags().BoolVar(&a.debug, config.FlagDebug, false, config.FlagDescDebug)

	root.AddCommand(
		newNowCmd(a),
		newCalendarsCmd(a),
		newServeCmd(a),
		newPasswordCmd(a),
		newVersionCmd(),
	)
	return root
}

// init loads .env, sets up logging and reads the settings snapshot.
func (a *app) init(cmd *cobra.Command) error {
	config.LoadEnv()

	lvl := os.Getenv(config.EnvLogLevel)
	if lvl == "" {
		lvl = config.DefaultLogLevel
	}
	level, err := config.ParseLogLevel(lvl)
	if err != nil {
		return err
	}
	if a.debug {
		level = slog.LevelDebug
	}

	// The long-running server logs to stdout like a service; one-shot
	// commands keep stdout for their own output.
	var console io.Writer
	switch {
	case cmd.Name() == config.CmdServe:
		console = cmd.OutOrStdout()
	case a.debug:
		console = cmd.ErrOrStderr()
	}
	a.logCloser = setupLogging(level, a.debug, console)
	logStartupInfo()

	path := a.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	s, err := config.Load(path)
	if err != nil {
		return err
	}
	a.settings = s

	tr, err := i18n.New(s.Language)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}
	a.translator = tr
	return nil
}

func (a *app) closeLog() {
	if a.logCloser != nil {
		_ = a.logCloser.Close() // Best effort close
		a.logCloser = nil
	}
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger: a JSON handler writing to
// the log file in the user cache dir and, when console is non-nil, to it too.
func setupLogging(level slog.Level, debugMode bool, console io.Writer) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if console != nil {
		writers = append(writers, console)
	}

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
