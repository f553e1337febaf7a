// Package cli is the process entry surface: argument validation, config
// loading and the mapping of pipeline errors to exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/cusipref/internal/buildinfo"
	"github.com/JonMunkholm/cusipref/internal/config"
	"github.com/JonMunkholm/cusipref/internal/core"
	"github.com/JonMunkholm/cusipref/internal/logging"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitUsage   = 1 // wrong argument count or bad configuration
	ExitFatal   = 2 // input could not be opened or decompressed
	ExitRuntime = 3 // output write failure or cancellation mid-run
)

const (
	defaultProgName = "cusipref"
	versionArg      = "--version"
)

// usageError signals that the invocation itself was wrong.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// configError signals an invalid environment configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// Execute runs the command line in argv (argv[0] is the program name) and
// returns the process exit status.
func Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	prog := defaultProgName
	// Non-nil so cobra never falls back to os.Args.
	args := []string{}
	if len(argv) > 0 {
		if base := filepath.Base(argv[0]); base != "." && base != string(filepath.Separator) {
			prog = base
		}
		args = argv[1:]
	}

	cmd := newRootCmd(prog, stdout, stderr)
	cmd.SetArgs(args)

	return exitCode(prog, cmd.ExecuteContext(ctx), stderr)
}

func newRootCmd(prog string, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           prog + " <file_path>",
		Short:         "Extract the CUSIP reference table from a compressed TAQ master file",
		SilenceUsage:  true,
		SilenceErrors: true,

		// Every argument is a path: "-h" or "-x.gz" name files, not flags.
		DisableFlagParsing: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &usageError{err: fmt.Errorf("expected 1 argument, got %d", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == versionArg {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
				return err
			}

			// Missing .env is the normal case; the environment alone is enough.
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return &configError{err: err}
			}

			logging.Setup(stderr, cfg.Logging.Level, cfg.Logging.Format)
			ctx := logging.WithRunID(cmd.Context())
			logging.FromContext(ctx).Debug("configuration loaded", "config", cfg.String())

			opts := core.Options{
				InputPath:            args[0],
				MaxLineBytes:         cfg.Input.MaxLineBytes,
				MaxDecompressedBytes: cfg.Input.MaxDecompressedBytes,
			}

			_, err = core.Run(ctx, opts, stdout, stderr)
			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}

func exitCode(prog string, err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "Usage: %s <file_path>\n", prog)
		return ExitUsage
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)

	var ce *configError
	switch {
	case errors.As(err, &ce):
		return ExitUsage
	case core.IsKind(err, core.KindFileNotFound), core.IsKind(err, core.KindDecompression):
		return ExitFatal
	default:
		return ExitRuntime
	}
}
