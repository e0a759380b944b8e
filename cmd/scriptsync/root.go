package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/scriptsync"
	"github.com/aretw0/scriptsync/internal/cli"
	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/spf13/cobra"
)

const usage = `Must provide either "local" or "editor" as the first argument to the script`

// errUsage marks argument errors; they are reported with the usage line only.
var errUsage = errors.New(usage)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scriptsync <editor|local>",
		Short:   "Convert editor scripts to runtime JSON and sync their translations",
		Long:    `scriptsync stamps script steps with stable uids, exchanges Hebrew strings with Transifex and writes the JSON artifacts under src/.`,
		Version: scriptsync.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			if _, err := domain.ParseSource(args[0]); err != nil {
				return errUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := domain.ParseSource(args[0])
			return cli.Execute(cmd.Context(), cli.RunOptions{
				Source: source,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(*cobra.Command, error) error { return errUsage })
	return cmd
}

// run executes the root command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stdout, usage)
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

// Execute runs the command line with the process arguments and exits on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if code != 0 {
		os.Exit(code)
	}
}
