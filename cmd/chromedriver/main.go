package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aexvir/chromedriver"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "chromedriver",
		Short:         "Provision the ChromeDriver binary for browser automation",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(newInstallCommand(), newProbeCommand())

	return root
}

func newInstallCommand() *cobra.Command {
	var (
		outdir  string
		version string
		quiet   bool
		probe   bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Download and extract the driver unless it is already present",
		RunE: func(cmd *cobra.Command, args []string) error {
			var options []chromedriver.Option
			if version != chromedriver.LatestVersion {
				options = append(options, chromedriver.WithVersion(version))
			}
			if quiet {
				options = append(options, chromedriver.WithoutNoise())
			}

			drv, err := chromedriver.New(outdir, options...).Ensure(cmd.Context())
			if err != nil {
				return err
			}

			if probe {
				if err := chromedriver.CheckVersion(cmd.Context(), drv.Path); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), drv.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outdir, "out", "./bin", "directory the driver is installed under")
	cmd.Flags().StringVar(&version, "driver-version", chromedriver.LatestVersion, "driver version to install")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress informational output")
	cmd.Flags().BoolVar(&probe, "probe", false, "run the installed driver once to confirm it works")

	return cmd
}

func newProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <path>",
		Short: "Invoke an installed driver with --version to confirm it runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return chromedriver.CheckVersion(cmd.Context(), args[0])
		},
	}
}
