package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/leighmcculloch/spwd/cli"
	"github.com/leighmcculloch/spwd/shorten"
	"github.com/leighmcculloch/spwd/tilde"
	"github.com/leighmcculloch/spwd/workdir"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

var errEmptyPath = errors.New("path must not be empty")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the main entry point that can be called by tests
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		cli.LogErrorTo(stderr, "%v", err)
		return 1
	}
	return 0
}

type options struct {
	path    string
	home    string
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "spwd",
		Short: "Print the working directory shortened for a shell prompt",
		Long: `Print the current working directory in a short form suitable for a
shell prompt.

The home directory is shown as ~ and every directory except the last is
cut to its first character. Hidden directories keep the leading dot and
one more character.

  /Users/test/.config/nvim/lua  ->  ~/.c/n/lua
  /usr/local/share              ->  /u/l/share
`,
		Example: `  # Shorten the working directory
  spwd

  # Use it in a zsh prompt
  PROMPT='$(spwd) %# '

  # Shorten some other path
  spwd --path /Users/test/src/project`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("path") && opts.path == "" {
				return errEmptyPath
			}
			if cmd.Flags().Changed("home") && opts.home == "" {
				return tilde.ErrNoHomeDirectory
			}
			return runSpwd(opts, stdout, cli.NewLogger(stderr, opts.verbose))
		},
	}

	rootCmd.Flags().StringVar(&opts.path, "path", "", "path to shorten instead of the working directory")
	rootCmd.Flags().StringVar(&opts.home, "home", "", "home directory to use instead of the user's home")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log the resolved path and home to stderr")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("spwd version {{.Version}}\n")

	return rootCmd
}

func runSpwd(opts options, stdout io.Writer, log *cli.Logger) error {
	// Resolve the path
	var path string
	var err error
	if opts.path != "" {
		path, err = workdir.Text(opts.path)
	} else {
		path, err = workdir.Get()
	}
	if err != nil {
		return err
	}

	// Resolve the home directory
	home := opts.home
	if home != "" {
		home, err = workdir.Text(home)
	} else {
		home, err = tilde.Home()
	}
	if err != nil {
		return err
	}

	log.Debugf("Shortening %s", path)
	log.Detailf("home: %s", home)

	short, err := shorten.Path(path, home)
	if err != nil {
		return fmt.Errorf("failed to shorten path: %w", err)
	}

	fmt.Fprintln(stdout, short)
	return nil
}
