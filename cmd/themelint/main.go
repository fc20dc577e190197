// Command themelint validates vista theme resources without applying them
// to a control.
package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/vista/pkg/errors"
	"github.com/go-drift/vista/pkg/logger"
	"github.com/go-drift/vista/pkg/themes"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "themelint <resource>...",
	Short: "Validate vista theme resources",
	Long: `themelint parses each theme resource file and reports format-version,
target and setter problems, without applying anything to a control.`,
	Example:       "\n  themelint themes/dark.yaml\n  themelint --debug themes/*.yaml\n",
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var level int8
		if debug {
			level = -1
		}
		log := logger.Get(level)

		invalid := 0
		for _, path := range args {
			set, err := themes.Load(path)
			if err != nil {
				invalid++
				report(cmd, path, err)
				continue
			}
			log.V(1).Info("resource parsed", "path", path, "themes", set.Len())
			if set.Len() == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (no themes)\n", path)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d: %s)\n",
				path, set.Len(), strings.Join(set.Targets(), ", "))
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d resources invalid", invalid, len(args))
		}
		return nil
	},
}

func report(cmd *cobra.Command, path string, err error) {
	var terr *errors.ThemeError
	if !stderrors.As(err, &terr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", terr.Path, terr.Reason)
	if terr.Err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "  caused by: %v\n", terr.Err)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func main() {
	exitCode := 0
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	}

	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
