// Command humblebee is a one-button side-scroller for the terminal: keep the
// bee airborne between the pipes. The serve subcommand runs a small HTTP
// launcher that starts game processes on request.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	screenMu     sync.Mutex
	activeScreen tcell.Screen
)

// setActiveScreen records the screen the crash handler must restore
func setActiveScreen(s tcell.Screen) {
	screenMu.Lock()
	activeScreen = s
	screenMu.Unlock()
}

// restoreTerminal hands the terminal back if a screen is active
func restoreTerminal() {
	screenMu.Lock()
	defer screenMu.Unlock()
	if activeScreen != nil {
		activeScreen.Fini()
		activeScreen = nil
	}
}

// crashed restores the terminal and prints the panic with its stack
func crashed(where string, r any) {
	restoreTerminal()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crashed("HUMBLEBEE", r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	debug      bool
	play       playOptions
	serve      serveOptions
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "humblebee",
		Short:         "Fly a bee between the pipes",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/humblebee/config.yaml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write logs to logs/humblebee.log")
	addPlayFlags(root, &opts.play)

	play := &cobra.Command{
		Use:   "play",
		Short: "Run the game (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
	addPlayFlags(play, &opts.play)

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the launcher service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	serve.Flags().StringVar(&opts.serve.addr, "addr", "", "listen address (overrides launcher.addr)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "humblebee %s\n", version)
		},
	}

	root.AddCommand(play, serve, versionCmd)
	return root
}
