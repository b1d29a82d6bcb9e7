package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ravi0900/linux-setup/internal/config"
	"github.com/ravi0900/linux-setup/internal/installer"
	"github.com/ravi0900/linux-setup/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// settingsPath optionally points at a YAML settings file relocating the
// shell profile/rc files and the applications directory. Empty means the
// built-in defaults for the current user.
var settingsPath string

// rootCmd is the base command for the CLI tool `linux-setup`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "linux-setup",
	Short: "Install IntelliJ IDEA, Android Studio and the Flutter SDK from archives",
	Args:  cobra.NoArgs,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	// A bare invocation is a usage error: cobra prints the usage text and
	// the returned error makes Execute exit non-zero.
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("a command is required")
	},
}

// Execute starts command execution. It's the entry point for the CLI when
// invoked by the user; any error (usage or runtime) exits non-zero.
// Usage text goes to standard output, error messages to standard error.
func Execute() {
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newInstaller builds an Installer against the real filesystem, reading
// prompt answers from in and honoring the optional settings file.
func newInstaller(in io.Reader) (*installer.Installer, error) {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	return installer.New(afero.NewOsFs(), in, settings), nil
}

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "s", "", "Path to optional settings file")
}
