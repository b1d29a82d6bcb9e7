package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// allCmd installs the full tool set in one run. The archives are positional
// and ordered: IDE first, mobile IDE second, toolchain last. Declining the
// replace prompt for one tool does not stop the others.
var allCmd = &cobra.Command{
	Use:   "all <idea-archive> <studio-archive> <flutter-archive>",
	Short: "Install IntelliJ IDEA, Android Studio and the Flutter SDK in one run",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ins, err := newInstaller(os.Stdin)
		if err != nil {
			return err
		}
		return ins.InstallAll(args[0], args[1], args[2])
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
