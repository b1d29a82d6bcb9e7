package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ravi0900/linux-setup/internal/config"
)

// makeSystemWideCmd copies the running executable into the system bin
// directory so linux-setup can be invoked from anywhere without a path.
var makeSystemWideCmd = &cobra.Command{
	Use:   "make-system-wide",
	Short: "Copy this program into " + config.SystemBinDir + " so it is on the system PATH",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate running executable: %w", err)
		}
		src, err := os.Open(exe)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", exe, err)
		}
		defer src.Close()

		ins, err := newInstaller(os.Stdin)
		if err != nil {
			return err
		}
		return ins.SelfInstall(src, filepath.Base(exe))
	},
}

func init() {
	rootCmd.AddCommand(makeSystemWideCmd)
}
