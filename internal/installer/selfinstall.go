package installer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ravi0900/linux-setup/internal/config"
	"github.com/ravi0900/linux-setup/internal/logger"
)

// SelfInstall copies the program (read from src) into the system bin
// directory under the given basename and marks it executable, making the
// setup tool invocable from anywhere. Repeated invocation always overwrites;
// there is no versioning.
func (ins *Installer) SelfInstall(src io.Reader, name string) error {
	if err := ins.fs.MkdirAll(config.SystemBinDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", config.SystemBinDir, err)
	}

	dest := filepath.Join(config.SystemBinDir, name)
	out, err := ins.fs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy executable to %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	if err := ins.fs.Chmod(dest, 0755); err != nil {
		return fmt.Errorf("failed to mark %s executable: %w", dest, err)
	}

	logger.Info("[INFO] Installed %s system-wide.\n", dest)
	return nil
}
