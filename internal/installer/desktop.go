package installer

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ravi0900/linux-setup/internal/config"
	"github.com/ravi0900/linux-setup/internal/logger"
)

// desktopEntryFormat is the descriptor written for GUI tools so application
// menus can list and launch them.
const desktopEntryFormat = `[Desktop Entry]
Version=1.0
Type=Application
Name=%s
Exec=%s
Icon=%s
Terminal=false
Categories=Development;IDE;
`

// writeDesktopEntry writes <Name>.desktop into the applications directory,
// unconditionally overwriting any existing file of the same name.
func (ins *Installer) writeDesktopEntry(entry config.DesktopEntry) error {
	if err := ins.fs.MkdirAll(ins.settings.ApplicationsDir, 0755); err != nil {
		return fmt.Errorf("failed to create applications directory: %w", err)
	}

	path := filepath.Join(ins.settings.ApplicationsDir, entry.Name+".desktop")
	content := fmt.Sprintf(desktopEntryFormat, entry.Name, entry.Exec, entry.Icon)
	if err := afero.WriteFile(ins.fs, path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write desktop entry %s: %w", path, err)
	}

	logger.Info("[INFO] Wrote desktop entry %s\n", path)
	return nil
}
