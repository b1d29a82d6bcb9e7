package installer

import (
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/ravi0900/linux-setup/internal/config"
	"github.com/ravi0900/linux-setup/internal/logger"
)

// registerPath appends the tool's PATH export line to the shell profile and
// the shell rc file, once each.
func (ins *Installer) registerPath(tool config.Tool) error {
	line := tool.ExportLine()
	for _, file := range []string{ins.settings.ProfileFile, ins.settings.RCFile} {
		if err := ins.appendLineOnce(file, line); err != nil {
			return err
		}
	}
	return nil
}

// appendLineOnce appends line to the file unless the current content already
// contains it. Presence is a substring check against the whole file, not an
// exact-line match: a commented-out or whitespace-padded copy of the line
// counts as present. A missing file is created.
func (ins *Installer) appendLineOnce(path, line string) error {
	data, err := afero.ReadFile(ins.fs, path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if strings.Contains(string(data), line) {
		logger.Debug("[DEBUG] %s already contains %q\n", path, line)
		return nil
	}

	f, err := ins.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	// Keep the appended line on its own line even when the file does not
	// end with a newline.
	out := line + "\n"
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		out = "\n" + out
	}
	if _, err := f.WriteString(out); err != nil {
		return err
	}
	logger.Info("[INFO] Added %q to %s\n", line, path)
	return nil
}
