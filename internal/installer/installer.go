package installer

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ravi0900/linux-setup/internal/config"
	"github.com/ravi0900/linux-setup/internal/logger"
)

// Installer orchestrates the installation of the fixed tool set. All
// filesystem effects go through the afero.Fs handle and all prompt answers
// are read from the supplied reader, so the full flow can run in tests
// against an in-memory filesystem with scripted input.
type Installer struct {
	fs       afero.Fs
	in       *bufio.Reader
	settings config.Settings
}

// New returns an Installer writing through fs, reading prompt answers from
// in, and using the shell/launcher locations in settings.
func New(fs afero.Fs, in io.Reader, settings config.Settings) *Installer {
	return &Installer{
		fs:       fs,
		in:       bufio.NewReader(in),
		settings: settings,
	}
}

// InstallAll installs the three tools in the fixed order: IDE, mobile IDE,
// toolchain. A declined prompt skips only that tool; any other failure
// aborts the remaining installations.
func (ins *Installer) InstallAll(ideaArchive, studioArchive, flutterArchive string) error {
	archives := map[config.ToolID]string{
		config.ToolIdea:    ideaArchive,
		config.ToolStudio:  studioArchive,
		config.ToolFlutter: flutterArchive,
	}
	for _, tool := range config.Tools() {
		if err := ins.Install(tool, archives[tool.ID]); err != nil {
			return err
		}
	}
	return nil
}

// Install installs a single tool from the given archive reference, performing
// in order: archive validation, the replace-or-skip prompt when a previous
// installation exists, clean recreation of the target directory, extraction,
// PATH registration, and (for GUI tools) the desktop launcher.
//
// A Skip decision returns nil so that a multi-tool run continues. Once the
// old installation has been removed there is no rollback: a failing
// extraction leaves the target directory partially populated.
func (ins *Installer) Install(tool config.Tool, archive string) error {
	logger.Info("[INFO] Installing %s from %s\n", tool.Name, archive)

	local, err := ins.fetchArchive(archive)
	if err != nil {
		return err
	}
	if err := ins.validateArchive(local); err != nil {
		return err
	}

	if ins.confirmReplace(tool) == Skip {
		logger.Warn("[WARN] Skipping %s installation.\n", tool.Name)
		return nil
	}

	dest, err := ins.cleanTarget(tool)
	if err != nil {
		return err
	}
	if err := ins.extractArchive(local, dest, tool.StripTop); err != nil {
		return fmt.Errorf("failed to extract %s: %w", local, err)
	}
	if err := ins.registerPath(tool); err != nil {
		return err
	}
	if tool.Desktop != nil {
		if err := ins.writeDesktopEntry(*tool.Desktop); err != nil {
			return err
		}
	}

	logger.Info("[INFO] Installed %s into %s\n", tool.Name, tool.TargetDir)
	return nil
}

// cleanTarget removes any previous installation and returns the directory
// extraction should write into. Tools whose archive carries its own
// top-level directory extract into the shared install root; the others get
// a freshly created target directory.
func (ins *Installer) cleanTarget(tool config.Tool) (string, error) {
	if err := ins.fs.RemoveAll(tool.TargetDir); err != nil {
		return "", fmt.Errorf("failed to remove %s: %w", tool.TargetDir, err)
	}

	dest := tool.TargetDir
	if !tool.StripTop {
		dest = filepath.Dir(tool.TargetDir)
	}
	if err := ins.fs.MkdirAll(dest, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}
	logger.Debug("[DEBUG] Prepared extraction directory %s for %s\n", dest, tool.Name)
	return dest, nil
}

// validateArchive fails fast when the archive reference does not name an
// existing regular file. Content is not inspected; a corrupt archive only
// surfaces later as an extraction error.
func (ins *Installer) validateArchive(path string) error {
	info, err := ins.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("archive not found at %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("archive %s is not a regular file", path)
	}
	return nil
}
