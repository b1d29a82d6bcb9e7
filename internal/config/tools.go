package config

import (
	"fmt"
	"path/filepath"
)

// ToolID identifies one of the fixed tools this setup program manages.
type ToolID string

const (
	ToolIdea    ToolID = "idea"
	ToolStudio  ToolID = "studio"
	ToolFlutter ToolID = "flutter"
)

const (
	// InstallRoot is the shared parent directory all three tools install under.
	InstallRoot = "/opt"

	// SystemBinDir is the directory make-system-wide copies the executable into.
	SystemBinDir = "/usr/local/bin"
)

// DesktopEntry describes the launcher descriptor written for a GUI tool so
// that graphical application menus can list and start it.
// - Name: Display name, also used as the .desktop file basename.
// - Exec: Absolute path of the executable the launcher starts.
// - Icon: Absolute path of the launcher icon.
type DesktopEntry struct {
	Name string
	Exec string
	Icon string
}

// Tool couples a tool identity with its fixed installation layout.
// - Name: Human-readable display name used in prompts and log output.
// - TargetDir: Fixed directory the tool is installed into, never computed.
// - StripTop: Whether extraction discards the archive's single top-level
//   directory, flattening contents directly into TargetDir. When false the
//   archive is extracted into InstallRoot and is expected to contain a
//   top-level directory matching TargetDir's basename.
// - Desktop: Launcher descriptor for GUI tools, nil for CLI toolchains.
type Tool struct {
	ID        ToolID
	Name      string
	TargetDir string
	StripTop  bool
	Desktop   *DesktopEntry
}

// BinDir returns the directory added to PATH for this tool.
func (t Tool) BinDir() string {
	return filepath.Join(t.TargetDir, "bin")
}

// ExportLine returns the shell line appended to profile and rc files to put
// the tool's bin directory on PATH.
func (t Tool) ExportLine() string {
	return fmt.Sprintf(`export PATH="$PATH:%s"`, t.BinDir())
}

// Tools returns the fixed tool table in `all` argument order:
// IDE first, mobile IDE second, toolchain last.
func Tools() []Tool {
	return []Tool{
		{
			ID:        ToolIdea,
			Name:      "IntelliJ IDEA",
			TargetDir: "/opt/idea",
			StripTop:  true,
			Desktop: &DesktopEntry{
				Name: "IntelliJ IDEA",
				Exec: "/opt/idea/bin/idea.sh",
				Icon: "/opt/idea/bin/idea.png",
			},
		},
		{
			ID:        ToolStudio,
			Name:      "Android Studio",
			TargetDir: "/opt/android-studio",
			StripTop:  true,
			Desktop: &DesktopEntry{
				Name: "Android Studio",
				Exec: "/opt/android-studio/bin/studio.sh",
				Icon: "/opt/android-studio/bin/studio.png",
			},
		},
		{
			ID:        ToolFlutter,
			Name:      "Flutter SDK",
			TargetDir: "/opt/flutter",
			StripTop:  false,
		},
	}
}

// ToolByID looks up a tool in the fixed table by its identity.
// The second return value reports whether the identity is known.
func ToolByID(id ToolID) (Tool, bool) {
	for _, t := range Tools() {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}
