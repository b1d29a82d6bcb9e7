package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds the ambient locations the installer writes shell and
// launcher configuration to. The tool table itself (identities and target
// directories) is fixed and not configurable; settings only relocate the
// shell files and the applications directory, which is mainly useful for
// unusual setups and for tests.
type Settings struct {
	Shell           string `yaml:"shell"`            // "bash" or "zsh"; selects the default rc file
	ProfileFile     string `yaml:"profile_file"`     // shell profile PATH exports are appended to
	RCFile          string `yaml:"rc_file"`          // shell rc file PATH exports are appended to
	ApplicationsDir string `yaml:"applications_dir"` // where .desktop launchers are written
}

// DefaultSettings returns the standard locations for the current user:
// ~/.profile, the rc file of the detected shell, and the system-wide
// applications directory.
func DefaultSettings() Settings {
	home := homeDir()
	shell := detectShell()
	return Settings{
		Shell:           shell,
		ProfileFile:     filepath.Join(home, ".profile"),
		RCFile:          filepath.Join(home, rcFileFor(shell)),
		ApplicationsDir: "/usr/share/applications",
	}
}

// LoadSettings reads an optional YAML settings file and overlays any set
// fields on the defaults. An empty path returns the defaults unchanged.
//
// Expected structure:
//
//	settings:
//	  shell: bash
//	  profile_file: /home/dev/.profile
//	  rc_file: /home/dev/.bashrc
//	  applications_dir: /usr/share/applications
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var wrapper struct {
		Settings Settings `yaml:"settings"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings file %s: %w", path, err)
	}

	o := wrapper.Settings
	if o.Shell != "" {
		s.Shell = o.Shell
		// A shell override moves the default rc file along with it.
		s.RCFile = filepath.Join(homeDir(), rcFileFor(o.Shell))
	}
	if o.ProfileFile != "" {
		s.ProfileFile = o.ProfileFile
	}
	if o.RCFile != "" {
		s.RCFile = o.RCFile
	}
	if o.ApplicationsDir != "" {
		s.ApplicationsDir = o.ApplicationsDir
	}
	return s, nil
}

// homeDir resolves the invoking user's home directory, falling back to the
// HOME environment variable when user lookup fails.
func homeDir() string {
	if usr, err := user.Current(); err == nil && usr.HomeDir != "" {
		return usr.HomeDir
	}
	return os.Getenv("HOME")
}

// detectShell identifies the current user's shell from the SHELL environment
// variable. Returns "bash" or "zsh", defaulting to bash if unknown.
func detectShell() string {
	shell := os.Getenv("SHELL")
	if strings.Contains(shell, "zsh") {
		return "zsh"
	}
	return "bash"
}

// rcFileFor maps a shell name to its rc file basename.
func rcFileFor(shell string) string {
	if shell == "zsh" {
		return ".zshrc"
	}
	return ".bashrc"
}
