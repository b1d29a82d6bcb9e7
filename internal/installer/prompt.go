package installer

import (
	"strings"

	"github.com/ravi0900/linux-setup/internal/config"
	"github.com/ravi0900/linux-setup/internal/logger"
)

// Decision is the outcome of the existing-installation prompt.
type Decision int

const (
	// Proceed means the target is free (or the user agreed to replace it)
	// and installation continues.
	Proceed Decision = iota
	// Skip means this tool's installation is abandoned without error and
	// the run moves on to the next tool.
	Skip
)

// confirmReplace decides whether installation of the tool may proceed. If no
// previous installation exists the answer is Proceed without prompting.
// Otherwise the user is asked; "y"/"yes" means Proceed, "n"/"no" means Skip,
// and any other answer (including empty input from a non-interactive run) is
// treated as an invalid choice and also means Skip. Invalid input is a
// distinct case from "no", not an error.
func (ins *Installer) confirmReplace(tool config.Tool) Decision {
	if _, err := ins.fs.Stat(tool.TargetDir); err != nil {
		logger.Debug("[DEBUG] No existing installation at %s\n", tool.TargetDir)
		return Proceed
	}

	logger.Warn("[WARN] %s is already installed at %s.\n", tool.Name, tool.TargetDir)
	logger.Info("Replace the existing installation? [y/n]: ")

	line, _ := ins.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return Proceed
	case "n", "no":
		return Skip
	default:
		logger.Warn("[WARN] Invalid choice, leaving %s untouched.\n", tool.Name)
		return Skip
	}
}
