package main

import (
	"github.com/ravi0900/linux-setup/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The linux-setup project installs a small, fixed set of developer tools on a
// Linux workstation from locally supplied archive files:
//   - IntelliJ IDEA into /opt/idea
//   - Android Studio into /opt/android-studio
//   - the Flutter SDK into /opt/flutter
//
// For each tool it validates the archive, asks before replacing an existing
// installation, extracts into the fixed target directory, appends a PATH
// export line to the user's shell profile and rc file (only if not already
// present), and for the two IDEs writes a .desktop launcher so they show up
// in the application menu. The `make-system-wide` command copies the running
// executable into /usr/local/bin so the tool itself is on everyone's PATH.
//
// Error handling strategy:
//   - Usage errors, missing archives and unrecognized tool selections abort
//     the run with a non-zero exit before any filesystem change is made
//   - A user declining to replace an existing installation only skips that
//     tool; the remaining tools of the run are still installed
//   - Any failing filesystem or extraction step is fatal for the whole run;
//     there is no retry and no rollback of partially applied steps
//
// All filesystem effects go through an afero.Fs handle, so the installation
// logic can be exercised in tests against an in-memory filesystem without
// requiring root or a real /opt.
func main() {
	cmd.Execute()
}
