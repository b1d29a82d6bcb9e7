package installer

import (
	"strings"
	"testing"
)

func TestSelfInstall(t *testing.T) {
	ins, fs := newTestInstaller("")

	if err := ins.SelfInstall(strings.NewReader("#!binary"), "linux-setup"); err != nil {
		t.Fatalf("SelfInstall failed: %v", err)
	}
	if got := readFile(t, fs, "/usr/local/bin/linux-setup"); got != "#!binary" {
		t.Fatalf("unexpected installed content: %q", got)
	}
	info, err := fs.Stat("/usr/local/bin/linux-setup")
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Fatalf("installed program is not executable: %v", info.Mode())
	}
}

func TestSelfInstallOverwrites(t *testing.T) {
	ins, fs := newTestInstaller("")

	if err := ins.SelfInstall(strings.NewReader("v1"), "linux-setup"); err != nil {
		t.Fatal(err)
	}
	if err := ins.SelfInstall(strings.NewReader("v2"), "linux-setup"); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, fs, "/usr/local/bin/linux-setup"); got != "v2" {
		t.Fatalf("repeated install should overwrite, got %q", got)
	}
}
