package installer

import (
	"testing"

	"github.com/ravi0900/linux-setup/internal/config"
)

func TestConfirmReplaceNoExistingInstallation(t *testing.T) {
	ins, _ := newTestInstaller("n\n")
	tool, _ := config.ToolByID(config.ToolIdea)

	// Without a previous installation there is nothing to ask about.
	if got := ins.confirmReplace(tool); got != Proceed {
		t.Fatalf("expected Proceed for a missing target, got %v", got)
	}
}

func TestConfirmReplaceAnswers(t *testing.T) {
	cases := []struct {
		input string
		want  Decision
	}{
		{"y\n", Proceed},
		{"Y\n", Proceed},
		{"yes\n", Proceed},
		{"  yes \n", Proceed},
		{"n\n", Skip},
		{"no\n", Skip},
		{"maybe\n", Skip}, // invalid input is a skip, not an error
		{"\n", Skip},
		{"", Skip}, // EOF from a non-interactive run
	}

	tool, _ := config.ToolByID(config.ToolIdea)
	for _, c := range cases {
		ins, fs := newTestInstaller(c.input)
		if err := fs.MkdirAll(tool.TargetDir, 0755); err != nil {
			t.Fatal(err)
		}
		if got := ins.confirmReplace(tool); got != c.want {
			t.Errorf("input %q: got %v, want %v", c.input, got, c.want)
		}
	}
}
