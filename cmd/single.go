package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ravi0900/linux-setup/internal/config"
	"github.com/ravi0900/linux-setup/internal/logger"
)

// singleCmd installs one tool from one archive. Which of the three tools the
// archive contains is asked interactively; an unrecognized answer is fatal
// and nothing is installed.
var singleCmd = &cobra.Command{
	Use:   "single <archive>",
	Short: "Install one tool from an archive, asking which tool it is",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// One shared reader for the tool question and the installer's
		// replace prompt, so buffered input is not lost between them.
		in := bufio.NewReader(os.Stdin)

		tool, err := askTool(in)
		if err != nil {
			return err
		}

		ins, err := newInstaller(in)
		if err != nil {
			return err
		}
		return ins.Install(tool, args[0])
	},
}

// askTool asks which tool the archive contains and resolves the answer
// against the fixed tool table.
func askTool(in *bufio.Reader) (config.Tool, error) {
	logger.Info("Which tool does this archive contain? [%s/%s/%s]: ",
		config.ToolIdea, config.ToolStudio, config.ToolFlutter)

	line, _ := in.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	tool, ok := config.ToolByID(config.ToolID(answer))
	if !ok {
		return config.Tool{}, fmt.Errorf("unrecognized tool selection %q", answer)
	}
	return tool, nil
}

func init() {
	rootCmd.AddCommand(singleCmd)
}
