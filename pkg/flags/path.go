package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func AddPath(cmd *cobra.Command) {
	cmd.Flags().
		StringP(
			"path",
			"p",
			"",
			"Path to the note, absolute or vault relative, skipping the fuzzy finder",
		)
}

func HandlePath(cmd *cobra.Command) (string, error) {
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		return "", fmt.Errorf("error retrieving path flag: %w", err)
	}
	return strings.TrimSpace(path), nil
}
