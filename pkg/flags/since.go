package flags

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"
)

func AddSince(cmd *cobra.Command) {
	cmd.Flags().
		StringP(
			"since",
			"s",
			"",
			"Only include notes modified on or after this date (e.g. 2024-05-01, \"May 1 2024\")",
		)
}

// HandleSince parses the since flag. The zero time means no filter.
func HandleSince(cmd *cobra.Command) (time.Time, error) {
	raw, err := cmd.Flags().GetString("since")
	if err != nil {
		return time.Time{}, fmt.Errorf("error retrieving since flag: %w", err)
	}
	return ParseSince(raw)
}

func ParseSince(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	t, err := dateparse.ParseLocal(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --since date %q: %w", raw, err)
	}
	return t, nil
}
