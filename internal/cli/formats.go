package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/output"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases := map[string][]string{}
			for _, a := range output.AvailableFormatAliases() {
				name := output.NormalizeFormatName(a)
				aliases[name] = append(aliases[name], a)
			}

			var rows [][]string
			for _, name := range output.AvailableFormatterNames() {
				list := aliases[name]
				sort.Strings(list)
				rows = append(rows, []string{name, output.FileExtension(name), strings.Join(list, ", ")})
			}
			rows = append(rows, []string{"all", "-", "console + detailed-csv + html"})

			fmt.Fprint(cmd.OutOrStdout(), FormatTable([]string{"FORMAT", "EXTENSION", "ALIASES"}, rows))
			return nil
		},
	}
}
