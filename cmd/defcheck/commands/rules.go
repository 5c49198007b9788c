package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/defcheck/internal/errors"
	"github.com/thoreinstein/defcheck/internal/rules"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List validation rules",
	Long: `List the built-in validation rules and whether each is active under
the current configuration. Rules are disabled with the disabled_rules
config key, or per run with validate --skip.`,
	Example: `  # List rules
  defcheck rules

See Also: defcheck validate, defcheck config`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func runRules(cmd *cobra.Command, _ []string) error {
	composite, err := rules.Build(rules.Options{
		Disabled:     cfg.DisabledRules,
		NamePattern:  cfg.NamePattern,
		MaxDocLength: cfg.MaxDocLength,
	})
	if err != nil {
		return errors.NewConfigError(err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RULE\tSTATUS\tDESCRIPTION")
	for _, e := range rules.Catalog() {
		status := "disabled"
		if composite.HasInstance(e.Match) {
			status = "active"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, status, e.Description)
	}
	return errors.Wrap(w.Flush(), "writing rule list")
}
