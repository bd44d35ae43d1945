package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/chiselworks/feedgen/pkg/rule"
	"github.com/chiselworks/feedgen/pkg/types"
	"github.com/spf13/cobra"
)

var rulesOutputFormat string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage feedback rules",
	Long:  "Commands for listing and inspecting feedback rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list <rules>",
	Short: "List the rules of a catalog",
	Long:  "Display the rules of a rules document with their IDs and categories",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesList,
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)
	rulesListCmd.Flags().StringVar(&rulesOutputFormat, "format", "table", "Output format: table, json")
}

func runRulesList(cmd *cobra.Command, args []string) error {
	rules, err := rule.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading rules from %s: %w", args[0], err)
	}

	switch rulesOutputFormat {
	case "json":
		return outputRulesJSON(cmd, rules)
	case "table":
		return outputRulesTable(cmd, rules)
	default:
		return fmt.Errorf("unknown output format: %s", rulesOutputFormat)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

type ruleListing struct {
	ID       types.RuleID `json:"id"`
	Category string       `json:"category"`
	Summary  string       `json:"summary"`
}

func listings(rules *types.RuleSet) []ruleListing {
	result := make([]ruleListing, 0, rules.Len())
	for _, id := range rules.IDs() {
		r := rules.Get(id)
		result = append(result, ruleListing{ID: id, Category: r.Category, Summary: r.Summary})
	}
	return result
}

func outputRulesJSON(cmd *cobra.Command, rules *types.RuleSet) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(listings(rules))
}

func outputRulesTable(cmd *cobra.Command, rules *types.RuleSet) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tCategory\tSummary\n")
	fmt.Fprintf(w, "--\t--------\t-------\n")

	for _, entry := range listings(rules) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.ID, entry.Category, entry.Summary)
	}

	return nil
}
