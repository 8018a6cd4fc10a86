package cmd

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/ta/pkg/config"
	"github.com/c9s/ta/pkg/indicatorset"
	"github.com/c9s/ta/pkg/style"
)

func init() {
	RootCmd.AddCommand(IndicatorsCmd)
}

var IndicatorsCmd = &cobra.Command{
	Use:          "indicators",
	Short:        "list the indicator types and their default output columns",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		if color.NoColor {
			t.SetStyle(*style.NewPlainTableStyle())
		} else {
			t.SetStyle(*style.NewDefaultTableStyle())
		}

		t.AppendHeader(table.Row{"type", "columns"})
		for _, typ := range indicatorset.Types() {
			ic, err := indicatorset.Normalize(config.IndicatorConfig{Type: typ})
			if err != nil {
				return err
			}
			t.AppendRow(table.Row{typ, strings.Join(indicatorset.ColumnNames(ic), ", ")})
		}
		t.Render()
		return nil
	},
}
