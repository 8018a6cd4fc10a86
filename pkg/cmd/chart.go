package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/ta/pkg/cmd/cmdutil"
	"github.com/c9s/ta/pkg/config"
	"github.com/c9s/ta/pkg/report"
)

func init() {
	cmdutil.DataFlags(ChartCommand.Flags())
	ChartCommand.Flags().String("output", "chart.png", "the png file to write")
	RootCmd.AddCommand(ChartCommand)
}

// go run ./cmd/ta chart --csv=pkg/datasource/csvsource/testdata --indicator=sar --output=sar.png
var ChartCommand = &cobra.Command{
	Use:   "chart --csv=[path] --indicator=[indicator] [--output=chart.png]",
	Short: "draw the close price and the indicators into a png file",
	RunE: func(cmd *cobra.Command, args []string) error {
		indicators, err := cmd.Flags().GetStringArray("indicator")
		if err != nil {
			return err
		}

		conf, err := cmdutil.LoadConfig(viper.GetViper(), indicators)
		if err != nil {
			return err
		}

		fileName := viper.GetString("output")
		if fileName == "" {
			fileName = "chart.png"
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return chart(ctx, conf, fileName)
	},
}

func chart(ctx context.Context, conf *config.Config, fileName string) error {
	window, results, err := run(ctx, conf, 0)
	if err != nil {
		return err
	}

	frame, err := report.NewFrame(window, results, conf.Output.Columns, conf.Output.Tail)
	if err != nil {
		return err
	}

	if err := report.RenderChartFile(fileName, frame); err != nil {
		return errors.Wrapf(err, "unable to draw %s", fileName)
	}

	log.Infof("chart is saved to %s", fileName)
	return nil
}
