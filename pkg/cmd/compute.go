package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/ta/pkg/cmd/cmdutil"
	"github.com/c9s/ta/pkg/config"
	"github.com/c9s/ta/pkg/indicatorset"
	"github.com/c9s/ta/pkg/metrics"
	"github.com/c9s/ta/pkg/report"
	"github.com/c9s/ta/pkg/types"
)

type computeOptions struct {
	summary     bool
	concurrency int
	withColor   bool
}

// go run ./cmd/ta compute --csv=pkg/datasource/csvsource/testdata --indicator=rsi:14 --indicator=adx:5
var ComputeCmd = &cobra.Command{
	Use:   "compute",
	Short: "compute the indicators over the klines of csv files",
	RunE: func(cmd *cobra.Command, args []string) error {
		indicators, err := cmd.Flags().GetStringArray("indicator")
		if err != nil {
			return err
		}

		conf, err := cmdutil.LoadConfig(viper.GetViper(), indicators)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return compute(ctx, conf, os.Stdout, computeOptions{
			summary:     viper.GetBool("summary"),
			concurrency: viper.GetInt("concurrency"),
			withColor:   !color.NoColor,
		})
	},
}

func init() {
	cmdutil.DataFlags(ComputeCmd.Flags())
	cmdutil.OutputFlags(ComputeCmd.Flags())
	RootCmd.AddCommand(ComputeCmd)
}

func run(ctx context.Context, conf *config.Config, concurrency int) (types.KLineWindow, []indicatorset.Result, error) {
	window, err := cmdutil.LoadWindow(conf)
	if err != nil {
		return nil, nil, err
	}

	log.Infof("loaded %d klines from %s", window.Len(), conf.Source.Path)

	set := indicatorset.New(conf.Symbol, conf.Interval, conf.Indicators...)
	set.Concurrency = concurrency

	results, err := set.Run(ctx, window)
	if err != nil {
		return nil, nil, err
	}

	return window, results, nil
}

func compute(ctx context.Context, conf *config.Config, stdout io.Writer, options computeOptions) error {
	window, results, err := run(ctx, conf, options.concurrency)
	if err != nil {
		return err
	}

	frame, err := report.NewFrame(window, results, conf.Output.Columns, conf.Output.Tail)
	if err != nil {
		return err
	}

	out := stdout
	if conf.Output.File != "" {
		f, err := os.Create(conf.Output.File)
		if err != nil {
			return errors.Wrapf(err, "unable to create %s", conf.Output.File)
		}
		defer f.Close()
		out = f
	}

	if conf.Output.Format == "" || conf.Output.Format == "table" {
		err = report.WriteTable(out, frame, options.withColor && out == stdout)
	} else {
		err = report.Write(out, conf.Output.Format, frame)
	}
	if err != nil {
		return err
	}

	if options.summary {
		report.WriteSummary(stdout, report.Summarize(frame), options.withColor)
	}

	if conf.Output.Chart != "" {
		if err := report.RenderChartFile(conf.Output.Chart, frame); err != nil {
			return err
		}
		log.Infof("chart is saved to %s", conf.Output.Chart)
	}

	if conf.Metrics.Textfile != "" {
		if err := metrics.WriteToTextfile(conf.Metrics.Textfile); err != nil {
			return err
		}
	}

	return nil
}
