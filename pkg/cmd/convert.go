package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/ta/pkg/cmd/cmdutil"
	"github.com/c9s/ta/pkg/config"
	"github.com/c9s/ta/pkg/datasource/csvsource"
)

func init() {
	cmdutil.DataFlags(ConvertCmd.Flags())
	ConvertCmd.Flags().String("output-dir", "klines", "the directory of the converted csv file")
	RootCmd.AddCommand(ConvertCmd)
}

// go run ./cmd/ta convert --csv=EURUSD60.csv --source-format=metatrader --symbol=EURUSD --interval=1h
var ConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "validate the klines of csv files and write them in the binance csv format",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.Default()
		if err := cmdutil.ApplyOverrides(conf, viper.GetViper(), nil); err != nil {
			return err
		}
		if conf.Source.Path == "" {
			return errors.New("--csv is required")
		}

		fileName, err := convert(conf, viper.GetString("output-dir"))
		if err != nil {
			return err
		}

		log.Infof("klines are written to %s", fileName)
		return nil
	},
}

func convert(conf *config.Config, outputDir string) (string, error) {
	window, err := cmdutil.LoadWindow(conf)
	if err != nil {
		return "", err
	}

	if err := window.Validate(); err != nil {
		return "", errors.Wrap(err, "invalid klines")
	}

	return csvsource.WriteKLines(outputDir, window)
}
