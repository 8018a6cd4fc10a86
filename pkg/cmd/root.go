package cmd

import (
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

var RootCmd = &cobra.Command{
	Use:   "ta",
	Short: "technical analysis indicators over kline csv files",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// bind the flags of the sub-command, the persistent flags are bound in Execute
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return errors.Wrap(err, "failed to bind local flags")
		}

		// viper reads the TA_* variables lazily, loading the dotenv file here is early enough
		if err := loadDotenv(viper.GetString("dotenv")); err != nil {
			return errors.Wrap(err, "error loading dotenv file")
		}

		setupLogging(viper.GetBool("debug"), os.Getenv("TA_ENV"))
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "the dotenv file to load")
	RootCmd.PersistentFlags().String("log-dir", "log", "the log directory in production")
}

func setupLogging(debug bool, environment string) {
	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	switch environment {
	case "production", "prod":
		writer := &lumberjack.Logger{
			Filename:   path.Join(viper.GetString("log-dir"), "ta.log"),
			MaxSize:    100, // megabytes
			MaxBackups: 7,
			MaxAge:     30, // days
		}
		logger.AddHook(
			lfshook.NewHook(
				lfshook.WriterMap{
					log.DebugLevel: writer,
					log.InfoLevel:  writer,
					log.WarnLevel:  writer,
					log.ErrorLevel: writer,
					log.FatalLevel: writer,
				},
				&log.JSONFormatter{},
			),
		)
	}
}

func loadDotenv(dotenvFile string) error {
	if dotenvFile == "" {
		return nil
	}

	if _, err := os.Stat(dotenvFile); err != nil {
		return nil
	}

	return godotenv.Load(dotenvFile)
}

func Execute() {
	viper.SetEnvPrefix("ta")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
