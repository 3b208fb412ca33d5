package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/infoloom/infoloom/api/internal/config"
	"github.com/infoloom/infoloom/api/internal/logging"
	mongodoc "github.com/infoloom/infoloom/api/internal/infrastructure/mongo"
	"github.com/infoloom/infoloom/api/internal/server"
)

func main() {
	configFile := pflag.String("config", "", "optional config file (yaml, toml or json)")
	pflag.Parse()

	v := viper.New()
	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "config file %s could not be read: %v\n", *configFile, err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	connector := mongodoc.NewConnector(cfg.MongoURI, cfg.Timeout)

	app := server.New(cfg, logger, connector)
	if err := app.Run(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
