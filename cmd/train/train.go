package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/first-ml/infra/config"
	"github.com/drakos74/first-ml/internal/metrics"
	"github.com/drakos74/first-ml/internal/runner"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	dir := flag.String("config-dir", config.Path, "directory holding runner.json")
	path := flag.String("config", "", "json config file overriding runner.json")
	flag.Parse()

	config.Path = *dir
	cfg, err := loadConfig(*path)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	res, err := runner.New(cfg).Run()
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}

	if err := runner.Report(os.Stdout, res); err != nil {
		log.Fatal().Err(err).Msg("could not print report")
	}

	if cfg.MetricsFile != "" {
		m := metrics.New()
		m.Observe(string(res.Model), res.Accuracy, res.TrainSamples, res.Samples, res.Fit)
		if err := m.WriteTo(cfg.MetricsFile); err != nil {
			log.Fatal().Err(err).Msg("could not write metrics")
		}
	}
}

// loadConfig reads runner.json from the config directory and applies the overrides found at path.
func loadConfig(path string) (runner.Config, error) {
	cfg := runner.DefaultConfig()
	config.MustLoad("runner", &cfg)
	if path != "" {
		if err := config.Load(path, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
