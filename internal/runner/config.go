package runner

import (
	"time"

	"github.com/drakos74/first-ml/internal/math/ml"
)

// Config drives a single run.
type Config struct {
	// Holdout is the fraction of samples kept out of training.
	Holdout float64 `json:"holdout"`
	// Seed feeds both the split and the model, 0 picks one from the clock.
	Seed        int64        `json:"seed"`
	Model       ml.Kind      `json:"model"`
	Criterion   ml.Criterion `json:"criterion"`
	LogLevel    string       `json:"log_level"`
	MetricsFile string       `json:"metrics_file"`
}

const DefaultSeed = 42

func DefaultConfig() Config {
	return Config{
		Holdout:   0.2,
		Seed:      DefaultSeed,
		Model:     ml.Tree,
		Criterion: ml.Gini,
		LogLevel:  "info",
	}
}

func (c Config) seed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}
