package runner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/first-ml/internal/emoji"
	"github.com/drakos74/first-ml/internal/math/ml"
)

// Loader provides the full dataset.
type Loader func() (ml.Dataset, error)

// Splitter partitions the dataset into train and test subsets.
type Splitter func(ds ml.Dataset, fraction float64, seed int64) (train ml.Dataset, test ml.Dataset, err error)

// Factory creates an untrained classifier.
type Factory func(seed int64) (ml.Classifier, error)

// Result is the outcome of a single run.
type Result struct {
	ID           string
	Model        ml.Kind
	Seed         int64
	Accuracy     float64
	Samples      int
	TrainSamples int
	Predictions  []int
	Fit          time.Duration
}

// Runner loads, splits, trains, predicts and scores exactly once per Run.
type Runner struct {
	cfg     Config
	load    Loader
	split   Splitter
	factory Factory
}

func New(cfg Config) *Runner {
	return &Runner{
		cfg:  cfg,
		load: ml.LoadIris,
		split: func(ds ml.Dataset, fraction float64, seed int64) (ml.Dataset, ml.Dataset, error) {
			return ml.Split(ds, fraction, ml.NewRand(seed))
		},
		factory: func(seed int64) (ml.Classifier, error) {
			return ml.New(cfg.Model, cfg.Criterion, seed)
		},
	}
}

func (r *Runner) WithLoader(load Loader) *Runner {
	r.load = load
	return r
}

func (r *Runner) WithSplitter(split Splitter) *Runner {
	r.split = split
	return r
}

func (r *Runner) WithFactory(factory Factory) *Runner {
	r.factory = factory
	return r
}

// Run executes the whole sequence, any failing step aborts it.
func (r *Runner) Run() (Result, error) {
	res := Result{
		ID:    uuid.New().String(),
		Model: r.cfg.Model,
		Seed:  r.cfg.seed(),
	}
	logger := log.With().Str("run", res.ID).Str("model", string(res.Model)).Int64("seed", res.Seed).Logger()

	ds, err := r.load()
	if err != nil {
		return res, fmt.Errorf("could not load dataset: %w", err)
	}
	logger.Info().Int("samples", ds.Len()).Int("features", ds.Dim()).Int("classes", ds.Classes()).Msg("loaded dataset")
	for _, fs := range ml.Describe(ds) {
		logger.Debug().
			Str("feature", fs.Name).
			Float64("mean", fs.Mean).
			Float64("std", fs.StdDev).
			Float64("min", fs.Min).
			Float64("max", fs.Max).
			Msg("feature")
	}

	train, test, err := r.split(ds, r.cfg.Holdout, res.Seed)
	if err != nil {
		return res, fmt.Errorf("could not split dataset: %w", err)
	}
	res.TrainSamples = train.Len()
	logger.Info().Int("train", train.Len()).Int("test", test.Len()).Float64("holdout", r.cfg.Holdout).Msg("split dataset")

	model, err := r.factory(res.Seed)
	if err != nil {
		return res, fmt.Errorf("could not create model: %w", err)
	}
	start := time.Now()
	if err := model.Fit(train.Features, train.Labels); err != nil {
		return res, fmt.Errorf("could not train model: %w", err)
	}
	res.Fit = time.Since(start)
	event := logger.Info().Dur("fit", res.Fit)
	if explainer, ok := model.(ml.Explainer); ok {
		event = event.Floats64("importance", explainer.FeatureImportance())
	}
	event.Msg("trained model")

	res.Predictions, err = model.Predict(test.Features)
	if err != nil {
		return res, fmt.Errorf("could not predict: %w", err)
	}
	res.Samples = len(res.Predictions)

	res.Accuracy, err = ml.Accuracy(res.Predictions, test.Labels)
	if err != nil {
		return res, fmt.Errorf("could not score predictions: %w", err)
	}
	if confusion, err := ml.Confusion(res.Predictions, test.Labels, ds.Classes()); err == nil {
		logger.Debug().Str("confusion", fmt.Sprintf("%v", confusion)).Msg("scored predictions")
	}
	logger.Info().
		Float64("accuracy", res.Accuracy).
		Str("grade", emoji.MapAccuracy(res.Accuracy)).
		Msg("evaluated model")
	return res, nil
}
