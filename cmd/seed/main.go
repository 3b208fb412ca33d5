package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/infoloom/infoloom/api/internal/config"
	mongodoc "github.com/infoloom/infoloom/api/internal/infrastructure/mongo"
	"github.com/infoloom/infoloom/api/internal/logging"
	publicapp "github.com/infoloom/infoloom/api/internal/public/application"
)

type seedOptions struct {
	responses       int
	dropCollections bool
	randomSeed      int64
}

// seedStore is the part of the form response repository the seeder drives.
type seedStore interface {
	publicapp.FormResponseRepository
	Drop(ctx context.Context) error
	EnsureIndexes(ctx context.Context) error
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(opts seedOptions) error {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	connector := mongodoc.NewConnector(cfg.MongoURI, cfg.Timeout)
	defer func() {
		if err := connector.Disconnect(context.Background()); err != nil {
			logger.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	repo := mongodoc.NewFormResponseRepository(connector, cfg.MongoDatabase, cfg.FormResponseCollection)
	inserted, err := seed(ctx, logger, repo, opts, time.Now())
	if err != nil {
		return err
	}

	logger.Info("seed done",
		zap.Int("responses", inserted),
		zap.String("formId", sampleSchema.ID),
		zap.String("database", cfg.MongoDatabase),
		zap.String("collection", cfg.FormResponseCollection),
		zap.Int64("seed", opts.randomSeed),
	)
	return nil
}

// seed optionally drops the collection, ensures its index and inserts generated
// responses, the last one an hour before now.
func seed(ctx context.Context, logger *zap.Logger, store seedStore, opts seedOptions, now time.Time) (int, error) {
	if opts.dropCollections {
		if err := store.Drop(ctx); err != nil {
			// Drop errors on a missing collection too.
			logger.Warn("drop failed", zap.Error(err))
		}
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		return 0, err
	}

	forms := publicapp.NewFormCommandService(store, nil)
	rng := rand.New(rand.NewSource(opts.randomSeed))
	start := now.Add(-time.Duration(opts.responses) * time.Hour)

	inserted := 0
	for i, payload := range generateResponses(rng, sampleSchema, opts.responses, start) {
		if _, err := forms.Submit(ctx, payload); err != nil {
			return inserted, errors.Wrapf(err, "insert response %d", i)
		}
		inserted++
	}
	return inserted, nil
}

func parseFlags() seedOptions {
	var opts seedOptions
	pflag.IntVar(&opts.responses, "responses", 25, "number of form responses to generate")
	pflag.BoolVar(&opts.dropCollections, "drop", false, "drop the form response collection first")
	pflag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed, for reproducible runs")
	pflag.Parse()
	return opts
}
