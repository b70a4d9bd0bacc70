// Package pipeline runs the full generation sequence: catalog, sales,
// transactions, campaigns, social posts, reviews, then the output artifacts
// and optional downstream sinks. Stage order is fixed; every stage consumes
// the same seeded random source, so a given seed and config always produce
// identical datasets.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"novagen/config"
	"novagen/internal/generator"
	"novagen/internal/models"
	"novagen/internal/output"
	"novagen/internal/rng"
	"novagen/internal/sink"
	"novagen/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result summarizes one completed run.
type Result struct {
	RunID        string
	Products     []models.Product
	Sales        []models.SaleRecord
	Transactions []models.Transaction
	Campaigns    []models.Campaign
	SocialPosts  []models.SocialPost
	Reviews      []models.Review
	OutputDir    string
	Elapsed      time.Duration
}

// Pipeline wires the generators to the output writers and sinks.
type Pipeline struct {
	cfg *config.Config
}

// New creates a pipeline for the given config.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Run executes every stage in order. Any stage error aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	logger := util.GetLogger()
	started := time.Now()

	res := &Result{
		RunID:     uuid.New().String(),
		OutputDir: p.cfg.Output.DataDir,
	}
	src := rng.NewSource(p.cfg.RandomSeed)

	logger.Info("Starting generation run",
		zap.String("run_id", res.RunID),
		zap.Int64("seed", p.cfg.RandomSeed),
		zap.String("start_date", p.cfg.DateRange.StartDate),
		zap.String("end_date", p.cfg.DateRange.EndDate))

	err := p.stage(ctx, "products", func(ctx context.Context) error {
		products, err := generator.NewProductGenerator(p.cfg, src).Generate()
		if err != nil {
			return err
		}
		res.Products = products
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, "daily_sales", func(ctx context.Context) error {
		sales, err := generator.NewSalesGenerator(res.Products, p.cfg, src).Generate()
		if err != nil {
			return err
		}
		res.Sales = sales
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, "transactions", func(ctx context.Context) error {
		txns, err := generator.NewTransactionGenerator(res.Products, res.Sales, p.cfg, src).Generate()
		if err != nil {
			return err
		}
		res.Transactions = txns
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, "campaigns", func(ctx context.Context) error {
		campaigns, err := generator.NewCampaignGenerator(res.Products, p.cfg, src).Generate()
		if err != nil {
			return err
		}
		res.Campaigns = campaigns
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, "social_posts", func(ctx context.Context) error {
		posts, err := generator.NewSocialGenerator(res.Products, p.cfg, src).Generate()
		if err != nil {
			return err
		}
		res.SocialPosts = posts
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, "reviews", func(ctx context.Context) error {
		reviews, err := generator.NewReviewGenerator(res.Products, res.Transactions, p.cfg, src).Generate()
		if err != nil {
			return err
		}
		res.Reviews = reviews
		return nil
	})
	if err != nil {
		return nil, err
	}

	util.RowsGeneratedTotal.WithLabelValues("dim_products").Add(float64(len(res.Products)))
	util.RowsGeneratedTotal.WithLabelValues("fact_daily_sales").Add(float64(len(res.Sales)))
	util.RowsGeneratedTotal.WithLabelValues("fact_transactions").Add(float64(len(res.Transactions)))
	util.RowsGeneratedTotal.WithLabelValues("fact_campaign_performance").Add(float64(len(res.Campaigns)))
	util.RowsGeneratedTotal.WithLabelValues("social_media_posts").Add(float64(len(res.SocialPosts)))
	util.RowsGeneratedTotal.WithLabelValues("product_reviews").Add(float64(len(res.Reviews)))

	err = p.stage(ctx, "write_outputs", func(ctx context.Context) error {
		return p.writeOutputs(res)
	})
	if err != nil {
		return nil, err
	}

	if err := p.loadSinks(ctx, res); err != nil {
		return nil, err
	}

	if err := util.WriteMetricsFile(p.cfg.Output.DataDir); err != nil {
		logger.Warn("Failed to write metrics file", zap.Error(err))
	}

	util.RunsCompletedTotal.Inc()
	res.Elapsed = time.Since(started)

	logger.Info("Generation run complete",
		zap.String("run_id", res.RunID),
		zap.Int("products", len(res.Products)),
		zap.Int("daily_sales", len(res.Sales)),
		zap.Int("transactions", len(res.Transactions)),
		zap.Int("campaigns", len(res.Campaigns)),
		zap.Int("social_posts", len(res.SocialPosts)),
		zap.Int("reviews", len(res.Reviews)),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

// stage wraps one pipeline step with logging, a span, and duration metrics.
func (p *Pipeline) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	logger := util.GetLogger()
	ctx, span := util.StartSpan(ctx, "pipeline."+name)
	defer span.End()

	logger.Info("Stage starting", zap.String("stage", name))
	started := time.Now()

	if err := fn(ctx); err != nil {
		util.StagesFailedTotal.WithLabelValues(name).Inc()
		logger.Error("Stage failed", zap.String("stage", name), zap.Error(err))
		return fmt.Errorf("stage %s: %w", name, err)
	}

	util.StageDuration.WithLabelValues(name).Observe(time.Since(started).Seconds())
	logger.Info("Stage complete",
		zap.String("stage", name),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

func (p *Pipeline) writeOutputs(res *Result) error {
	logger := util.GetLogger()
	dir := p.cfg.Output.DataDir
	dateRange := p.cfg.DateRange.StartDate + " to " + p.cfg.DateRange.EndDate

	writes := []struct {
		dataset string
		write   func() (string, error)
		count   int
	}{
		{"dim_products", func() (string, error) {
			return output.WriteCSV(dir, "dim_products.csv", models.ProductHeaders, records(res.Products))
		}, len(res.Products)},
		{"fact_daily_sales", func() (string, error) {
			return output.WriteCSV(dir, "fact_daily_sales.csv", models.SaleHeaders, records(res.Sales))
		}, len(res.Sales)},
		{"fact_transactions", func() (string, error) {
			return output.WriteCSV(dir, "fact_transactions.csv", models.TransactionHeaders, records(res.Transactions))
		}, len(res.Transactions)},
		{"fact_campaign_performance", func() (string, error) {
			return output.WriteCSV(dir, "fact_campaign_performance.csv", models.CampaignHeaders, records(res.Campaigns))
		}, len(res.Campaigns)},
		{"social_media_posts", func() (string, error) {
			return output.WriteJSON(dir, "social_media_posts.json", res.SocialPosts)
		}, len(res.SocialPosts)},
		{"product_reviews", func() (string, error) {
			return output.WriteJSON(dir, "product_reviews.json", res.Reviews)
		}, len(res.Reviews)},
	}

	entries := make([]output.LogEntry, 0, len(writes))
	for _, w := range writes {
		path, err := w.write()
		if err != nil {
			return fmt.Errorf("write %s: %w", w.dataset, err)
		}
		logger.Info("Dataset written",
			zap.String("dataset", w.dataset),
			zap.String("path", filepath.Clean(path)),
			zap.Int("records", w.count))
		entries = append(entries, output.LogEntry{
			Timestamp:   time.Now(),
			Dataset:     w.dataset,
			RecordCount: w.count,
			DateRange:   dateRange,
			Status:      "ok",
		})
	}

	if _, err := output.WriteDataDictionary(dir, datasetDocs(res, dateRange)); err != nil {
		return fmt.Errorf("write data dictionary: %w", err)
	}
	if _, err := output.WriteRunLog(dir, entries); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

func (p *Pipeline) loadSinks(ctx context.Context, res *Result) error {
	logger := util.GetLogger()

	if p.cfg.Sinks.DatabaseURL != "" {
		err := p.stage(ctx, "warehouse_load", func(ctx context.Context) error {
			wh, err := sink.NewWarehouse(p.cfg.Sinks.DatabaseURL)
			if err != nil {
				return err
			}
			defer wh.Close()

			if err := wh.EnsureSchema(ctx); err != nil {
				return err
			}
			if err := wh.LoadProducts(ctx, res.Products); err != nil {
				return err
			}
			if err := wh.LoadDailySales(ctx, res.Sales); err != nil {
				return err
			}
			if err := wh.LoadTransactions(ctx, res.Transactions); err != nil {
				return err
			}
			return wh.LoadCampaigns(ctx, res.Campaigns)
		})
		if err != nil {
			return err
		}
	} else {
		logger.Info("Warehouse sink disabled: no database URL configured")
	}

	if len(p.cfg.Sinks.KafkaBrokers) > 0 {
		err := p.stage(ctx, "event_publish", func(ctx context.Context) error {
			producer := sink.NewProducer(p.cfg.Sinks.KafkaBrokers, p.cfg.Sinks.KafkaTopic, res.RunID)
			defer producer.Close()

			if err := producer.PublishTransactions(ctx, res.Transactions); err != nil {
				return err
			}
			return producer.PublishSocialPosts(ctx, res.SocialPosts)
		})
		if err != nil {
			return err
		}
	} else {
		logger.Info("Event sink disabled: no Kafka brokers configured")
	}

	return nil
}

type csvRecord interface {
	Record() []string
}

func records[T csvRecord](rows []T) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Record())
	}
	return out
}
