package sink

import (
	"context"
	"fmt"
	"time"

	"novagen/internal/models"
	"novagen/internal/util"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Warehouse loads generated datasets into a Postgres analytics schema.
type Warehouse struct {
	db *sqlx.DB
}

// NewWarehouse connects to the warehouse database.
func NewWarehouse(databaseURL string) (*Warehouse, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Warehouse{db: db}, nil
}

// Close closes the database connection
func (w *Warehouse) Close() error {
	return w.db.Close()
}

const warehouseSchema = `
CREATE TABLE IF NOT EXISTS dim_products (
	product_id        TEXT PRIMARY KEY,
	product_name      TEXT NOT NULL,
	product_line      TEXT NOT NULL,
	series            TEXT NOT NULL,
	launch_date       DATE NOT NULL,
	discontinue_date  DATE,
	price_usd         NUMERIC(10,2) NOT NULL,
	camera_mp         INTEGER NOT NULL,
	battery_mah       INTEGER NOT NULL,
	display_inch      NUMERIC(4,1) NOT NULL,
	storage_gb        INTEGER NOT NULL,
	ram_gb            INTEGER NOT NULL,
	processor         TEXT NOT NULL,
	color_options     TEXT NOT NULL,
	weight_g          INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS fact_daily_sales (
	date            DATE NOT NULL,
	product_id      TEXT NOT NULL REFERENCES dim_products(product_id),
	region          TEXT NOT NULL,
	country         TEXT NOT NULL,
	channel         TEXT NOT NULL,
	channel_type    TEXT NOT NULL,
	units_sold      INTEGER NOT NULL,
	revenue_usd     NUMERIC(14,2) NOT NULL,
	units_returned  INTEGER NOT NULL,
	return_rate     NUMERIC(8,4) NOT NULL
);

CREATE TABLE IF NOT EXISTS fact_transactions (
	transaction_id       TEXT PRIMARY KEY,
	transaction_datetime TIMESTAMP NOT NULL,
	customer_id          TEXT NOT NULL,
	product_id           TEXT NOT NULL REFERENCES dim_products(product_id),
	price_paid           NUMERIC(10,2) NOT NULL,
	discount_amount      NUMERIC(10,2) NOT NULL,
	channel              TEXT NOT NULL,
	region               TEXT NOT NULL,
	country              TEXT NOT NULL,
	customer_segment     TEXT NOT NULL,
	age_group            TEXT NOT NULL,
	income_level         TEXT NOT NULL,
	is_repeat_customer   BOOLEAN NOT NULL,
	previous_product_id  TEXT
);

CREATE TABLE IF NOT EXISTS fact_campaign_performance (
	campaign_id      TEXT PRIMARY KEY,
	campaign_name    TEXT NOT NULL,
	start_date       DATE NOT NULL,
	end_date         DATE NOT NULL,
	product_id       TEXT NOT NULL REFERENCES dim_products(product_id),
	channel          TEXT NOT NULL,
	region           TEXT NOT NULL,
	budget_usd       BIGINT NOT NULL,
	impressions      BIGINT NOT NULL,
	clicks           BIGINT NOT NULL,
	ctr              NUMERIC(8,4) NOT NULL,
	conversions      BIGINT NOT NULL,
	conversion_rate  NUMERIC(8,4) NOT NULL,
	revenue_usd      NUMERIC(14,2) NOT NULL,
	roi              NUMERIC(10,4) NOT NULL
);`

// EnsureSchema creates the warehouse tables if they do not exist.
func (w *Warehouse) EnsureSchema(ctx context.Context) error {
	if _, err := w.db.ExecContext(ctx, warehouseSchema); err != nil {
		return fmt.Errorf("failed to create warehouse schema: %w", err)
	}
	return nil
}

// LoadProducts replaces the product dimension with the given catalog.
func (w *Warehouse) LoadProducts(ctx context.Context, products []models.Product) error {
	query := `
		INSERT INTO dim_products (
			product_id, product_name, product_line, series, launch_date,
			discontinue_date, price_usd, camera_mp, battery_mah, display_inch,
			storage_gb, ram_gb, processor, color_options, weight_g)
		VALUES (
			:product_id, :product_name, :product_line, :series, :launch_date,
			:discontinue_date, :price_usd, :camera_mp, :battery_mah, :display_inch,
			:storage_gb, :ram_gb, :processor, :color_options, :weight_g)
		ON CONFLICT (product_id) DO NOTHING`

	err := w.loadBatched(ctx, "dim_products", query, len(products), func(lo, hi int) interface{} {
		return products[lo:hi]
	})
	if err != nil {
		return err
	}
	util.SinkRowsLoadedTotal.WithLabelValues("postgres", "dim_products").Add(float64(len(products)))
	return nil
}

// LoadDailySales appends daily sales facts.
func (w *Warehouse) LoadDailySales(ctx context.Context, sales []models.SaleRecord) error {
	query := `
		INSERT INTO fact_daily_sales (
			date, product_id, region, country, channel, channel_type,
			units_sold, revenue_usd, units_returned, return_rate)
		VALUES (
			:date, :product_id, :region, :country, :channel, :channel_type,
			:units_sold, :revenue_usd, :units_returned, :return_rate)`

	err := w.loadBatched(ctx, "fact_daily_sales", query, len(sales), func(lo, hi int) interface{} {
		return sales[lo:hi]
	})
	if err != nil {
		return err
	}
	util.SinkRowsLoadedTotal.WithLabelValues("postgres", "fact_daily_sales").Add(float64(len(sales)))
	return nil
}

// LoadTransactions appends transaction facts.
func (w *Warehouse) LoadTransactions(ctx context.Context, txns []models.Transaction) error {
	query := `
		INSERT INTO fact_transactions (
			transaction_id, transaction_datetime, customer_id, product_id,
			price_paid, discount_amount, channel, region, country,
			customer_segment, age_group, income_level, is_repeat_customer,
			previous_product_id)
		VALUES (
			:transaction_id, :transaction_datetime, :customer_id, :product_id,
			:price_paid, :discount_amount, :channel, :region, :country,
			:customer_segment, :age_group, :income_level, :is_repeat_customer,
			:previous_product_id)
		ON CONFLICT (transaction_id) DO NOTHING`

	err := w.loadBatched(ctx, "fact_transactions", query, len(txns), func(lo, hi int) interface{} {
		return txns[lo:hi]
	})
	if err != nil {
		return err
	}
	util.SinkRowsLoadedTotal.WithLabelValues("postgres", "fact_transactions").Add(float64(len(txns)))
	return nil
}

// LoadCampaigns appends campaign performance facts.
func (w *Warehouse) LoadCampaigns(ctx context.Context, campaigns []models.Campaign) error {
	query := `
		INSERT INTO fact_campaign_performance (
			campaign_id, campaign_name, start_date, end_date, product_id,
			channel, region, budget_usd, impressions, clicks, ctr,
			conversions, conversion_rate, revenue_usd, roi)
		VALUES (
			:campaign_id, :campaign_name, :start_date, :end_date, :product_id,
			:channel, :region, :budget_usd, :impressions, :clicks, :ctr,
			:conversions, :conversion_rate, :revenue_usd, :roi)
		ON CONFLICT (campaign_id) DO NOTHING`

	err := w.loadBatched(ctx, "fact_campaign_performance", query, len(campaigns), func(lo, hi int) interface{} {
		return campaigns[lo:hi]
	})
	if err != nil {
		return err
	}
	util.SinkRowsLoadedTotal.WithLabelValues("postgres", "fact_campaign_performance").Add(float64(len(campaigns)))
	return nil
}

// batchSize keeps named-exec parameter counts under the Postgres limit of
// 65535 bind parameters per statement.
const batchSize = 1000

func (w *Warehouse) loadBatched(ctx context.Context, table, query string, n int, slice func(lo, hi int) interface{}) error {
	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", table, err)
	}
	defer tx.Rollback()

	for lo := 0; lo < n; lo += batchSize {
		hi := lo + batchSize
		if hi > n {
			hi = n
		}
		if _, err := tx.NamedExecContext(ctx, query, slice(lo, hi)); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s load: %w", table, err)
	}
	return nil
}
