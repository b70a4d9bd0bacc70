package generator

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"novagen/config"
	"novagen/internal/models"
	"novagen/internal/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateTestReviews(t *testing.T, cfg *config.Config, src *rng.Source) ([]models.Product, []models.Transaction, []models.Review) {
	t.Helper()

	products, txns := generateTestTransactions(t, cfg, src)
	reviews, err := NewReviewGenerator(products, txns, cfg, src).Generate()
	require.NoError(t, err)
	require.NotEmpty(t, reviews)

	return products, txns, reviews
}

func TestReviewFollowsPurchaseWindow(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Lite", SeriesCount: 1})
	_, _, reviews := generateTestReviews(t, cfg, rng.NewSource(42))

	for _, r := range reviews {
		purchased, err := time.Parse(models.DatetimeLayout, r.PurchaseDatetime)
		require.NoError(t, err)
		reviewed, err := time.Parse(models.DatetimeLayout, r.ReviewDatetime)
		require.NoError(t, err)

		gap := reviewed.Sub(purchased)
		assert.GreaterOrEqual(t, gap, 7*24*time.Hour, r.ReviewID)
		assert.Less(t, gap, 30*24*time.Hour, r.ReviewID)
	}
}

func TestReviewLinksToRealTransaction(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Prime", SeriesCount: 1})
	_, txns, reviews := generateTestReviews(t, cfg, rng.NewSource(42))

	type purchase struct{ customer, product string }
	known := map[purchase]bool{}
	for _, txn := range txns {
		known[purchase{txn.CustomerID, txn.ProductID}] = true
	}

	for _, r := range reviews {
		assert.True(t, known[purchase{r.CustomerID, r.ProductID}], r.ReviewID)
	}
}

func TestReviewCountWithinBand(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Plus", SeriesCount: 2})
	cfg.Reviews.MinPerProduct = 3
	cfg.Reviews.MaxPerProduct = 8
	products, txns, reviews := generateTestReviews(t, cfg, rng.NewSource(42))

	available := map[string]int{}
	for _, txn := range txns {
		available[txn.ProductID]++
	}

	counts := map[string]int{}
	for _, r := range reviews {
		counts[r.ProductID]++
	}

	for _, p := range products {
		n := counts[p.ProductID]
		if available[p.ProductID] == 0 {
			assert.Zero(t, n, p.ProductID)
			continue
		}

		// The target is drawn in [min, max] and then capped at the number
		// of reviewable transactions.
		lower := cfg.Reviews.MinPerProduct
		if available[p.ProductID] < lower {
			lower = available[p.ProductID]
		}
		assert.GreaterOrEqual(t, n, lower, p.ProductID)
		assert.LessOrEqual(t, n, cfg.Reviews.MaxPerProduct, p.ProductID)
	}
}

func TestReviewRatingAndVotes(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Max", SeriesCount: 1})
	_, _, reviews := generateTestReviews(t, cfg, rng.NewSource(42))

	for _, r := range reviews {
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.LessOrEqual(t, r.HelpfulVotes, r.TotalVotes)
		assert.Positive(t, r.TotalVotes)

		assert.NotEmpty(t, r.ReviewTitle)
		assert.NotEmpty(t, r.ReviewText)
		require.NotNil(t, r.Pros)
		require.NotNil(t, r.Cons)
	}
}

func TestReviewVariantMatchesProduct(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Mini", SeriesCount: 1})
	products, _, reviews := generateTestReviews(t, cfg, rng.NewSource(42))
	p := products[0]

	colors := strings.Split(p.ColorOptions, ",")
	for _, r := range reviews {
		assert.Contains(t, colors, r.Variant.Color)
		assert.Equal(t, fmt.Sprintf("%dGB", p.StorageGB), r.Variant.Storage)
	}
}

func TestReviewRatingDistributionSkewsPositive(t *testing.T) {
	cfg := testConfig(
		config.ProductLineConfig{Name: "Prime", SeriesCount: 3},
		config.ProductLineConfig{Name: "Lite", SeriesCount: 3},
	)
	cfg.Reviews.MinPerProduct = 50
	cfg.Reviews.MaxPerProduct = 100
	_, _, reviews := generateTestReviews(t, cfg, rng.NewSource(42))

	high := 0
	for _, r := range reviews {
		if r.Rating >= 4 {
			high++
		}
	}

	// 70% of ratings draw from the 4-5 star buckets.
	assert.InDelta(t, 0.70, float64(high)/float64(len(reviews)), 0.10)
}
