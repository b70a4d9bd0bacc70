package generator

import (
	"strings"
	"testing"

	"novagen/config"
	"novagen/internal/models"
	"novagen/internal/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateTestTransactions(t *testing.T, cfg *config.Config, src *rng.Source) ([]models.Product, []models.Transaction) {
	t.Helper()

	products, sales := generateTestSales(t, cfg, src)
	txns, err := NewTransactionGenerator(products, sales, cfg, src).Generate()
	require.NoError(t, err)
	require.NotEmpty(t, txns)

	return products, txns
}

func TestTransactionReferentialIntegrity(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Lite", SeriesCount: 1})
	products, txns := generateTestTransactions(t, cfg, rng.NewSource(42))

	known := map[string]bool{}
	for _, p := range products {
		known[p.ProductID] = true
	}

	for _, txn := range txns {
		assert.True(t, known[txn.ProductID], txn.ProductID)
		assert.True(t, strings.HasPrefix(txn.TransactionID, "TXN-"))
		assert.True(t, strings.HasPrefix(txn.CustomerID, "CUST-"))
	}
}

func TestTransactionPricingInvariants(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Prime", SeriesCount: 1})
	products, txns := generateTestTransactions(t, cfg, rng.NewSource(42))
	price := products[0].PriceUSD

	for _, txn := range txns {
		assert.InDelta(t, price, txn.PricePaid+txn.DiscountAmount, 0.011)
		assert.Positive(t, txn.PricePaid)

		// Discount stays within the 5%-30% band on either channel type.
		pct := txn.DiscountAmount / price
		assert.GreaterOrEqual(t, pct, 0.049)
		assert.LessOrEqual(t, pct, 0.301)
	}
}

func TestTransactionTimestampsInStoreHours(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Mini", SeriesCount: 1})
	_, txns := generateTestTransactions(t, cfg, rng.NewSource(42))

	for _, txn := range txns {
		hour := txn.TransactionDatetime.Hour()
		assert.GreaterOrEqual(t, hour, 9)
		assert.LessOrEqual(t, hour, 21)
	}
}

func TestTransactionRepeatCustomers(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Plus", SeriesCount: 2})
	_, txns := generateTestTransactions(t, cfg, rng.NewSource(42))

	seen := map[string]string{}
	repeats := 0
	for _, txn := range txns {
		previous, wasSeen := seen[txn.CustomerID]

		assert.Equal(t, wasSeen, txn.IsRepeatCustomer, txn.TransactionID)
		assert.Equal(t, previous, txn.PreviousProductID, txn.TransactionID)
		if txn.IsRepeatCustomer {
			repeats++
		}

		seen[txn.CustomerID] = txn.ProductID
	}

	// With 30% reuse the output must contain some repeat purchases.
	assert.Positive(t, repeats)
}

func TestTransactionSegmentMatchesLineAffinity(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Lite", SeriesCount: 1})
	_, txns := generateTestTransactions(t, cfg, rng.NewSource(42))

	// Lite is favored by Budget Conscious and Casual User only.
	for _, txn := range txns {
		assert.Contains(t, []string{"Budget Conscious", "Casual User"}, txn.CustomerSegment)
	}
}

func TestTransactionDemographicsFromFixedPools(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Max", SeriesCount: 1})
	_, txns := generateTestTransactions(t, cfg, rng.NewSource(42))

	for _, txn := range txns {
		assert.Contains(t, ageGroups, txn.AgeGroup)
		assert.Contains(t, incomeLevels, txn.IncomeLevel)
	}
}

func TestTransactionDeterministic(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Flex Flip", SeriesCount: 1})

	_, a := generateTestTransactions(t, cfg, rng.NewSource(42))
	_, b := generateTestTransactions(t, cfg, rng.NewSource(42))

	assert.Equal(t, a, b)
}
