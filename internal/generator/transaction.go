package generator

import (
	"fmt"
	"math"
	"time"

	"novagen/config"
	"novagen/internal/models"
	"novagen/internal/rng"
)

// salesSampleFraction is the share of sales facts exploded into
// customer-level transactions.
const salesSampleFraction = 0.30

var customerSegments = []string{"Tech Enthusiast", "Budget Conscious", "Premium Seeker", "Casual User"}
var customerSegmentWeights = []float64{0.25, 0.30, 0.20, 0.25}

var ageGroups = []string{"18-24", "25-34", "35-44", "45-54", "55+"}
var incomeLevels = []string{"Low", "Medium", "High"}

// segmentPreferences lists the product lines each segment favors; kept as an
// ordered slice so matching-segment selection replays deterministically.
var segmentPreferences = []struct {
	Segment string
	Lines   []string
}{
	{"Tech Enthusiast", []string{"Prime", "Flex Fold", "Flex Flip"}},
	{"Budget Conscious", []string{"Lite", "Plus"}},
	{"Premium Seeker", []string{"Prime", "Max", "Flex Fold"}},
	{"Casual User", []string{"Plus", "Lite", "Mini"}},
}

// TransactionGenerator samples sales facts into per-customer purchase
// events. The customer-history map is scoped to one generator value, so
// repeated runs in the same process never leak history between runs.
type TransactionGenerator struct {
	products map[string]models.Product
	sales    []models.SaleRecord
	cfg      *config.Config
	src      *rng.Source

	// history maps customer to their last purchased product; customerIDs
	// mirrors insertion order so returning-customer draws are deterministic.
	history     map[string]string
	customerIDs []string
}

// NewTransactionGenerator creates a transaction generator over the catalog
// and sales table.
func NewTransactionGenerator(products []models.Product, sales []models.SaleRecord, cfg *config.Config, src *rng.Source) *TransactionGenerator {
	index := make(map[string]models.Product, len(products))
	for _, p := range products {
		index[p.ProductID] = p
	}
	return &TransactionGenerator{
		products: index,
		sales:    sales,
		cfg:      cfg,
		src:      src,
		history:  make(map[string]string),
	}
}

// Generate samples 30% of sales rows and emits max(1, floor(units*0.1))
// transactions for each, tracking repeat customers through the history map.
func (g *TransactionGenerator) Generate() ([]models.Transaction, error) {
	k := int(math.Round(salesSampleFraction * float64(len(g.sales))))
	sampled := rng.SampleIndices(g.src, len(g.sales), k)

	var transactions []models.Transaction
	txnID := 1
	for _, idx := range sampled {
		sale := g.sales[idx]

		product, ok := g.products[sale.ProductID]
		if !ok {
			return nil, fmt.Errorf("sales fact references unknown product %s", sale.ProductID)
		}

		numTxns := int(float64(sale.UnitsSold) * 0.1)
		if numTxns < 1 {
			numTxns = 1
		}

		for i := 0; i < numTxns; i++ {
			customerID := g.pickCustomer()
			_, isRepeat := g.history[customerID]
			previousProduct := g.history[customerID]

			discountPct := g.discountRate(sale.ChannelType)
			discountAmount := round2(product.PriceUSD * discountPct)
			pricePaid := round2(product.PriceUSD - discountAmount)

			segment := g.pickSegment(product.ProductLine)
			ageGroup := rng.Choice(g.src, ageGroups)
			incomeLevel := rng.Choice(g.src, incomeLevels)

			// Purchases land in store hours, 9:00-21:59.
			at := time.Date(sale.Date.Year(), sale.Date.Month(), sale.Date.Day(),
				g.src.IntRange(9, 21), g.src.IntRange(0, 59), g.src.IntRange(0, 59), 0, time.UTC)

			transactions = append(transactions, models.Transaction{
				TransactionID:       fmt.Sprintf("TXN-%08d", txnID),
				TransactionDatetime: at,
				CustomerID:          customerID,
				ProductID:           sale.ProductID,
				PricePaid:           pricePaid,
				DiscountAmount:      discountAmount,
				Channel:             sale.Channel,
				Region:              sale.Region,
				Country:             sale.Country,
				CustomerSegment:     segment,
				AgeGroup:            ageGroup,
				IncomeLevel:         incomeLevel,
				IsRepeatCustomer:    isRepeat,
				PreviousProductID:   previousProduct,
			})

			g.recordPurchase(customerID, sale.ProductID)
			txnID++
		}
	}
	return transactions, nil
}

// pickCustomer reuses an existing customer with 30% probability once any
// exist, otherwise mints a new random customer id.
func (g *TransactionGenerator) pickCustomer() string {
	if len(g.customerIDs) > 0 && g.src.Bool(0.30) {
		return rng.Choice(g.src, g.customerIDs)
	}
	return fmt.Sprintf("CUST-%06d", g.src.IntRange(100000, 999999))
}

func (g *TransactionGenerator) recordPurchase(customerID, productID string) {
	if _, seen := g.history[customerID]; !seen {
		g.customerIDs = append(g.customerIDs, customerID)
	}
	g.history[customerID] = productID
}

// discountRate draws the base discount by channel type (online 10-15%,
// offline 5-10%); a 15%-probability promotion adds 10-15% capped at 30%.
func (g *TransactionGenerator) discountRate(channelType string) float64 {
	var base float64
	if channelType == models.ChannelTypeOnline {
		base = g.src.FloatRange(0.10, 0.15)
	} else {
		base = g.src.FloatRange(0.05, 0.10)
	}

	if g.src.Bool(0.15) {
		base += g.src.FloatRange(0.10, 0.15)
		if base > 0.30 {
			base = 0.30
		}
	}
	return base
}

// pickSegment prefers segments whose line affinity includes the product's
// line, falling back to the weighted global segment distribution.
func (g *TransactionGenerator) pickSegment(productLine string) string {
	var matching []string
	for _, pref := range segmentPreferences {
		for _, line := range pref.Lines {
			if line == productLine {
				matching = append(matching, pref.Segment)
				break
			}
		}
	}
	if len(matching) > 0 {
		return rng.Choice(g.src, matching)
	}
	return rng.WeightedChoice(g.src, customerSegments, customerSegmentWeights)
}
