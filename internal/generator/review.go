package generator

import (
	"fmt"
	"strings"
	"time"

	"novagen/config"
	"novagen/internal/models"
	"novagen/internal/rng"
	"novagen/internal/textgen"
)

var ratings = []int{5, 4, 3, 2, 1}
var ratingWeights = []float64{0.40, 0.30, 0.15, 0.10, 0.05}

const verifiedPurchaseRate = 0.85

// ReviewGenerator samples transactions into Amazon-style product reviews.
type ReviewGenerator struct {
	products     []models.Product
	transactions []models.Transaction
	cfg          *config.Config
	src          *rng.Source
}

// NewReviewGenerator creates a review generator over the catalog and
// transaction table.
func NewReviewGenerator(products []models.Product, transactions []models.Transaction, cfg *config.Config, src *rng.Source) *ReviewGenerator {
	return &ReviewGenerator{products: products, transactions: transactions, cfg: cfg, src: src}
}

// Generate draws a per-product review target within the configured band and
// samples that many of the product's transactions without replacement,
// capped at the available count. Products without transactions are skipped.
func (g *ReviewGenerator) Generate() ([]models.Review, error) {
	byProduct := make(map[string][]int, len(g.products))
	for i, txn := range g.transactions {
		byProduct[txn.ProductID] = append(byProduct[txn.ProductID], i)
	}

	var reviews []models.Review
	reviewID := 1

	for _, p := range g.products {
		eligible := byProduct[p.ProductID]
		if len(eligible) == 0 {
			continue
		}

		target := g.src.IntRange(g.cfg.Reviews.MinPerProduct, g.cfg.Reviews.MaxPerProduct)
		for _, pick := range rng.SampleIndices(g.src, len(eligible), target) {
			txn := g.transactions[eligible[pick]]
			reviews = append(reviews, g.generateReview(p, txn, reviewID))
			reviewID++
		}
	}
	return reviews, nil
}

func (g *ReviewGenerator) generateReview(p models.Product, txn models.Transaction, reviewID int) models.Review {
	rating := rng.WeightedChoice(g.src, ratings, ratingWeights)

	// The review instant is uniform over [purchase+7d, purchase+30d), which
	// covers both the 7-day minimum and a random time-of-day in one draw.
	offset := time.Duration(g.src.IntRange(0, 23*86400-1)) * time.Second
	reviewAt := txn.TransactionDatetime.Add(7*24*time.Hour + offset)

	content := textgen.ReviewText(g.src, rating, p.ProductName)
	prosCons := textgen.ProsConsFor(g.src, rating)

	verified := g.src.Bool(verifiedPurchaseRate)

	// High ratings attract larger vote pools and a better helpful ratio.
	var totalVotes, helpfulVotes int
	if rating >= 4 {
		totalVotes = g.src.IntRange(10, 100)
		helpfulVotes = int(float64(totalVotes) * g.src.FloatRange(0.7, 0.95))
	} else {
		totalVotes = g.src.IntRange(5, 50)
		helpfulVotes = int(float64(totalVotes) * g.src.FloatRange(0.5, 0.8))
	}

	profile := models.ReviewerProfile{
		TotalReviews:      g.src.IntRange(1, 50),
		VerifiedPurchases: g.src.IntRange(1, 40),
	}

	colors := strings.Split(p.ColorOptions, ",")
	variant := models.Variant{
		Color:   rng.Choice(g.src, colors),
		Storage: fmt.Sprintf("%dGB", p.StorageGB),
	}

	return models.Review{
		ReviewID:         fmt.Sprintf("REV-%08d", reviewID),
		ProductID:        p.ProductID,
		CustomerID:       txn.CustomerID,
		ReviewDatetime:   reviewAt.Format(models.DatetimeLayout),
		PurchaseDatetime: txn.TransactionDatetime.Format(models.DatetimeLayout),
		VerifiedPurchase: verified,
		Rating:           rating,
		ReviewTitle:      content.Title,
		ReviewText:       content.Text,
		Pros:             prosCons.Pros,
		Cons:             prosCons.Cons,
		HelpfulVotes:     helpfulVotes,
		TotalVotes:       totalVotes,
		ReviewerProfile:  profile,
		Variant:          variant,
	}
}
