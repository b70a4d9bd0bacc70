package generator

import (
	"fmt"

	"novagen/config"
	"novagen/internal/dates"
	"novagen/internal/models"
	"novagen/internal/rng"
)

// campaignChannel bounds a marketing channel's drawable metrics. A zero CTR
// upper bound marks a non-click-measurable channel (broadcast): clicks and
// conversions are forced to zero and revenue becomes an indirect-effect
// estimate off the budget.
type campaignChannel struct {
	Name        string
	Impressions [2]int
	CTR         [2]float64
	Conversion  [2]float64
	Budget      [2]int
}

var campaignChannels = []campaignChannel{
	{"Social Media", [2]int{1000000, 5000000}, [2]float64{0.005, 0.015}, [2]float64{0.02, 0.04}, [2]int{50000, 200000}},
	{"Search", [2]int{100000, 500000}, [2]float64{0.03, 0.08}, [2]float64{0.05, 0.10}, [2]int{30000, 150000}},
	{"Display", [2]int{2000000, 10000000}, [2]float64{0.003, 0.008}, [2]float64{0.01, 0.02}, [2]int{40000, 180000}},
	{"TV", [2]int{10000000, 50000000}, [2]float64{0, 0}, [2]float64{0, 0}, [2]int{200000, 1000000}},
	{"Email", [2]int{50000, 200000}, [2]float64{0.10, 0.20}, [2]float64{0.03, 0.06}, [2]int{10000, 50000}},
	{"Influencer", [2]int{500000, 2000000}, [2]float64{0.02, 0.05}, [2]float64{0.05, 0.08}, [2]int{30000, 150000}},
}

var campaignRegions = []string{"North America", "Europe", "Asia Pacific", "Latin America", "Middle East"}

// CampaignGenerator produces per-product marketing campaign facts around
// each product's launch window.
type CampaignGenerator struct {
	products []models.Product
	cfg      *config.Config
	src      *rng.Source
}

// NewCampaignGenerator creates a campaign generator over the catalog.
func NewCampaignGenerator(products []models.Product, cfg *config.Config, src *rng.Source) *CampaignGenerator {
	return &CampaignGenerator{products: products, cfg: cfg, src: src}
}

// Generate produces 2-3 campaigns per product, starting within [-30, +60]
// days of the launch and running 14-45 days.
func (g *CampaignGenerator) Generate() ([]models.Campaign, error) {
	var campaigns []models.Campaign
	campaignID := 1

	for _, p := range g.products {
		numCampaigns := g.src.IntRange(2, 3)

		for i := 0; i < numCampaigns; i++ {
			start := dates.AddDays(p.LaunchDate, g.src.IntRange(-30, 60))
			end := dates.AddDays(start, g.src.IntRange(14, 45))

			channel := rng.Choice(g.src, campaignChannels)
			region := rng.Choice(g.src, campaignRegions)

			budget := g.src.IntRange(channel.Budget[0], channel.Budget[1])
			impressions := g.src.IntRange(channel.Impressions[0], channel.Impressions[1])

			var ctr, conversionRate, revenue float64
			var clicks, conversions int
			if channel.CTR[1] > 0 {
				ctr = g.src.FloatRange(channel.CTR[0], channel.CTR[1])
				clicks = int(float64(impressions) * ctr)
				conversionRate = g.src.FloatRange(channel.Conversion[0], channel.Conversion[1])
				conversions = int(float64(clicks) * conversionRate)
				revenue = float64(conversions) * p.PriceUSD
			} else {
				revenue = float64(budget) * g.src.FloatRange(0.5, 1.5)
			}

			var roi float64
			if budget > 0 {
				roi = (revenue - float64(budget)) / float64(budget)
			}

			campaigns = append(campaigns, models.Campaign{
				CampaignID:     fmt.Sprintf("CMP-%05d", campaignID),
				CampaignName:   fmt.Sprintf("%s %s Campaign", p.ProductName, channel.Name),
				StartDate:      start,
				EndDate:        end,
				ProductID:      p.ProductID,
				Channel:        channel.Name,
				Region:         region,
				BudgetUSD:      budget,
				Impressions:    impressions,
				Clicks:         clicks,
				CTR:            round4(ctr),
				Conversions:    conversions,
				ConversionRate: round4(conversionRate),
				RevenueUSD:     round2(revenue),
				ROI:            round2(roi),
			})
			campaignID++
		}
	}
	return campaigns, nil
}
