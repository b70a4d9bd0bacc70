package generator

import (
	"fmt"
	"time"

	"novagen/config"
	"novagen/internal/dates"
	"novagen/internal/models"
	"novagen/internal/rng"
)

// regionWeight fixes region iteration order; Go map iteration would break
// deterministic replay.
type regionWeight struct {
	Name   string
	Weight float64
}

var salesRegions = []regionWeight{
	{"North America", 0.30},
	{"Europe", 0.25},
	{"Asia Pacific", 0.35},
	{"Latin America", 0.07},
	{"Middle East", 0.03},
}

var regionCountries = map[string][]string{
	"North America": {"USA", "Canada", "Mexico"},
	"Europe":        {"UK", "Germany", "France", "Spain", "Italy"},
	"Asia Pacific":  {"Japan", "South Korea", "Australia", "Singapore", "India"},
	"Latin America": {"Brazil", "Argentina", "Chile"},
	"Middle East":   {"UAE", "Saudi Arabia", "Qatar"},
}

type salesChannel struct {
	Name   string
	Type   string
	Weight float64
}

var salesChannels = []salesChannel{
	{"Amazon", models.ChannelTypeOnline, 0.25},
	{"TechMart", models.ChannelTypeOnline, 0.15},
	{"MegaStore Online", models.ChannelTypeOnline, 0.12},
	{"Nova Direct", models.ChannelTypeOnline, 0.08},
	{"TechMart Stores", models.ChannelTypeOffline, 0.15},
	{"MegaStore Retail", models.ChannelTypeOffline, 0.12},
	{"CarrierShops", models.ChannelTypeOffline, 0.08},
	{"Nova Flagship Stores", models.ChannelTypeOffline, 0.05},
}

// returnRates maps a product line to its [min, max] daily return-rate range.
var returnRates = map[string][2]float64{
	"Prime":     {0.02, 0.03},
	"Flex Fold": {0.02, 0.03},
	"Flex Flip": {0.025, 0.035},
	"Plus":      {0.03, 0.04},
	"Lite":      {0.04, 0.05},
	"Max":       {0.025, 0.035},
	"Mini":      {0.03, 0.04},
}

var defaultReturnRate = [2]float64{0.03, 0.04}

// SalesGenerator produces the daily sales fact table from the catalog.
type SalesGenerator struct {
	products []models.Product
	cfg      *config.Config
	src      *rng.Source
}

// NewSalesGenerator creates a sales generator over the given catalog.
func NewSalesGenerator(products []models.Product, cfg *config.Config, src *rng.Source) *SalesGenerator {
	return &SalesGenerator{products: products, cfg: cfg, src: src}
}

// Generate produces one sales fact per day, region, and channel for every
// product whose lifecycle overlaps the study range. Rows with zero units
// are skipped.
func (g *SalesGenerator) Generate() ([]models.SaleRecord, error) {
	studyStart, err := dates.Parse(g.cfg.DateRange.StartDate)
	if err != nil {
		return nil, fmt.Errorf("study start date: %w", err)
	}
	studyEnd, err := dates.Parse(g.cfg.DateRange.EndDate)
	if err != nil {
		return nil, fmt.Errorf("study end date: %w", err)
	}

	var sales []models.SaleRecord
	for _, p := range g.products {
		sales = append(sales, g.generateProductSales(p, studyStart, studyEnd)...)
	}
	return sales, nil
}

func (g *SalesGenerator) generateProductSales(p models.Product, studyStart, studyEnd time.Time) []models.SaleRecord {
	discontinue := studyEnd
	if p.DiscontinueDate != nil {
		discontinue = *p.DiscontinueDate
	}

	salesStart := maxTime(p.LaunchDate, studyStart)
	salesEnd := minTime(discontinue, studyEnd)
	if !salesStart.Before(salesEnd) {
		return nil
	}

	rateRange, ok := returnRates[p.ProductLine]
	if !ok {
		rateRange = defaultReturnRate
	}

	var sales []models.SaleRecord
	for day := salesStart; !day.After(salesEnd); day = dates.AddDays(day, 1) {
		daysSinceLaunch := dates.DaysBetween(p.LaunchDate, day)
		baseUnits := int(float64(g.baseUnitsByLifecycle(daysSinceLaunch)) * seasonalMultiplier(day))

		for _, region := range salesRegions {
			country := rng.Choice(g.src, regionCountries[region.Name])

			for _, channel := range salesChannels {
				units := int(float64(baseUnits) * region.Weight * channel.Weight)
				units = int(float64(units) * g.src.FloatRange(0.8, 1.2))
				if units <= 0 {
					continue
				}

				rate := g.src.FloatRange(rateRange[0], rateRange[1])

				sales = append(sales, models.SaleRecord{
					Date:          day,
					ProductID:     p.ProductID,
					Region:        region.Name,
					Country:       country,
					Channel:       channel.Name,
					ChannelType:   channel.Type,
					UnitsSold:     units,
					RevenueUSD:    round2(float64(units) * p.PriceUSD),
					UnitsReturned: int(float64(units) * rate),
					ReturnRate:    round4(rate),
				})
			}
		}
	}
	return sales
}

// baseUnitsByLifecycle is the four-piece daily unit curve: introduction ramp
// (5 to 20 over 90 days), growth ramp (20 to 100 through day 365), a
// randomized maturity plateau (80-120 through day 730), then a decline from
// a 60-unit baseline floored at 30% of it.
func (g *SalesGenerator) baseUnitsByLifecycle(daysSinceLaunch int) int {
	switch {
	case daysSinceLaunch < 90:
		return int(5 + float64(daysSinceLaunch)/90*15)
	case daysSinceLaunch < 365:
		progress := float64(daysSinceLaunch-90) / 275
		return int(20 + progress*80)
	case daysSinceLaunch < 730:
		return g.src.IntRange(80, 120)
	default:
		daysInDecline := daysSinceLaunch - 730
		factor := 1 - float64(daysInDecline)/365*0.5
		if factor < 0.3 {
			factor = 0.3
		}
		return int(60 * factor)
	}
}

// seasonalMultiplier boosts holiday (Nov-Dec) and back-to-school (Aug-Sep)
// demand and dampens the post-holiday slowdown (Jan-Feb).
func seasonalMultiplier(day time.Time) float64 {
	switch {
	case dates.IsHolidaySeason(day):
		return 1.25
	case dates.IsBackToSchoolSeason(day):
		return 1.15
	case day.Month() == time.January || day.Month() == time.February:
		return 0.90
	default:
		return 1.0
	}
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
