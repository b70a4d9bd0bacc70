// Package generator implements the six dataset generation stages. Each
// stage consumes fully materialized output from earlier stages and draws
// all randomness from the one shared rng.Source, so a whole run replays
// from a single seed.
package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"novagen/config"
	"novagen/internal/dates"
	"novagen/internal/models"
	"novagen/internal/rng"
)

// lineSpec bounds the drawable specs for one product line.
type lineSpec struct {
	PriceRange     [2]int
	CameraRange    [2]int
	BatteryRange   [2]int
	DisplayRange   [2]float64
	StorageOptions []int
	RAMOptions     []int
	Processors     []string
	WeightRange    [2]int
}

var productSpecs = map[string]lineSpec{
	"Prime": {
		PriceRange:     [2]int{999, 1299},
		CameraRange:    [2]int{108, 200},
		BatteryRange:   [2]int{5000, 5500},
		DisplayRange:   [2]float64{6.7, 6.9},
		StorageOptions: []int{256, 512, 1024},
		RAMOptions:     []int{12, 16},
		Processors:     []string{"Snapdragon 8 Gen 3", "Exynos 2400"},
		WeightRange:    [2]int{195, 210},
	},
	"Flex Fold": {
		PriceRange:     [2]int{1799, 2199},
		CameraRange:    [2]int{50, 108},
		BatteryRange:   [2]int{4400, 4800},
		DisplayRange:   [2]float64{7.6, 8.0},
		StorageOptions: []int{256, 512},
		RAMOptions:     []int{12, 16},
		Processors:     []string{"Snapdragon 8 Gen 2", "Snapdragon 8 Gen 3"},
		WeightRange:    [2]int{250, 280},
	},
	"Flex Flip": {
		PriceRange:     [2]int{999, 1199},
		CameraRange:    [2]int{12, 50},
		BatteryRange:   [2]int{3700, 4000},
		DisplayRange:   [2]float64{6.7, 6.7},
		StorageOptions: []int{256, 512},
		RAMOptions:     []int{8, 12},
		Processors:     []string{"Snapdragon 8+ Gen 1", "Snapdragon 8 Gen 2"},
		WeightRange:    [2]int{185, 195},
	},
	"Plus": {
		PriceRange:     [2]int{599, 799},
		CameraRange:    [2]int{64, 108},
		BatteryRange:   [2]int{4500, 5000},
		DisplayRange:   [2]float64{6.5, 6.7},
		StorageOptions: []int{128, 256},
		RAMOptions:     []int{6, 8},
		Processors:     []string{"Snapdragon 778G", "Snapdragon 7 Gen 1"},
		WeightRange:    [2]int{180, 195},
	},
	"Lite": {
		PriceRange:     [2]int{299, 499},
		CameraRange:    [2]int{48, 64},
		BatteryRange:   [2]int{4000, 4500},
		DisplayRange:   [2]float64{6.4, 6.6},
		StorageOptions: []int{64, 128},
		RAMOptions:     []int{4, 6},
		Processors:     []string{"Snapdragon 695", "MediaTek Dimensity 700"},
		WeightRange:    [2]int{175, 190},
	},
	"Max": {
		PriceRange:     [2]int{899, 1099},
		CameraRange:    [2]int{108, 108},
		BatteryRange:   [2]int{5500, 6000},
		DisplayRange:   [2]float64{6.9, 7.2},
		StorageOptions: []int{256, 512},
		RAMOptions:     []int{8, 12},
		Processors:     []string{"Snapdragon 8 Gen 2", "Snapdragon 8 Gen 3"},
		WeightRange:    [2]int{220, 240},
	},
	"Mini": {
		PriceRange:     [2]int{699, 899},
		CameraRange:    [2]int{50, 64},
		BatteryRange:   [2]int{3500, 4000},
		DisplayRange:   [2]float64{5.4, 5.8},
		StorageOptions: []int{128, 256},
		RAMOptions:     []int{6, 8},
		Processors:     []string{"Snapdragon 8 Gen 1", "Snapdragon 8 Gen 2"},
		WeightRange:    [2]int{160, 175},
	},
}

var colorOptions = []string{
	"Midnight Black,Phantom Silver,Aurora Blue",
	"Cosmic Gray,Pearl White,Rose Gold",
	"Graphite,Silver,Gold",
	"Black,White,Blue,Green",
	"Phantom Black,Cream,Lavender",
}

// Year label for the first series in each line; subsequent series count down.
const currentSeriesYear = 2024

// ProductGenerator produces the product catalog, the root entity set every
// later stage references.
type ProductGenerator struct {
	cfg *config.Config
	src *rng.Source
}

// NewProductGenerator creates a product catalog generator.
func NewProductGenerator(cfg *config.Config, src *rng.Source) *ProductGenerator {
	return &ProductGenerator{cfg: cfg, src: src}
}

// Generate produces the full catalog, grouped by configured line order. The
// last product generated in each line is the current model: it never gets a
// discontinue date.
func (g *ProductGenerator) Generate() ([]models.Product, error) {
	startDate, err := dates.Parse(g.cfg.DateRange.StartDate)
	if err != nil {
		return nil, fmt.Errorf("study start date: %w", err)
	}

	var products []models.Product
	for _, line := range g.cfg.Products.Lines {
		spec, ok := productSpecs[line.Name]
		if !ok {
			return nil, fmt.Errorf("unknown product line %q", line.Name)
		}
		products = append(products, g.generateLine(line.Name, line.SeriesCount, spec, startDate)...)
	}
	return products, nil
}

func (g *ProductGenerator) generateLine(name string, seriesCount int, spec lineSpec, startDate time.Time) []models.Product {
	products := make([]models.Product, 0, seriesCount)
	lineID := strings.ReplaceAll(strings.ToUpper(name), " ", "-")

	for i := 0; i < seriesCount; i++ {
		year := currentSeriesYear - i
		series := strconv.Itoa(year % 100)

		// Launches are spaced six (30-day) months apart across the study.
		launch := dates.AddMonths(startDate, i*6)

		p := models.Product{
			ProductID:    fmt.Sprintf("%s-%s", lineID, series),
			ProductName:  fmt.Sprintf("Nova %s %s", name, series),
			ProductLine:  name,
			Series:       series,
			LaunchDate:   launch,
			PriceUSD:     float64(g.src.IntRange(spec.PriceRange[0], spec.PriceRange[1])),
			CameraMP:     g.src.IntRange(spec.CameraRange[0], spec.CameraRange[1]),
			BatteryMAh:   g.src.IntRange(spec.BatteryRange[0], spec.BatteryRange[1]),
			DisplayInch:  math.Round(g.src.FloatRange(spec.DisplayRange[0], spec.DisplayRange[1])*10) / 10,
			StorageGB:    rng.Choice(g.src, spec.StorageOptions),
			RAMGB:        rng.Choice(g.src, spec.RAMOptions),
			Processor:    rng.Choice(g.src, spec.Processors),
			ColorOptions: rng.Choice(g.src, colorOptions),
			WeightG:      g.src.IntRange(spec.WeightRange[0], spec.WeightRange[1]),
		}

		if i < seriesCount-1 {
			discontinue := dates.AddMonths(launch, g.src.IntRange(24, 36))
			p.DiscontinueDate = &discontinue
		}

		products = append(products, p)
	}
	return products
}
