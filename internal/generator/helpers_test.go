package generator

import (
	"novagen/config"
)

func testConfig(lines ...config.ProductLineConfig) *config.Config {
	return &config.Config{
		RandomSeed: 42,
		DateRange: config.DateRangeConfig{
			StartDate: "2022-01-01",
			EndDate:   "2024-12-31",
		},
		Products:    config.ProductsConfig{Lines: lines},
		Reviews:     config.ReviewsConfig{MinPerProduct: 5, MaxPerProduct: 20},
		SocialPosts: config.SocialPostsConfig{PostsPerProductPerMonth: 30},
		Output:      config.OutputConfig{DataDir: "data"},
	}
}
