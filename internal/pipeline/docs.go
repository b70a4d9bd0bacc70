package pipeline

import "novagen/internal/output"

// datasetDocs builds the data-dictionary entries for one run.
func datasetDocs(res *Result, dateRange string) []output.DatasetInfo {
	return []output.DatasetInfo{
		{
			Name:        "Product Catalog",
			Filename:    "dim_products.csv",
			Description: "Dimension table of every Nova smartphone model with specs and lifecycle dates.",
			RecordCount: len(res.Products),
			Fields: []output.FieldDoc{
				{Name: "product_id", Type: "string", Description: "Unique product identifier (LINE-ID-SERIES)"},
				{Name: "product_name", Type: "string", Description: "Marketing name of the model"},
				{Name: "product_line", Type: "string", Description: "Product line the model belongs to"},
				{Name: "series", Type: "string", Description: "Two-digit series year"},
				{Name: "launch_date", Type: "date", Description: "Market launch date"},
				{Name: "discontinue_date", Type: "date", Description: "Discontinuation date, empty for current models"},
				{Name: "price_usd", Type: "float", Description: "Launch list price in USD"},
				{Name: "camera_mp", Type: "int", Description: "Main camera resolution in megapixels"},
				{Name: "battery_mah", Type: "int", Description: "Battery capacity in mAh"},
				{Name: "display_inch", Type: "float", Description: "Display diagonal in inches"},
				{Name: "storage_gb", Type: "int", Description: "Storage capacity in GB"},
				{Name: "ram_gb", Type: "int", Description: "RAM in GB"},
				{Name: "processor", Type: "string", Description: "Processor model"},
				{Name: "color_options", Type: "string", Description: "Comma separated color options"},
				{Name: "weight_g", Type: "int", Description: "Device weight in grams"},
			},
		},
		{
			Name:        "Daily Sales",
			Filename:    "fact_daily_sales.csv",
			Description: "Daily units and revenue per product, region and channel.",
			RecordCount: len(res.Sales),
			DateRange:   dateRange,
			Fields: []output.FieldDoc{
				{Name: "date", Type: "date", Description: "Sales date"},
				{Name: "product_id", Type: "string", Description: "References dim_products.product_id"},
				{Name: "region", Type: "string", Description: "Sales region"},
				{Name: "country", Type: "string", Description: "Country within the region"},
				{Name: "channel", Type: "string", Description: "Sales channel"},
				{Name: "channel_type", Type: "string", Description: "online or offline"},
				{Name: "units_sold", Type: "int", Description: "Units sold that day"},
				{Name: "revenue_usd", Type: "float", Description: "Revenue at list price in USD"},
				{Name: "units_returned", Type: "int", Description: "Units returned from that day's sales"},
				{Name: "return_rate", Type: "float", Description: "Return rate applied to the row"},
			},
		},
		{
			Name:        "Transactions",
			Filename:    "fact_transactions.csv",
			Description: "Individual purchase transactions sampled from the daily sales.",
			RecordCount: len(res.Transactions),
			DateRange:   dateRange,
			Fields: []output.FieldDoc{
				{Name: "transaction_id", Type: "string", Description: "Unique transaction identifier"},
				{Name: "transaction_datetime", Type: "datetime", Description: "Purchase timestamp"},
				{Name: "customer_id", Type: "string", Description: "Customer identifier, stable across repeat purchases"},
				{Name: "product_id", Type: "string", Description: "References dim_products.product_id"},
				{Name: "price_paid", Type: "float", Description: "Final price after discount in USD"},
				{Name: "discount_amount", Type: "float", Description: "Discount applied in USD"},
				{Name: "channel", Type: "string", Description: "Sales channel"},
				{Name: "region", Type: "string", Description: "Sales region"},
				{Name: "country", Type: "string", Description: "Country within the region"},
				{Name: "customer_segment", Type: "string", Description: "Buyer segment"},
				{Name: "age_group", Type: "string", Description: "Buyer age bracket"},
				{Name: "income_level", Type: "string", Description: "Buyer income bracket"},
				{Name: "is_repeat_customer", Type: "bool", Description: "True when the customer purchased before"},
				{Name: "previous_product_id", Type: "string", Description: "Previous product for repeat customers"},
			},
		},
		{
			Name:        "Campaign Performance",
			Filename:    "fact_campaign_performance.csv",
			Description: "Marketing campaign spend and outcomes per product.",
			RecordCount: len(res.Campaigns),
			Fields: []output.FieldDoc{
				{Name: "campaign_id", Type: "string", Description: "Unique campaign identifier"},
				{Name: "campaign_name", Type: "string", Description: "Campaign display name"},
				{Name: "start_date", Type: "date", Description: "Campaign start"},
				{Name: "end_date", Type: "date", Description: "Campaign end"},
				{Name: "product_id", Type: "string", Description: "References dim_products.product_id"},
				{Name: "channel", Type: "string", Description: "Marketing channel"},
				{Name: "region", Type: "string", Description: "Target region"},
				{Name: "budget_usd", Type: "int", Description: "Campaign budget in USD"},
				{Name: "impressions", Type: "int", Description: "Ad impressions served"},
				{Name: "clicks", Type: "int", Description: "Clicks, zero for channels without click tracking"},
				{Name: "ctr", Type: "float", Description: "Click-through rate"},
				{Name: "conversions", Type: "int", Description: "Attributed conversions"},
				{Name: "conversion_rate", Type: "float", Description: "Conversions per click"},
				{Name: "revenue_usd", Type: "float", Description: "Attributed revenue in USD"},
				{Name: "roi", Type: "float", Description: "(revenue - budget) / budget"},
			},
		},
		{
			Name:        "Social Media Posts",
			Filename:    "social_media_posts.json",
			Description: "Simulated social posts mentioning Nova products with sentiment and engagement.",
			RecordCount: len(res.SocialPosts),
			DateRange:   dateRange,
			Fields: []output.FieldDoc{
				{Name: "post_id", Type: "string", Description: "Unique post identifier"},
				{Name: "timestamp", Type: "datetime", Description: "Post timestamp in UTC"},
				{Name: "platform", Type: "string", Description: "Social platform"},
				{Name: "user_id", Type: "string", Description: "Posting user identifier"},
				{Name: "user_followers", Type: "int", Description: "Follower count of the posting user"},
				{Name: "text", Type: "string", Description: "Post body"},
				{Name: "product_mentioned", Type: "string", Description: "References dim_products.product_id"},
				{Name: "hashtags", Type: "array", Description: "Hashtags attached to the post"},
				{Name: "sentiment", Type: "string", Description: "positive, neutral or negative"},
				{Name: "sentiment_score", Type: "float", Description: "Score in [-1, 1] consistent with the sentiment"},
				{Name: "engagement", Type: "object", Description: "Likes, shares and comments"},
				{Name: "language", Type: "string", Description: "Post language code"},
			},
		},
		{
			Name:        "Product Reviews",
			Filename:    "product_reviews.json",
			Description: "Customer reviews tied to real transactions, written at least a week after purchase.",
			RecordCount: len(res.Reviews),
			Fields: []output.FieldDoc{
				{Name: "review_id", Type: "string", Description: "Unique review identifier"},
				{Name: "product_id", Type: "string", Description: "References dim_products.product_id"},
				{Name: "customer_id", Type: "string", Description: "Customer who wrote the review"},
				{Name: "review_datetime", Type: "datetime", Description: "When the review was posted"},
				{Name: "purchase_datetime", Type: "datetime", Description: "Timestamp of the underlying transaction"},
				{Name: "verified_purchase", Type: "bool", Description: "Whether the purchase was verified"},
				{Name: "rating", Type: "int", Description: "Star rating 1 to 5"},
				{Name: "review_title", Type: "string", Description: "Review headline"},
				{Name: "review_text", Type: "string", Description: "Review body"},
				{Name: "pros", Type: "array", Description: "Listed positives"},
				{Name: "cons", Type: "array", Description: "Listed negatives"},
				{Name: "helpful_votes", Type: "int", Description: "Helpful votes received"},
				{Name: "total_votes", Type: "int", Description: "Total votes received"},
				{Name: "reviewer_profile", Type: "object", Description: "Reviewer history counts"},
				{Name: "variant", Type: "object", Description: "Color and storage variant purchased"},
			},
		},
	}
}
