package models

import (
	"strconv"
	"time"
)

// DatetimeLayout is the timestamp format used in transactions and reviews.
const DatetimeLayout = "2006-01-02T15:04:05"

// Channel types
const (
	ChannelTypeOnline  = "Online"
	ChannelTypeOffline = "Offline"
)

// Sentiment categories
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Product is the root entity of every dataset. It is created once by the
// catalog stage and never mutated afterward.
type Product struct {
	ProductID       string     `db:"product_id" json:"product_id"`
	ProductName     string     `db:"product_name" json:"product_name"`
	ProductLine     string     `db:"product_line" json:"product_line"`
	Series          string     `db:"series" json:"series"`
	LaunchDate      time.Time  `db:"launch_date" json:"launch_date"`
	DiscontinueDate *time.Time `db:"discontinue_date" json:"discontinue_date,omitempty"`
	PriceUSD        float64    `db:"price_usd" json:"price_usd"`
	CameraMP        int        `db:"camera_mp" json:"camera_mp"`
	BatteryMAh      int        `db:"battery_mah" json:"battery_mah"`
	DisplayInch     float64    `db:"display_inch" json:"display_inch"`
	StorageGB       int        `db:"storage_gb" json:"storage_gb"`
	RAMGB           int        `db:"ram_gb" json:"ram_gb"`
	Processor       string     `db:"processor" json:"processor"`
	ColorOptions    string     `db:"color_options" json:"color_options"`
	WeightG         int        `db:"weight_g" json:"weight_g"`
}

// SaleRecord is a computed daily sales fact, keyed by its
// (date, product, region, country, channel) tuple.
type SaleRecord struct {
	Date          time.Time `db:"date" json:"date"`
	ProductID     string    `db:"product_id" json:"product_id"`
	Region        string    `db:"region" json:"region"`
	Country       string    `db:"country" json:"country"`
	Channel       string    `db:"channel" json:"channel"`
	ChannelType   string    `db:"channel_type" json:"channel_type"`
	UnitsSold     int       `db:"units_sold" json:"units_sold"`
	RevenueUSD    float64   `db:"revenue_usd" json:"revenue_usd"`
	UnitsReturned int       `db:"units_returned" json:"units_returned"`
	ReturnRate    float64   `db:"return_rate" json:"return_rate"`
}

// Transaction is a per-customer purchase event sampled from a sales fact.
type Transaction struct {
	TransactionID       string    `db:"transaction_id" json:"transaction_id"`
	TransactionDatetime time.Time `db:"transaction_datetime" json:"transaction_datetime"`
	CustomerID          string    `db:"customer_id" json:"customer_id"`
	ProductID           string    `db:"product_id" json:"product_id"`
	PricePaid           float64   `db:"price_paid" json:"price_paid"`
	DiscountAmount      float64   `db:"discount_amount" json:"discount_amount"`
	Channel             string    `db:"channel" json:"channel"`
	Region              string    `db:"region" json:"region"`
	Country             string    `db:"country" json:"country"`
	CustomerSegment     string    `db:"customer_segment" json:"customer_segment"`
	AgeGroup            string    `db:"age_group" json:"age_group"`
	IncomeLevel         string    `db:"income_level" json:"income_level"`
	IsRepeatCustomer    bool      `db:"is_repeat_customer" json:"is_repeat_customer"`
	PreviousProductID   string    `db:"previous_product_id" json:"previous_product_id"`
}

// Campaign is a per-product marketing campaign fact.
type Campaign struct {
	CampaignID     string    `db:"campaign_id" json:"campaign_id"`
	CampaignName   string    `db:"campaign_name" json:"campaign_name"`
	StartDate      time.Time `db:"start_date" json:"start_date"`
	EndDate        time.Time `db:"end_date" json:"end_date"`
	ProductID      string    `db:"product_id" json:"product_id"`
	Channel        string    `db:"channel" json:"channel"`
	Region         string    `db:"region" json:"region"`
	BudgetUSD      int       `db:"budget_usd" json:"budget_usd"`
	Impressions    int       `db:"impressions" json:"impressions"`
	Clicks         int       `db:"clicks" json:"clicks"`
	CTR            float64   `db:"ctr" json:"ctr"`
	Conversions    int       `db:"conversions" json:"conversions"`
	ConversionRate float64   `db:"conversion_rate" json:"conversion_rate"`
	RevenueUSD     float64   `db:"revenue_usd" json:"revenue_usd"`
	ROI            float64   `db:"roi" json:"roi"`
}

// Engagement holds a social post's interaction counts.
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// SocialPost is a per-product social media post record.
type SocialPost struct {
	PostID           string     `json:"post_id"`
	Timestamp        string     `json:"timestamp"`
	Platform         string     `json:"platform"`
	UserID           string     `json:"user_id"`
	UserFollowers    int        `json:"user_followers"`
	Text             string     `json:"text"`
	ProductMentioned string     `json:"product_mentioned"`
	Hashtags         []string   `json:"hashtags"`
	Sentiment        string     `json:"sentiment"`
	SentimentScore   float64    `json:"sentiment_score"`
	Engagement       Engagement `json:"engagement"`
	Language         string     `json:"language"`
}

// ReviewerProfile summarizes a reviewer's history.
type ReviewerProfile struct {
	TotalReviews      int `json:"total_reviews"`
	VerifiedPurchases int `json:"verified_purchases"`
}

// Variant is the purchased product configuration named in a review.
type Variant struct {
	Color   string `json:"color"`
	Storage string `json:"storage"`
}

// Review is an Amazon-style product review sampled from a transaction.
type Review struct {
	ReviewID         string          `json:"review_id"`
	ProductID        string          `json:"product_id"`
	CustomerID       string          `json:"customer_id"`
	ReviewDatetime   string          `json:"review_datetime"`
	PurchaseDatetime string          `json:"purchase_datetime"`
	VerifiedPurchase bool            `json:"verified_purchase"`
	Rating           int             `json:"rating"`
	ReviewTitle      string          `json:"review_title"`
	ReviewText       string          `json:"review_text"`
	Pros             []string        `json:"pros"`
	Cons             []string        `json:"cons"`
	HelpfulVotes     int             `json:"helpful_votes"`
	TotalVotes       int             `json:"total_votes"`
	ReviewerProfile  ReviewerProfile `json:"reviewer_profile"`
	Variant          Variant         `json:"variant"`
}

// formatNumber renders a float without trailing zeros so CSV cells hold
// plain numbers (599 rather than 599.00).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
