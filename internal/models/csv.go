package models

import (
	"strconv"

	"novagen/internal/dates"
)

// Column headers for the tabular datasets, in output order.
var (
	ProductHeaders = []string{
		"product_id", "product_name", "product_line", "series",
		"launch_date", "discontinue_date", "price_usd", "camera_mp",
		"battery_mah", "display_inch", "storage_gb", "ram_gb",
		"processor", "color_options", "weight_g",
	}

	SaleHeaders = []string{
		"date", "product_id", "region", "country", "channel",
		"channel_type", "units_sold", "revenue_usd", "units_returned",
		"return_rate",
	}

	TransactionHeaders = []string{
		"transaction_id", "transaction_datetime", "customer_id",
		"product_id", "price_paid", "discount_amount", "channel",
		"region", "country", "customer_segment", "age_group",
		"income_level", "is_repeat_customer", "previous_product_id",
	}

	CampaignHeaders = []string{
		"campaign_id", "campaign_name", "start_date", "end_date",
		"product_id", "channel", "region", "budget_usd", "impressions",
		"clicks", "ctr", "conversions", "conversion_rate", "revenue_usd",
		"roi",
	}
)

// Record returns the product as a CSV row matching ProductHeaders.
func (p Product) Record() []string {
	discontinue := ""
	if p.DiscontinueDate != nil {
		discontinue = dates.Format(*p.DiscontinueDate)
	}
	return []string{
		p.ProductID,
		p.ProductName,
		p.ProductLine,
		p.Series,
		dates.Format(p.LaunchDate),
		discontinue,
		formatNumber(p.PriceUSD),
		strconv.Itoa(p.CameraMP),
		strconv.Itoa(p.BatteryMAh),
		formatNumber(p.DisplayInch),
		strconv.Itoa(p.StorageGB),
		strconv.Itoa(p.RAMGB),
		p.Processor,
		p.ColorOptions,
		strconv.Itoa(p.WeightG),
	}
}

// Record returns the sales fact as a CSV row matching SaleHeaders.
func (s SaleRecord) Record() []string {
	return []string{
		dates.Format(s.Date),
		s.ProductID,
		s.Region,
		s.Country,
		s.Channel,
		s.ChannelType,
		strconv.Itoa(s.UnitsSold),
		formatNumber(s.RevenueUSD),
		strconv.Itoa(s.UnitsReturned),
		formatNumber(s.ReturnRate),
	}
}

// Record returns the transaction as a CSV row matching TransactionHeaders.
func (t Transaction) Record() []string {
	return []string{
		t.TransactionID,
		t.TransactionDatetime.Format(DatetimeLayout),
		t.CustomerID,
		t.ProductID,
		formatNumber(t.PricePaid),
		formatNumber(t.DiscountAmount),
		t.Channel,
		t.Region,
		t.Country,
		t.CustomerSegment,
		t.AgeGroup,
		t.IncomeLevel,
		formatBool(t.IsRepeatCustomer),
		t.PreviousProductID,
	}
}

// Record returns the campaign as a CSV row matching CampaignHeaders.
func (c Campaign) Record() []string {
	return []string{
		c.CampaignID,
		c.CampaignName,
		dates.Format(c.StartDate),
		dates.Format(c.EndDate),
		c.ProductID,
		c.Channel,
		c.Region,
		strconv.Itoa(c.BudgetUSD),
		strconv.Itoa(c.Impressions),
		strconv.Itoa(c.Clicks),
		formatNumber(c.CTR),
		strconv.Itoa(c.Conversions),
		formatNumber(c.ConversionRate),
		formatNumber(c.RevenueUSD),
		formatNumber(c.ROI),
	}
}
