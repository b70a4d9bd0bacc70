package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRecord(t *testing.T) {
	discontinue := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	p := Product{
		ProductID:       "PRIME-23",
		ProductName:     "Nova Prime 23",
		ProductLine:     "Prime",
		Series:          "23",
		LaunchDate:      time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		DiscontinueDate: &discontinue,
		PriceUSD:        1099,
		CameraMP:        200,
		BatteryMAh:      5200,
		DisplayInch:     6.8,
		StorageGB:       512,
		RAMGB:           12,
		Processor:       "Snapdragon 8 Gen 3",
		ColorOptions:    "Graphite,Silver,Gold",
		WeightG:         201,
	}

	row := p.Record()
	require.Len(t, row, len(ProductHeaders))
	assert.Equal(t, "PRIME-23", row[0])
	assert.Equal(t, "2022-01-01", row[4])
	assert.Equal(t, "2024-07-01", row[5])
	assert.Equal(t, "1099", row[6])
	assert.Equal(t, "6.8", row[9])
}

func TestProductRecordCurrentModel(t *testing.T) {
	p := Product{LaunchDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.Empty(t, p.Record()[5])
}

func TestTransactionRecord(t *testing.T) {
	txn := Transaction{
		TransactionID:       "TXN-00000042",
		TransactionDatetime: time.Date(2023, 3, 14, 15, 9, 26, 0, time.UTC),
		CustomerID:          "CUST-123456",
		ProductID:           "LITE-23",
		PricePaid:           359.1,
		DiscountAmount:      39.9,
		Channel:             "Amazon",
		Region:              "Europe",
		Country:             "Germany",
		CustomerSegment:     "Budget Conscious",
		AgeGroup:            "25-34",
		IncomeLevel:         "Medium",
		IsRepeatCustomer:    true,
	}

	row := txn.Record()
	require.Len(t, row, len(TransactionHeaders))
	assert.Equal(t, "2023-03-14T15:09:26", row[1])
	assert.Equal(t, "359.1", row[4])
	assert.Equal(t, "True", row[12])
	assert.Empty(t, row[13])
}

func TestSaleRecordRow(t *testing.T) {
	s := SaleRecord{
		Date:          time.Date(2023, 11, 24, 0, 0, 0, 0, time.UTC),
		ProductID:     "MAX-24",
		Region:        "North America",
		Country:       "USA",
		Channel:       "Amazon",
		ChannelType:   ChannelTypeOnline,
		UnitsSold:     14,
		RevenueUSD:    13986,
		UnitsReturned: 0,
		ReturnRate:    0.0271,
	}

	row := s.Record()
	require.Len(t, row, len(SaleHeaders))
	assert.Equal(t, "2023-11-24", row[0])
	assert.Equal(t, "14", row[6])
	assert.Equal(t, "13986", row[7])
	assert.Equal(t, "0.0271", row[9])
}

func TestCampaignRecord(t *testing.T) {
	c := Campaign{
		CampaignID:   "CMP-00007",
		CampaignName: "Nova Max 24 TV Campaign",
		StartDate:    time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		ProductID:    "MAX-24",
		Channel:      "TV",
		Region:       "Asia Pacific",
		BudgetUSD:    500000,
		Impressions:  20000000,
		RevenueUSD:   612345.67,
		ROI:          0.22,
	}

	row := c.Record()
	require.Len(t, row, len(CampaignHeaders))
	assert.Equal(t, "CMP-00007", row[0])
	assert.Equal(t, "0", row[9])
	assert.Equal(t, "612345.67", row[13])
	assert.Equal(t, "0.22", row[14])
}
