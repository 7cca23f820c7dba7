package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/danyol08/transaction/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSVRoundTrip(t *testing.T) {
	day, _ := time.Parse(model.DateLayout, "2024-05-01")
	rows := []model.Transaction{
		{
			ID:              uuid.New(),
			CustomerName:    `Ana "Annie" Cruz`, // embedded quotes must survive
			Service:         "Gel Mani, deluxe", // embedded comma must survive
			TechnicianName:  "Liz",
			TechnicianType:  model.TechNails,
			Addons:          "nail art\nfoot spa", // embedded newline must survive
			DateOfService:   day,
			Amount:          decimal.RequireFromString("512.50"),
			CashierUsername: "cashier1",
			CreatedAt:       time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:              uuid.New(),
			CustomerName:    "Bob",
			Service:         "Lash Lift",
			TechnicianName:  "Mo",
			TechnicianType:  model.TechLashes,
			DateOfService:   day,
			Amount:          decimal.RequireFromString("300.005"),
			CashierUsername: "cashier2",
			CreatedAt:       time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
		},
	}

	data, err := ToCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one record per row")

	assert.Equal(t, csvHeader, records[0])

	for i, tx := range rows {
		rec := records[i+1]
		assert.Equal(t, tx.ID.String(), rec[0])
		assert.Equal(t, tx.CustomerName, rec[1])
		assert.Equal(t, tx.Service, rec[2])
		assert.Equal(t, tx.TechnicianName, rec[3])
		assert.Equal(t, string(tx.TechnicianType), rec[4])
		assert.Equal(t, tx.Addons, rec[5])
		assert.Equal(t, "2024-05-01", rec[6])
		assert.Equal(t, tx.Amount.String(), rec[7], "full decimal precision, no currency formatting")
		assert.Equal(t, tx.CashierUsername, rec[8])
	}
}

func TestToCSVEmpty(t *testing.T) {
	data, err := ToCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, csvHeader, records[0])
}

func TestDailyCSVFilename(t *testing.T) {
	assert.Equal(t, "sales_2024-05-01_all.csv",
		DailyCSVFilename("2024-05-01", CashierFilter{Mode: AllCashiers}))
	assert.Equal(t, "sales_2024-05-01_cashier1.csv",
		DailyCSVFilename("2024-05-01", CashierFilter{Mode: SpecificUsername, Username: "cashier1"}))
	assert.Equal(t, "sales_2024-05-01_cashier2.csv",
		DailyCSVFilename("2024-05-01", CashierFilter{Mode: CurrentCashierOnly, Username: "cashier2"}))
}
