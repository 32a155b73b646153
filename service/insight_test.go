package service

import (
	"testing"

	"budget/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeMonthInsight(t *testing.T) {
	entries := []models.Entry{
		{Date: "2025-07-01", EntryType: models.EntryTypeIncome, Amount: 1000},
		{Date: "2025-07-02", EntryType: models.EntryTypeExpense, Bucket: models.BucketWants, Amount: 300},
		{Date: "2025-07-03", EntryType: models.EntryTypeExpense, Bucket: models.BucketNeeds, Amount: 200},
	}

	insight := ComputeMonthInsight("2025-07", entries)

	assert.Equal(t, 1000.0, insight.TotalIncome)
	assert.Equal(t, 500.0, insight.TotalExpense)
	assert.Equal(t, 300.0, insight.Wants)
	assert.Equal(t, 200.0, insight.Needs)
	assert.Equal(t, 0.0, insight.Savings)
	assert.Equal(t, 30.0, insight.WantsPct)
	assert.Equal(t, 20.0, insight.NeedsPct)
	assert.Equal(t, 0.0, insight.SavingsPct)
}

func TestComputeMonthInsight_ZeroIncome(t *testing.T) {
	// 收入为 0 时三个占比均为 0，不除零报错
	entries := []models.Entry{
		{Date: "2025-07-02", EntryType: models.EntryTypeExpense, Bucket: models.BucketWants, Amount: 300},
		{Date: "2025-07-03", EntryType: models.EntryTypeExpense, Bucket: models.BucketSavings, Amount: 150},
	}

	insight := ComputeMonthInsight("2025-07", entries)

	assert.Equal(t, 0.0, insight.TotalIncome)
	assert.Equal(t, 450.0, insight.TotalExpense)
	assert.Equal(t, 0.0, insight.WantsPct)
	assert.Equal(t, 0.0, insight.NeedsPct)
	assert.Equal(t, 0.0, insight.SavingsPct)
}

func TestComputeMonthInsight_FiltersByMonth(t *testing.T) {
	// 仅统计指定月份的记录，其他月份忽略
	entries := []models.Entry{
		{Date: "2025-07-01", EntryType: models.EntryTypeIncome, Amount: 1000},
		{Date: "2025-06-30", EntryType: models.EntryTypeIncome, Amount: 8888},
		{Date: "2025-08-01", EntryType: models.EntryTypeExpense, Bucket: models.BucketNeeds, Amount: 500},
	}

	insight := ComputeMonthInsight("2025-07", entries)

	assert.Equal(t, 1000.0, insight.TotalIncome)
	assert.Equal(t, 0.0, insight.TotalExpense)
}

func TestComputeMonthInsight_Rounding(t *testing.T) {
	// 占比四舍五入保留两位小数
	entries := []models.Entry{
		{Date: "2025-07-01", EntryType: models.EntryTypeIncome, Amount: 3000},
		{Date: "2025-07-02", EntryType: models.EntryTypeExpense, Bucket: models.BucketWants, Amount: 1000},
	}

	insight := ComputeMonthInsight("2025-07", entries)

	// 1000/3000*100 = 33.333... -> 33.33
	assert.Equal(t, 33.33, insight.WantsPct)
}

func TestComputeMonthInsight_Empty(t *testing.T) {
	insight := ComputeMonthInsight("2025-07", nil)

	assert.Equal(t, 0.0, insight.TotalIncome)
	assert.Equal(t, 0.0, insight.TotalExpense)
	assert.Equal(t, 0.0, insight.WantsPct)
}
