package service

import (
	"math"
	"strings"

	"budget/models"
)

// MonthInsight 月度收支分析结果
type MonthInsight struct {
	TotalIncome  float64 `json:"total_income" example:"10000.00"` // 当月收入总和
	TotalExpense float64 `json:"total_expense" example:"6500.00"` // 当月支出总和
	Wants        float64 `json:"wants" example:"2000.00"`         // Wants 桶支出总和
	Needs        float64 `json:"needs" example:"3500.00"`         // Needs 桶支出总和
	Savings      float64 `json:"savings" example:"1000.00"`       // Savings 桶支出总和
	WantsPct     float64 `json:"wants_pct" example:"20.00"`       // Wants 占收入百分比
	NeedsPct     float64 `json:"needs_pct" example:"35.00"`       // Needs 占收入百分比
	SavingsPct   float64 `json:"savings_pct" example:"10.00"`     // Savings 占收入百分比
}

// ComputeMonthInsight 计算指定月份（格式 2006-01）的收支汇总和三桶占比。
// 占比按 桶内支出/当月收入*100 计算，保留两位小数；
// 收入为 0 时三个占比均为 0，不报错。三个占比相互独立，总和不一定是 100。
func ComputeMonthInsight(month string, entries []models.Entry) MonthInsight {
	var insight MonthInsight

	prefix := month + "-"
	for _, e := range entries {
		if !strings.HasPrefix(e.Date, prefix) {
			continue
		}
		switch e.EntryType {
		case models.EntryTypeIncome:
			insight.TotalIncome += e.Amount
		case models.EntryTypeExpense:
			insight.TotalExpense += e.Amount
			switch e.Bucket {
			case models.BucketWants:
				insight.Wants += e.Amount
			case models.BucketNeeds:
				insight.Needs += e.Amount
			case models.BucketSavings:
				insight.Savings += e.Amount
			}
		}
	}

	if insight.TotalIncome > 0 {
		insight.WantsPct = round2(insight.Wants / insight.TotalIncome * 100)
		insight.NeedsPct = round2(insight.Needs / insight.TotalIncome * 100)
		insight.SavingsPct = round2(insight.Savings / insight.TotalIncome * 100)
	}

	return insight
}

// round2 四舍五入保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
