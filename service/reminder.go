package service

import (
	"time"

	"budget/models"
)

// Reminder 即将到期的付款提醒
type Reminder struct {
	Name      string  `json:"name" example:"房租"`
	Amount    float64 `json:"amount" example:"3000.00"`
	DueInDays int     `json:"due_in_days" example:"3"` // 距离扣款日还有几天，0 表示今天到期
}

// UpcomingReminders 计算本月内即将到期的周期性付款。
// 对每笔付款，以（今天的年、今天的月、due_day）构造到期日，
// 剩余天数在 [0, remind_days_before] 区间内才会出现在结果中。
// 只看本月，不跨月：月底时下月初到期的付款不会被提醒。
func UpcomingReminders(today time.Time, payments []models.RecurringPayment) []Reminder {
	reminders := make([]Reminder, 0)

	year, month, day := today.Date()
	for _, p := range payments {
		dueDay := p.DueDay
		// due_day 超过当月天数时收到月末（如 2 月的 31 号按 2 月最后一天算），
		// 避免 time.Date 自动进位到下个月
		if last := lastDayOfMonth(year, month); dueDay > last {
			dueDay = last
		}
		daysLeft := dueDay - day
		if daysLeft >= 0 && daysLeft <= p.RemindDaysBefore {
			reminders = append(reminders, Reminder{
				Name:      p.Name,
				Amount:    p.Amount,
				DueInDays: daysLeft,
			})
		}
	}

	return reminders
}

// lastDayOfMonth 获取指定年月的最后一天
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
