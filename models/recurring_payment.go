package models

import "time"

// RecurringPayment 周期性付款模型（房租、订阅等每月固定支出）
type RecurringPayment struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"size:50;not null"`
	Amount           float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	DueDay           int       `json:"due_day" gorm:"not null"`            // 每月扣款日 1-31
	RemindDaysBefore int       `json:"remind_days_before" gorm:"not null"` // 提前几天提醒
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (RecurringPayment) TableName() string {
	return "recurring_payments"
}
