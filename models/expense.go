package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense 消费记录模型（带自定义类别的支出流水）
type Expense struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Date        string         `json:"date" gorm:"size:10;not null;index"` // 格式: 2006-01-02
	Category    string         `json:"category" gorm:"size:50;not null"`   // 如: 餐饮、房租
	Bucket      string         `json:"bucket" gorm:"size:10;not null"`     // Wants / Needs / Savings
	Amount      float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description string         `json:"description" gorm:"size:255"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}
