package models

import (
	"time"

	"gorm.io/gorm"
)

// 收支记录类型
const (
	EntryTypeIncome  = "Income"  // 收入
	EntryTypeExpense = "Expense" // 支出
)

// 支出预算桶
const (
	BucketWants   = "Wants"   // 想要
	BucketNeeds   = "Needs"   // 必要
	BucketSavings = "Savings" // 储蓄
)

// Entry 收支记录模型（统一的收入/支出流水）
type Entry struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Date        string         `json:"date" gorm:"size:10;not null;index"` // 格式: 2006-01-02
	EntryType   string         `json:"entry_type" gorm:"size:10;not null"` // Income / Expense
	Bucket      string         `json:"bucket" gorm:"size:10"`              // 仅支出需要: Wants / Needs / Savings
	Amount      float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description string         `json:"description" gorm:"size:255"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Entry) TableName() string {
	return "entries"
}

// IsValidEntryType 校验收支类型是否合法
func IsValidEntryType(entryType string) bool {
	return entryType == EntryTypeIncome || entryType == EntryTypeExpense
}

// IsValidBucket 校验预算桶是否合法
func IsValidBucket(bucket string) bool {
	switch bucket {
	case BucketWants, BucketNeeds, BucketSavings:
		return true
	}
	return false
}
