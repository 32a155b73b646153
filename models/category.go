package models

import "time"

// Category 消费类别（带预算分类桶的参考列表，与消费记录不做外键关联）
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Bucket    string    `json:"bucket" gorm:"size:10;not null"` // Wants / Needs / Savings
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
