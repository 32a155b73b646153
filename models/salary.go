package models

import "time"

// Salary 月度工资模型，每个月份最多一条记录，重复设置时覆盖金额
type Salary struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Month     string    `json:"month" gorm:"size:7;not null;uniqueIndex"` // 格式: 2006-01
	Amount    float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Salary) TableName() string {
	return "salaries"
}
