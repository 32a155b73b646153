package api

import (
	"errors"
	"time"

	"budget/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SalaryHandler 月度工资处理器
type SalaryHandler struct {
	db *gorm.DB
}

// NewSalaryHandler 创建月度工资处理器
func NewSalaryHandler(db *gorm.DB) *SalaryHandler {
	return &SalaryHandler{db: db}
}

// SetSalaryRequest 设置月度工资请求
type SetSalaryRequest struct {
	Month  string  `json:"month" binding:"required" example:"2025-07"` // 格式: 2006-01
	Amount float64 `json:"amount" binding:"gte=0" example:"10000.00"`
}

// Set 设置月度工资
// @Summary 设置月度工资
// @Description 设置指定月份的工资。每个月份最多一条记录，重复设置时覆盖金额（upsert）。
// @Tags 工资
// @Accept json
// @Produce json
// @Param request body SetSalaryRequest true "工资信息"
// @Success 200 {object} Response{data=models.Salary} "设置成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/salary [post]
func (h *SalaryHandler) Set(c *gin.Context) {
	var req SetSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if _, err := time.Parse("2006-01", req.Month); err != nil {
		BadRequest(c, "月份格式错误，应为: 2006-01")
		return
	}

	// 按月份 upsert: 已存在则覆盖金额，否则新建
	var salary models.Salary
	err := h.db.Where("month = ?", req.Month).First(&salary).Error
	switch {
	case err == nil:
		salary.Amount = req.Amount
		if err := h.db.Model(&salary).Update("amount", req.Amount).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新工资失败"))
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		salary = models.Salary{Month: req.Month, Amount: req.Amount}
		if err := h.db.Create(&salary).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "设置工资失败"))
			return
		}
	default:
		InternalError(c, SafeErrorMessage(err, "查询工资失败"))
		return
	}

	SuccessWithMessage(c, "设置成功", salary)
}

// Get 获取月度工资
// @Summary 获取月度工资
// @Description 获取指定月份的工资记录
// @Tags 工资
// @Produce json
// @Param month path string true "月份 (2025-07)"
// @Success 200 {object} Response{data=models.Salary} "获取成功"
// @Failure 400 {object} Response "月份格式错误"
// @Failure 404 {object} Response "该月份未设置工资"
// @Router /api/v1/salary/{month} [get]
func (h *SalaryHandler) Get(c *gin.Context) {
	month := c.Param("month")
	if _, err := time.Parse("2006-01", month); err != nil {
		BadRequest(c, "月份格式错误，应为: 2006-01")
		return
	}

	var salary models.Salary
	if err := h.db.Where("month = ?", month).First(&salary).Error; err != nil {
		NotFound(c, "该月份未设置工资")
		return
	}

	Success(c, salary)
}
