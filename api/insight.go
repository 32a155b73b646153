package api

import (
	"time"

	"budget/models"
	"budget/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InsightHandler 月度分析处理器
type InsightHandler struct {
	db *gorm.DB
}

// NewInsightHandler 创建月度分析处理器
func NewInsightHandler(db *gorm.DB) *InsightHandler {
	return &InsightHandler{db: db}
}

// Get 获取月度收支分析
// @Summary 获取月度收支分析
// @Description 统计指定月份的收入、支出总和以及 Wants/Needs/Savings 三个分类桶的支出金额和占收入百分比。收入为 0 时三个占比均为 0。
// @Tags 统计
// @Produce json
// @Param month path string true "月份 (2025-07)"
// @Success 200 {object} Response{data=service.MonthInsight} "获取成功"
// @Failure 400 {object} Response "月份格式错误"
// @Router /api/v1/insights/{month} [get]
func (h *InsightHandler) Get(c *gin.Context) {
	month := c.Param("month")
	if _, err := time.Parse("2006-01", month); err != nil {
		BadRequest(c, "月份格式错误，应为: 2006-01")
		return
	}

	var entries []models.Entry
	if err := h.db.Where("date LIKE ?", month+"-%").Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, service.ComputeMonthInsight(month, entries))
}
