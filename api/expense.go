package api

import (
	"strconv"
	"strings"
	"time"

	"budget/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct {
	db *gorm.DB
}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{db: db}
}

// CreateExpenseRequest 创建消费记录请求
type CreateExpenseRequest struct {
	Category    string  `json:"category" binding:"required" example:"餐饮"`
	Bucket      string  `json:"bucket" binding:"required" example:"Needs"` // Wants / Needs / Savings
	Amount      float64 `json:"amount" binding:"gte=0" example:"99.99"`
	Description string  `json:"description" example:"午餐"`
	Date        string  `json:"date" example:"2025-07-01"` // 不传则默认今天
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 创建一条新的消费记录。不传日期时默认今天。类别为自由文本，不强制要求已在类别表中维护。
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "消费记录信息"
// @Success 200 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		BadRequest(c, "类别不能为空")
		return
	}

	if !models.IsValidBucket(req.Bucket) {
		BadRequest(c, "分类桶错误，应为 Wants、Needs 或 Savings")
		return
	}

	// 日期可选，默认今天
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	expense := models.Expense{
		Date:        date,
		Category:    req.Category,
		Bucket:      req.Bucket,
		Amount:      req.Amount,
		Description: req.Description,
	}

	if err := h.db.Create(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建消费记录失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", expense)
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 获取全部消费记录，按日期倒序排列
// @Tags 消费记录
// @Produce json
// @Success 200 {object} Response{data=[]models.Expense} "获取成功"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var expenses []models.Expense
	if err := h.db.Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, expenses)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 删除指定的消费记录
// @Tags 消费记录
// @Produce json
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var expense models.Expense
	if err := h.db.First(&expense, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := h.db.Delete(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
