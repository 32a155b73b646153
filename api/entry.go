package api

import (
	"strconv"
	"time"

	"budget/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EntryHandler 收支记录处理器
type EntryHandler struct {
	db *gorm.DB
}

// NewEntryHandler 创建收支记录处理器
func NewEntryHandler(db *gorm.DB) *EntryHandler {
	return &EntryHandler{db: db}
}

// CreateEntryRequest 创建收支记录请求
type CreateEntryRequest struct {
	Date        string  `json:"date" binding:"required" example:"2025-07-01"`
	EntryType   string  `json:"entry_type" binding:"required" example:"Expense"` // Income / Expense
	Bucket      string  `json:"bucket" example:"Wants"`                          // 支出必填: Wants / Needs / Savings
	Amount      float64 `json:"amount" binding:"gte=0" example:"99.99"`
	Description string  `json:"description" example:"周末看电影"`
}

// Create 创建收支记录
// @Summary 创建收支记录
// @Description 创建一条收入或支出记录。支出记录必须指定分类桶（Wants/Needs/Savings），收入记录忽略分类桶。记录创建后不可修改，只能删除。
// @Tags 收支记录
// @Accept json
// @Produce json
// @Param request body CreateEntryRequest true "收支记录信息"
// @Success 200 {object} Response{data=models.Entry} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/entries [post]
func (h *EntryHandler) Create(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 校验日期
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	// 校验记录类型
	if !models.IsValidEntryType(req.EntryType) {
		BadRequest(c, "记录类型错误，应为 Income 或 Expense")
		return
	}

	// 支出必须指定合法的分类桶，收入忽略分类桶
	bucket := ""
	if req.EntryType == models.EntryTypeExpense {
		if !models.IsValidBucket(req.Bucket) {
			BadRequest(c, "支出记录必须指定分类桶: Wants、Needs 或 Savings")
			return
		}
		bucket = req.Bucket
	}

	entry := models.Entry{
		Date:        req.Date,
		EntryType:   req.EntryType,
		Bucket:      bucket,
		Amount:      req.Amount,
		Description: req.Description,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建收支记录失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", entry)
}

// List 获取收支记录列表
// @Summary 获取收支记录列表
// @Description 获取全部收支记录，传 month 参数（格式 2025-07）时只返回该月份的记录
// @Tags 收支记录
// @Produce json
// @Param month query string false "月份筛选 (2025-07)"
// @Success 200 {object} Response{data=[]models.Entry} "获取成功"
// @Failure 400 {object} Response "月份格式错误"
// @Router /api/v1/entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	month := c.Query("month")

	query := h.db.Model(&models.Entry{})
	if month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			BadRequest(c, "月份格式错误，应为: 2006-01")
			return
		}
		query = query.Where("date LIKE ?", month+"-%")
	}

	var entries []models.Entry
	if err := query.Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, entries)
}

// Delete 删除收支记录
// @Summary 删除收支记录
// @Description 删除指定的收支记录
// @Tags 收支记录
// @Produce json
// @Param id path int true "收支记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/entries/{id} [delete]
func (h *EntryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var entry models.Entry
	if err := h.db.First(&entry, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := h.db.Delete(&entry).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
