package api

import (
	"strings"

	"budget/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler 消费类别处理器
type CategoryHandler struct {
	db *gorm.DB
}

// NewCategoryHandler 创建消费类别处理器
func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

// CreateCategoryRequest 创建类别请求
type CreateCategoryRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=50" example:"餐饮"`
	Bucket string `json:"bucket" binding:"required" example:"Needs"` // Wants / Needs / Savings
}

// Create 创建消费类别
// @Summary 创建消费类别
// @Description 创建一个新的消费类别并指定其预算分类桶，类别名称不能重复
// @Tags 消费类别
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "参数错误或类别名称已存在"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "名称不能为空")
		return
	}

	if !models.IsValidBucket(req.Bucket) {
		BadRequest(c, "分类桶错误，应为 Wants、Needs 或 Savings")
		return
	}

	// 名称唯一性
	var existing models.Category
	if err := h.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		BadRequest(c, "类别名称已存在")
		return
	}

	cat := models.Category{Name: req.Name, Bucket: req.Bucket}
	if err := h.db.Create(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", cat)
}

// List 获取消费类别列表
// @Summary 获取消费类别列表
// @Description 获取所有消费类别及其预算分类桶
// @Tags 消费类别
// @Produce json
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var list []models.Category
	if err := h.db.Order("id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, list)
}
