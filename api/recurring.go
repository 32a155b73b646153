package api

import (
	"strings"
	"time"

	"budget/config"
	"budget/models"
	"budget/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RecurringHandler 周期性付款处理器
type RecurringHandler struct {
	db    *gorm.DB
	email *service.EmailService
	cfg   *config.Config
}

// NewRecurringHandler 创建周期性付款处理器
func NewRecurringHandler(db *gorm.DB, cfg *config.Config) *RecurringHandler {
	return &RecurringHandler{
		db:    db,
		email: service.NewEmailService(&cfg.Email),
		cfg:   cfg,
	}
}

// CreateRecurringPaymentRequest 创建周期性付款请求
type CreateRecurringPaymentRequest struct {
	Name             string  `json:"name" binding:"required,min=1,max=50" example:"房租"`
	Amount           float64 `json:"amount" binding:"gte=0" example:"3000.00"`
	DueDay           int     `json:"due_day" binding:"required,min=1,max=31" example:"10"` // 每月扣款日
	RemindDaysBefore int     `json:"remind_days_before" binding:"gte=0" example:"5"`       // 提前几天提醒
}

// Create 创建周期性付款
// @Summary 创建周期性付款
// @Description 创建一笔每月固定支出（房租、订阅等），扣款日为每月的 due_day 号（1-31），到期前 remind_days_before 天开始提醒
// @Tags 周期性付款
// @Accept json
// @Produce json
// @Param request body CreateRecurringPaymentRequest true "周期性付款信息"
// @Success 200 {object} Response{data=models.RecurringPayment} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/recurring-payments [post]
func (h *RecurringHandler) Create(c *gin.Context) {
	var req CreateRecurringPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "名称不能为空")
		return
	}

	payment := models.RecurringPayment{
		Name:             req.Name,
		Amount:           req.Amount,
		DueDay:           req.DueDay,
		RemindDaysBefore: req.RemindDaysBefore,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建周期性付款失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", payment)
}

// List 获取周期性付款列表
// @Summary 获取周期性付款列表
// @Description 获取所有周期性付款
// @Tags 周期性付款
// @Produce json
// @Success 200 {object} Response{data=[]models.RecurringPayment} "获取成功"
// @Router /api/v1/recurring-payments [get]
func (h *RecurringHandler) List(c *gin.Context) {
	var payments []models.RecurringPayment
	if err := h.db.Order("due_day ASC, id ASC").Find(&payments).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, payments)
}

// UpcomingReminders 获取即将到期的付款提醒
// @Summary 获取即将到期的付款提醒
// @Description 返回本月内处于提醒窗口（到期前 0 到 remind_days_before 天）的周期性付款。不跨月提醒。
// @Tags 周期性付款
// @Produce json
// @Success 200 {object} Response{data=[]service.Reminder} "获取成功"
// @Router /api/v1/reminders/upcoming [get]
func (h *RecurringHandler) UpcomingReminders(c *gin.Context) {
	var payments []models.RecurringPayment
	if err := h.db.Find(&payments).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, service.UpcomingReminders(time.Now(), payments))
}

// NotifyReminders 发送付款提醒邮件
// @Summary 发送付款提醒邮件
// @Description 计算即将到期的付款并发送汇总邮件到配置的收件人。邮件服务未启用或没有待提醒付款时返回错误。
// @Tags 周期性付款
// @Produce json
// @Success 200 {object} Response "发送成功"
// @Failure 400 {object} Response "邮件服务未启用或没有待提醒付款"
// @Router /api/v1/reminders/notify [post]
func (h *RecurringHandler) NotifyReminders(c *gin.Context) {
	var payments []models.RecurringPayment
	if err := h.db.Find(&payments).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	reminders := service.UpcomingReminders(time.Now(), payments)
	if err := h.email.SendReminderDigest(h.cfg.Email.To, reminders); err != nil {
		BadRequest(c, err.Error())
		return
	}

	SuccessWithMessage(c, "提醒邮件已发送", gin.H{"count": len(reminders)})
}
