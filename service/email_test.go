package service

import (
	"testing"

	"budget/config"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestGenerateReminderDigestBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateReminderDigestBody([]Reminder{
		{Name: "房租", Amount: 3000, DueInDays: 3},
		{Name: "视频会员", Amount: 25, DueInDays: 0},
	})

	assert.Contains(t, body, "房租")
	assert.Contains(t, body, "¥3000.00")
	assert.Contains(t, body, "3 天后")
	assert.Contains(t, body, "视频会员")
	assert.Contains(t, body, "今天")
	assert.Contains(t, body, "预算管家")
}

func TestSendReminderDigest_Disabled(t *testing.T) {
	// 未启用邮件服务时直接报错，不尝试连接 SMTP
	s := newTestEmailService()
	err := s.SendReminderDigest("user@example.com", []Reminder{
		{Name: "房租", Amount: 3000, DueInDays: 3},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "邮件服务未启用")
}

func TestSendReminderDigest_EmptyReminders(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: true})
	err := s.SendReminderDigest("user@example.com", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "无需发送")
}
