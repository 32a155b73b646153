package service

import (
	"fmt"
	"strings"

	"budget/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendReminderDigest 发送付款提醒汇总邮件
func (s *EmailService) SendReminderDigest(toEmail string, reminders []Reminder) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 EMAIL_ENABLED=true")
	}
	if len(reminders) == 0 {
		return fmt.Errorf("没有即将到期的付款，无需发送提醒")
	}

	subject := fmt.Sprintf("【预算管家】您有 %d 笔付款即将到期", len(reminders))
	body := s.generateReminderDigestBody(reminders)

	return s.sendEmail(toEmail, subject, body)
}

// generateReminderDigestBody 生成提醒邮件内容
func (s *EmailService) generateReminderDigestBody(reminders []Reminder) string {
	var rows strings.Builder
	for _, r := range reminders {
		dueText := fmt.Sprintf("%d 天后", r.DueInDays)
		if r.DueInDays == 0 {
			dueText = "今天"
		}
		rows.WriteString(fmt.Sprintf(`
            <tr>
                <td>%s</td>
                <td class="amount">¥%.2f</td>
                <td>%s</td>
            </tr>`, r.Name, r.Amount, dueText))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        th { background: #f8f9fa; color: #333; padding: 12px; text-align: left; border-bottom: 2px solid #e9ecef; }
        td { padding: 12px; border-bottom: 1px solid #e9ecef; color: #333; }
        .amount { color: #dc3545; font-weight: 600; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💰 预算管家</h1>
        </div>
        <div class="content">
            <p>您好！以下付款即将到期，请注意安排：</p>
            <table>
                <tr><th>名称</th><th>金额</th><th>到期时间</th></tr>%s
            </table>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© 预算管家 - 您的个人财务管理助手</p>
        </div>
    </div>
</body>
</html>
`, rows.String())
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用")
	}

	subject := "【预算管家】邮件配置测试"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ 邮件配置成功</h2>
    <p>如果您收到这封邮件，说明邮件服务配置正确。</p>
    <p style="color: #666;">—— 预算管家</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}
