package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"budget/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recurringRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "amount", "due_day", "remind_days_before", "created_at", "updated_at"})
}

func newTestConfig() *config.Config {
	return &config.Config{}
}

func TestRecurringHandler_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `recurring_payments`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/recurring-payments", NewRecurringHandler(db, newTestConfig()).Create)

	body := `{"name":"房租","amount":3000,"due_day":10,"remind_days_before":5}`
	req := httptest.NewRequest("POST", "/recurring-payments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecurringHandler_Create_InvalidDueDay(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/recurring-payments", NewRecurringHandler(db, newTestConfig()).Create)

	// 扣款日必须在 1-31 之间
	for _, body := range []string{
		`{"name":"房租","amount":3000,"due_day":0,"remind_days_before":5}`,
		`{"name":"房租","amount":3000,"due_day":32,"remind_days_before":5}`,
	} {
		req := httptest.NewRequest("POST", "/recurring-payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	}
}

func TestRecurringHandler_List(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `recurring_payments`").
		WillReturnRows(recurringRows().
			AddRow(1, "水电费", 300.0, 8, 3, now, now).
			AddRow(2, "房租", 3000.0, 10, 5, now, now))

	router := gin.New()
	router.GET("/recurring-payments", NewRecurringHandler(db, newTestConfig()).List)

	req := httptest.NewRequest("GET", "/recurring-payments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecurringHandler_UpcomingReminders(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 扣款日设为今天，剩余 0 天，必然落在提醒窗口内
	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `recurring_payments`").
		WillReturnRows(recurringRows().
			AddRow(1, "房租", 3000.0, now.Day(), 5, now, now))

	router := gin.New()
	router.GET("/reminders/upcoming", NewRecurringHandler(db, newTestConfig()).UpcomingReminders)

	req := httptest.NewRequest("GET", "/reminders/upcoming", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []struct {
			Name      string  `json:"name"`
			Amount    float64 `json:"amount"`
			DueInDays int     `json:"due_in_days"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "房租", resp.Data[0].Name)
	assert.Equal(t, 0, resp.Data[0].DueInDays)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecurringHandler_NotifyReminders_EmailDisabled(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `recurring_payments`").
		WillReturnRows(recurringRows().
			AddRow(1, "房租", 3000.0, now.Day(), 5, now, now))

	router := gin.New()
	router.POST("/reminders/notify", NewRecurringHandler(db, newTestConfig()).NotifyReminders)

	req := httptest.NewRequest("POST", "/reminders/notify", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// 邮件服务未启用时返回 400 而不是尝试连接 SMTP
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "邮件服务未启用")
	require.NoError(t, mock.ExpectationsWereMet())
}
