package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB 创建基于 sqlmock 的 gorm 连接，供各处理器测试注入
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock, func() { sqlDB.Close() }
}

func entryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "date", "entry_type", "bucket", "amount", "description", "created_at", "updated_at", "deleted_at"})
}

func TestEntryHandler_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `entries`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/entries", NewEntryHandler(db).Create)

	body := `{"date":"2025-07-02","entry_type":"Expense","bucket":"Wants","amount":300,"description":"周末看电影"}`
	req := httptest.NewRequest("POST", "/entries", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryHandler_Create_IncomeIgnoresBucket(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `entries`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/entries", NewEntryHandler(db).Create)

	// 收入记录不需要分类桶，传了也忽略
	body := `{"date":"2025-07-01","entry_type":"Income","bucket":"Wants","amount":1000}`
	req := httptest.NewRequest("POST", "/entries", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			Bucket string `json:"bucket"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Bucket)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryHandler_Create_ValidationErrors(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/entries", NewEntryHandler(db).Create)

	tests := []struct {
		name string
		body string
	}{
		{"负数金额", `{"date":"2025-07-02","entry_type":"Expense","bucket":"Wants","amount":-1}`},
		{"日期格式错误", `{"date":"2025/07/02","entry_type":"Expense","bucket":"Wants","amount":10}`},
		{"记录类型错误", `{"date":"2025-07-02","entry_type":"Transfer","amount":10}`},
		{"支出缺少分类桶", `{"date":"2025-07-02","entry_type":"Expense","amount":10}`},
		{"分类桶不合法", `{"date":"2025-07-02","entry_type":"Expense","bucket":"Fun","amount":10}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/entries", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, 400, w.Code)
		})
	}
}

func TestEntryHandler_List_MonthFilter(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `entries`").
		WithArgs("2025-07-%").
		WillReturnRows(entryRows().
			AddRow(2, "2025-07-02", "Expense", "Wants", 300.0, "周末看电影", now, now, nil).
			AddRow(1, "2025-07-01", "Income", "", 1000.0, "", now, now, nil))

	router := gin.New()
	router.GET("/entries", NewEntryHandler(db).List)

	req := httptest.NewRequest("GET", "/entries?month=2025-07", nil)
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

func TestEntryHandler_List_InvalidMonth(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/entries", NewEntryHandler(db).List)

	req := httptest.NewRequest("GET", "/entries?month=2025-7-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "月份格式错误")
}

func TestEntryHandler_Delete(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `entries`").
		WillReturnRows(entryRows().
			AddRow(1, "2025-07-02", "Expense", "Wants", 300.0, "", now, now, nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `entries`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/entries/:id", NewEntryHandler(db).Delete)

	req := httptest.NewRequest("DELETE", "/entries/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryHandler_Delete_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 查无此记录时返回 404，不执行删除
	mock.ExpectQuery("SELECT .* FROM `entries`").
		WillReturnRows(entryRows())

	router := gin.New()
	router.DELETE("/entries/:id", NewEntryHandler(db).Delete)

	req := httptest.NewRequest("DELETE", "/entries/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "记录不存在")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryHandler_Delete_InvalidID(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.DELETE("/entries/:id", NewEntryHandler(db).Delete)

	req := httptest.NewRequest("DELETE", "/entries/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
