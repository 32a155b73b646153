package router

import (
	"time"

	"budget/api"
	"budget/config"
	_ "budget/docs"
	"budget/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 写接口限流
		writeLimit := middleware.RateLimit(60, time.Minute)

		// 收支记录
		entryHandler := api.NewEntryHandler(db)
		entries := v1.Group("/entries")
		{
			entries.POST("", writeLimit, entryHandler.Create)
			entries.GET("", entryHandler.List)
			entries.DELETE("/:id", writeLimit, entryHandler.Delete)
		}

		// 消费记录
		expenseHandler := api.NewExpenseHandler(db)
		expenses := v1.Group("/expenses")
		{
			expenses.POST("", writeLimit, expenseHandler.Create)
			expenses.GET("", expenseHandler.List)
			expenses.DELETE("/:id", writeLimit, expenseHandler.Delete)
		}

		// 消费类别
		categoryHandler := api.NewCategoryHandler(db)
		v1.POST("/categories", writeLimit, categoryHandler.Create)
		v1.GET("/categories", categoryHandler.List)

		// 月度工资
		salaryHandler := api.NewSalaryHandler(db)
		v1.POST("/salary", writeLimit, salaryHandler.Set)
		v1.GET("/salary/:month", salaryHandler.Get)

		// 周期性付款与提醒
		recurringHandler := api.NewRecurringHandler(db, cfg)
		v1.POST("/recurring-payments", writeLimit, recurringHandler.Create)
		v1.GET("/recurring-payments", recurringHandler.List)
		v1.GET("/reminders/upcoming", recurringHandler.UpcomingReminders)
		v1.POST("/reminders/notify", writeLimit, recurringHandler.NotifyReminders)

		// 月度分析
		insightHandler := api.NewInsightHandler(db)
		v1.GET("/insights/:month", insightHandler.Get)

		// 导出
		exportHandler := api.NewExportHandler(db)
		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/json", exportHandler.ExportJSON)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
