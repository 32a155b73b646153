package database

import (
	"fmt"
	"log"

	"budget/config"
	"budget/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init 初始化数据库连接并自动迁移表结构。
// 返回的 *gorm.DB 通过构造函数注入到各个处理器，不使用包级单例。
func Init(cfg *config.Config) (*gorm.DB, error) {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	// 自动迁移数据库表
	if err := db.AutoMigrate(
		&models.Entry{},
		&models.Expense{},
		&models.Category{},
		&models.Salary{},
		&models.RecurringPayment{},
	); err != nil {
		return nil, err
	}

	// 初始化默认消费类别（仅当表为空时）
	var catCount int64
	db.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		defaultCats := []models.Category{
			{Name: "房租", Bucket: models.BucketNeeds},
			{Name: "餐饮", Bucket: models.BucketNeeds},
			{Name: "交通", Bucket: models.BucketNeeds},
			{Name: "购物", Bucket: models.BucketWants},
			{Name: "娱乐", Bucket: models.BucketWants},
			{Name: "理财", Bucket: models.BucketSavings},
		}
		if err := db.Create(&defaultCats).Error; err != nil {
			log.Printf("警告: 初始化默认类别失败: %v", err)
		}
	}

	log.Println("数据库初始化成功")
	return db, nil
}
