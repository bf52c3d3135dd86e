package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/e-academy-backend/models"
)

type Config struct {
	Port             string
	GinMode          string
	LogLevel         string
	CORSOrigins      []string
	JWTSecret        string
	CatalogLatencyMs int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBTimeZone string
}

// Load đọc .env (nếu có) rồi lấy cấu hình từ biến môi trường
func Load() (*Config, error) {
	// .env là tùy chọn
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("CATALOG_LATENCY_MS", -1)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_TIMEZONE", "Asia/Ho_Chi_Minh")

	cfg := &Config{
		Port:             v.GetString("PORT"),
		GinMode:          v.GetString("GIN_MODE"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		CORSOrigins:      splitList(v.GetString("CORS_ORIGINS")),
		JWTSecret:        v.GetString("JWT_SECRET"),
		CatalogLatencyMs: v.GetInt("CATALOG_LATENCY_MS"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		DBTimeZone:       v.GetString("DB_TIMEZONE"),
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("thiếu biến môi trường JWT_SECRET")
	}
	return cfg, nil
}

// Production là true khi gin chạy ở release mode
func (c *Config) Production() bool {
	return c.GinMode == "release"
}

// DatabaseEnabled cho biết có cấu hình postgres để lưu yêu cầu tài liệu
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != "" && c.DBName != ""
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBTimeZone,
	)
}

// InitDB kết nối postgres và migrate bảng yêu cầu tài liệu.
// Catalog vẫn nằm trong bộ nhớ, database chỉ dùng cho request sink.
func InitDB(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	level := logger.Warn
	if !cfg.Production() {
		level = logger.Info
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("không thể kết nối database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("không thể lấy sql.DB từ gorm: %w", err)
	}

	// Connection Pooling config
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&models.ResourceRequest{}); err != nil {
		return nil, fmt.Errorf("autoMigrate lỗi: %w", err)
	}
	log.Info("postgreSQL connected & migrated successfully", zap.String("host", cfg.DBHost))
	return db, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
