package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values. Credentials are never compiled in;
// they come from config.yaml or the environment.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration (slot locks and the reminder queue use separate DBs).
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisLockDB          int    `mapstructure:"REDIS_LOCK_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Staff auth.
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	StaffEmail        string `mapstructure:"STAFF_EMAIL"`
	StaffPasswordHash string `mapstructure:"STAFF_PASSWORD_HASH"` // bcrypt

	// Outbound mail.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	MailFrom     string `mapstructure:"MAIL_FROM"`
	StaffInbox   string `mapstructure:"STAFF_INBOX"`

	// Firebase Cloud Messaging (staff push notifications).
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	StaffFCMToken           string `mapstructure:"STAFF_FCM_TOKEN"`

	// Cloudinary (photo uploads).
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// CORS.
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Business calendar.
	BusinessTimezone    string   `mapstructure:"BUSINESS_TIMEZONE"`
	BusinessOpeningHour int      `mapstructure:"BUSINESS_OPENING_HOUR"`
	BusinessClosingHour int      `mapstructure:"BUSINESS_CLOSING_HOUR"`
	BusinessWorkingDays []string `mapstructure:"BUSINESS_WORKING_DAYS"`

	// Service catalog overrides: service type → duration in minutes.
	ServiceDurations map[string]int `mapstructure:"SERVICE_DURATIONS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "tubtime")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_LOCK_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
	viper.SetDefault("BUSINESS_TIMEZONE", "America/New_York")
	viper.SetDefault("BUSINESS_OPENING_HOUR", 9)
	viper.SetDefault("BUSINESS_CLOSING_HOUR", 17)
	viper.SetDefault("BUSINESS_WORKING_DAYS", []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"})

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
