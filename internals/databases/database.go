package database

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	campaignModel "bayanihan_backend/internals/features/campaigns/model"
	charityModel "bayanihan_backend/internals/features/charities/charity/model"
	donationModel "bayanihan_backend/internals/features/donations/model"
	fundUsageModel "bayanihan_backend/internals/features/fundusage/model"
	followModel "bayanihan_backend/internals/features/follows/model"
	notificationModel "bayanihan_backend/internals/features/notifications/model"
	postModel "bayanihan_backend/internals/features/posts/model"
	securityModel "bayanihan_backend/internals/features/users/security/model"
	userModel "bayanihan_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=bayanihan&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // plays nice with PgBouncer transaction pooling
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync. Gated behind DB_AUTOMIGRATE so production
// deploys can manage the schema with SQL migrations instead.
func Migrate() {
	if getenv("DB_AUTOMIGRATE", "true") != "true" {
		log.Println("⏭️ AutoMigrate skipped (DB_AUTOMIGRATE != true)")
		return
	}
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&charityModel.CharityModel{},
		&charityModel.CharityDocumentModel{},
		&charityModel.DonationChannelModel{},
		&campaignModel.CampaignModel{},
		&donationModel.DonationModel{},
		&donationModel.RecurringDonationModel{},
		&fundUsageModel.FundUsageLogModel{},
		&postModel.CharityPostModel{},
		&followModel.CharityFollowModel{},
		&notificationModel.NotificationModel{},
		&securityModel.SecurityEventModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ AutoMigrate done.")
}

func WarmUp() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
