package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"villa-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "villa_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase inserts the initial catalog when the table is empty.
// Safe to run on every startup.
func SeedDatabase() {
	var count int64
	DB.Model(&models.Property{}).Count(&count)
	if count > 0 {
		return
	}

	amenity := func(items ...string) datatypes.JSON {
		raw, _ := json.Marshal(items)
		return datatypes.JSON(raw)
	}

	now := time.Now()
	properties := []models.Property{
		{
			Name:      "Villa Real",
			Detail:    "Royal villa with garden views.",
			Rate:      200.0,
			Occupancy: 5,
			Area:      50.0,
			Amenity:   amenity("wifi", "parking"),
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			Name:      "Villa Vista a la Piscina",
			Detail:    "Villa overlooking the pool.",
			Rate:      400.0,
			Occupancy: 8,
			Area:      80.0,
			Amenity:   amenity("wifi", "pool"),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := DB.Create(&properties).Error; err != nil {
		log.Printf("warning: failed to seed properties: %v", err)
		return
	}
	log.Println("Properties seeded")
}

// ConnectDatabase opens the MySQL connection, runs migrations in
// parent-then-child order and seeds the catalog.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	sqlLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         sqlLogger,
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Property{},
		&models.RoomNumber{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
