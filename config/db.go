package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"realestate-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

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
	dbName := envOrDefault("DB_NAME", "realestate_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Open connects to MySQL, applies the configured table prefix, runs the schema
// migration and the one-time legacy-column backfill.
func Open(cfg *Config) (*gorm.DB, error) {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		NamingStrategy: schema.NamingStrategy{TablePrefix: cfg.TablePrefix},
	})
	if err != nil {
		return nil, err
	}

	if err := MigrateModels(db); err != nil {
		return nil, err
	}
	if err := backfillLegacyColumns(db, cfg); err != nil {
		return nil, err
	}
	return db, nil
}

// MigrateModels runs AutoMigrate in parent-before-child order.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.PropertyType{},
		&models.District{},
		&models.Amenity{},
		&models.Feature{},
		&models.Property{},
	)
}

// backfillLegacyColumns migrates databases written by the old plugin, which
// stored the property type and district as free text alongside the foreign
// keys. The text is resolved against the reference tables once and the legacy
// columns are dropped; there is no dual-write path.
func backfillLegacyColumns(db *gorm.DB, cfg *Config) error {
	m := db.Migrator()
	props := cfg.TablePrefix + "properties"

	if m.HasColumn(&models.Property{}, "property_type") {
		types := cfg.TablePrefix + "property_types"
		err := db.Exec(fmt.Sprintf(
			`UPDATE %s p JOIN %s t ON t.slug = p.property_type OR t.name = p.property_type
			 SET p.property_type_id = t.id
			 WHERE p.property_type_id IS NULL AND p.property_type <> ''`,
			props, types,
		)).Error
		if err != nil {
			return fmt.Errorf("backfill property_type: %w", err)
		}
		if err := m.DropColumn(&models.Property{}, "property_type"); err != nil {
			return fmt.Errorf("drop legacy property_type column: %w", err)
		}
		log.Println("legacy property_type column backfilled and dropped")
	}

	if m.HasColumn(&models.Property{}, "district") {
		districts := cfg.TablePrefix + "districts"
		err := db.Exec(fmt.Sprintf(
			`UPDATE %s p JOIN %s d ON d.slug = p.district OR d.name = p.district
			 SET p.district_id = d.id
			 WHERE p.district_id IS NULL AND p.district <> ''`,
			props, districts,
		)).Error
		if err != nil {
			return fmt.Errorf("backfill district: %w", err)
		}
		if err := m.DropColumn(&models.Property{}, "district"); err != nil {
			return fmt.Errorf("drop legacy district column: %w", err)
		}
		log.Println("legacy district column backfilled and dropped")
	}

	return nil
}
