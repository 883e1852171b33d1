package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
	"github.com/smartoffice/room-booking-api/internal/infrastructure/config"
)

// Open connects to Postgres and applies the configured pool bounds.
func Open(cfg config.PostgresConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Migrate creates the schema and seeds the fixed role vocabulary. Roles are
// seeded once at bootstrap and never written again at runtime.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}, &Role{}, &Room{}, &Booking{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	for _, name := range domain.AllRoles {
		role := Role{Name: string(name)}
		if err := db.Where("name = ?", role.Name).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
	}
	return nil
}

// dbErr tags unexpected store failures so the HTTP layer can substitute the
// generic "Database error" message without leaking driver internals.
func dbErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrDatabase, op, err)
}
