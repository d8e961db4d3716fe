package database

import (
	"errors"
	"time"

	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/content"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const migrationBackfillTestimonialInitials = "2026-06-18_backfill_testimonial_initials"

type migrationRecord struct {
	Name             string `gorm:"column:name;primaryKey;size:190;not null"`
	AppliedAtSeconds int64  `gorm:"column:applied_at_s;not null"`
}

func (migrationRecord) TableName() string {
	return "db_migrations"
}

type migrationDefinition struct {
	name  string
	apply func(*gorm.DB) error
}

func applyMigrations(db *gorm.DB, logger *zap.Logger) error {
	migrations := []migrationDefinition{
		{name: migrationBackfillTestimonialInitials, apply: backfillTestimonialInitials},
	}

	for _, migration := range migrations {
		var record migrationRecord
		err := db.Where("name = ?", migration.name).Take(&record).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := migration.apply(db); err != nil {
			return err
		}
		appliedAt := time.Now().UTC().Unix()
		if err := db.Create(&migrationRecord{Name: migration.name, AppliedAtSeconds: appliedAt}).Error; err != nil {
			return err
		}
		if logger != nil {
			logger.Info("database migration applied", zap.String("migration", migration.name))
		}
	}
	return nil
}

// backfillTestimonialInitials derives the avatar initial for testimonials
// imported before the initial column existed.
func backfillTestimonialInitials(db *gorm.DB) error {
	return db.Model(&content.Testimonial{}).
		Where("initial = '' AND name <> ''").
		Update("initial", gorm.Expr("upper(substr(name, 1, 1))")).Error
}
