package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/repositories"
	"github.com/jsj/linkup/internal/config"
	"github.com/jsj/linkup/internal/db"
	"github.com/jsj/linkup/internal/pkg/auth"
	"github.com/jsj/linkup/internal/pkg/logger"
)

// CreateDefaultData seeds the bootstrap admin account and a starter
// academic catalog. Everything here is idempotent; existing rows are
// left alone.
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config) error {
	repos := repositories.NewRepositories(pool)

	if err := seedAdmin(ctx, repos.Admin, cfg); err != nil {
		return err
	}
	if err := seedCatalog(ctx, pool); err != nil {
		return err
	}
	return nil
}

// seedAdmin creates the configured admin account if it does not exist.
// Admins cannot self-register, so this is the only way one comes to be.
func seedAdmin(ctx context.Context, admins *repositories.AdminRepository, cfg *config.Config) error {
	exists, err := admins.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	id, err := admins.Create(ctx, &models.Admin{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Name:         "System",
		Surname:      "Administrator",
	})
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	logger.Info().Int64("adminID", id).Str("email", cfg.Admin.Email).Msg("Default admin created")
	return nil
}

// seedCatalog inserts a starter catalog when the campuses table is empty,
// so a fresh install has something to register against. The inserts run
// in one transaction; a partial catalog would never reseed past the
// empty-table guard.
func seedCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	var count int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM campuses").Scan(&count); err != nil {
		return fmt.Errorf("failed to count campuses: %w", err)
	}
	if count > 0 {
		return nil
	}

	err := db.WithTransaction(ctx, pool, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO campuses (campus_name, location, campus_size) VALUES ($1, $2, $3)`,
			"Main Campus", "City Centre", 42.5); err != nil {
			return fmt.Errorf("failed to seed campus: %w", err)
		}

		var facultyID int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO faculties (faculty_name) VALUES ($1) RETURNING id`,
			"Faculty of Computing").Scan(&facultyID); err != nil {
			return fmt.Errorf("failed to seed faculty: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO courses (faculty_id, course_name, credits, number_of_modules, course_code)
			 VALUES ($1, $2, $3, $4, $5)`,
			facultyID, "BSc Computer Science", 360, 12, "CS101"); err != nil {
			return fmt.Errorf("failed to seed course: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO modules (module_name, module_code, credits) VALUES ($1, $2, $3)`,
			"Introduction to Programming", "COMP101", 30); err != nil {
			return fmt.Errorf("failed to seed module: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Msg("Starter catalog seeded")
	return nil
}
