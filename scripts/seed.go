// Package scripts provides utility scripts for database and system management.
//
// This package implements database seeding functionality to populate sample
// data for development environments. The seeding system works similarly to
// migrations, tracking executed seeds to ensure they only run once, making
// the process idempotent and safe to run on both new and existing databases.
package scripts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danuarts/staffdesk/internal/auth"
	"github.com/danuarts/staffdesk/internal/database"
)

// Seeder handles database seeding. It provides methods to run seeds that
// populate the database with sample data.
type Seeder struct {
	db *database.Pool
}

// NewSeeder creates a new seeder.
func NewSeeder(db *database.Pool) *Seeder {
	return &Seeder{
		db: db,
	}
}

// SeedDatabase seeds the database with sample data. It creates the seeds
// tracking table if it doesn't exist, then runs all seed functions that
// haven't been executed yet.
func (s *Seeder) SeedDatabase(ctx context.Context) error {
	log.Info().Msg("Seeding database")
	startTime := time.Now()

	if err := s.createSeedsTable(ctx); err != nil {
		return fmt.Errorf("failed to create seeds table: %w", err)
	}

	executedSeeds, err := s.getExecutedSeeds(ctx)
	if err != nil {
		return fmt.Errorf("failed to get executed seeds: %w", err)
	}

	seeds := []struct {
		Name     string
		SeedFunc func(ctx context.Context, tx *sql.Tx) error
	}{
		{"demo_user", s.seedDemoUser},
		{"sample_employees", s.seedSampleEmployees},
	}

	for _, seed := range seeds {
		if !executedSeeds[seed.Name] {
			log.Info().Str("seed", seed.Name).Msg("Running seed")
			if err := s.runSeed(ctx, seed.Name, seed.SeedFunc); err != nil {
				return err
			}
		} else {
			log.Debug().Str("seed", seed.Name).Msg("Seed already executed")
		}
	}

	log.Info().
		Dur("duration", time.Since(startTime)).
		Msg("Database seeding completed")

	return nil
}

// createSeedsTable creates the seeds table if it doesn't exist.
// This table tracks which seed operations have been executed.
func (s *Seeder) createSeedsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS seeds (
			name VARCHAR(255) PRIMARY KEY,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// getExecutedSeeds returns a map keyed by the names of seeds that have
// already run.
func (s *Seeder) getExecutedSeeds(ctx context.Context) (map[string]bool, error) {
	query := `SELECT name FROM seeds`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	seeds := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		seeds[name] = true
	}

	return seeds, rows.Err()
}

// runSeed runs a seed function within a transaction. If the seed operation
// fails, the transaction is rolled back.
func (s *Seeder) runSeed(ctx context.Context, name string, seedFunc func(ctx context.Context, tx *sql.Tx) error) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := seedFunc(ctx, tx); err != nil {
			return fmt.Errorf("seed %s failed: %w", name, err)
		}

		query := `INSERT INTO seeds (name) VALUES ($1)`
		if _, err := tx.ExecContext(ctx, query, name); err != nil {
			return fmt.Errorf("failed to record seed: %w", err)
		}

		return nil
	})
}

// seedDemoUser inserts a demo account so the API is usable straight after
// startup in development. The password is hashed the same way registration
// hashes it.
func (s *Seeder) seedDemoUser(ctx context.Context, tx *sql.Tx) error {
	hash, salt, err := auth.HashPassword("Demo1234!", auth.DefaultPasswordConfig())
	if err != nil {
		return fmt.Errorf("failed to hash demo user password: %w", err)
	}

	query := `
        INSERT INTO users (username, email, password_hash, salt)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT ON CONSTRAINT idx_email DO NOTHING
    `
	result, err := tx.ExecContext(ctx, query, "demo", "demo@example.com", hash, salt)
	if err != nil {
		return fmt.Errorf("failed to insert demo user: %w", err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows > 0 {
		log.Info().Str("username", "demo").Msg("Demo user created")
	}

	return nil
}

// seedSampleEmployees inserts a handful of sample employee records so the
// directory is not empty in development. Existing emails are left untouched.
func (s *Seeder) seedSampleEmployees(ctx context.Context, tx *sql.Tx) error {
	samples := []struct {
		firstName  string
		lastName   string
		email      string
		hireDate   string
		jobTitle   string
		department string
		salary     float64
	}{
		{"Alice", "Nguyen", "alice.nguyen@example.com", "2021-03-15", "Software Engineer", "Engineering", 95000},
		{"Bruno", "Costa", "bruno.costa@example.com", "2019-11-01", "HR Manager", "Human Resources", 78000},
		{"Chen", "Wei", "chen.wei@example.com", "2023-06-20", "Data Analyst", "Analytics", 69000},
	}

	insertedCount := 0
	for _, sample := range samples {
		query := `
            INSERT INTO employees (first_name, last_name, email, hire_date, job_title, department, salary)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            ON CONFLICT ON CONSTRAINT idx_employee_email DO NOTHING
        `
		result, err := tx.ExecContext(ctx, query,
			sample.firstName, sample.lastName, sample.email,
			sample.hireDate, sample.jobTitle, sample.department, sample.salary)
		if err != nil {
			return fmt.Errorf("failed to insert sample employee %s: %w", sample.email, err)
		}

		if rows, err := result.RowsAffected(); err == nil && rows > 0 {
			insertedCount++
		}
	}

	log.Info().
		Int("inserted_employees", insertedCount).
		Msg("Sample employee seeding completed")

	return nil
}
