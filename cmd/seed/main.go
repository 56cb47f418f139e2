package main

import (
	"fmt"
	"log"

	"venuehub/internal/catalog"
	"venuehub/internal/shared/config"
	"venuehub/internal/shared/database"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting VenueHub Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"reservation_services",
		"reservations",
		"services",
		"venues",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll loads the stock catalog of halls and add-on services
func (s *Seeder) SeedAll() error {
	venues := catalog.SeedVenues()
	if err := s.db.PostgreSQL.Create(&venues).Error; err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}
	fmt.Printf("  Seeded %d venues\n", len(venues))
	for _, v := range venues {
		fmt.Printf("    %s (capacity %d)\n", v.Name, v.Capacity)
	}

	services := catalog.SeedServices()
	if err := s.db.PostgreSQL.Create(&services).Error; err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}
	fmt.Printf("  Seeded %d services\n", len(services))
	for _, svc := range services {
		fmt.Printf("    %s [%s]\n", svc.Name, svc.Category)
	}

	return nil
}
