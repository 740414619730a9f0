package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"medtracker/internal/config"
	"medtracker/internal/db"
	"medtracker/internal/repository"
	"medtracker/internal/service"
)

// SeedMedicine is one entry of the seed JSON array.
type SeedMedicine struct {
	Name      string  `json:"name"`
	Dose      string  `json:"dose"`
	TimeOfDay string  `json:"time_of_day"`
	Notes     *string `json:"notes"`
	Active    *bool   `json:"active"`
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	source := cfg.SeedSource
	if len(os.Args) > 1 {
		source = os.Args[1]
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB, false); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	log.Printf("Loading medicines from: %s", source)
	medicines, err := loadSeed(source)
	if err != nil {
		log.Fatalf("Failed to load medicines: %v", err)
	}
	log.Printf("Loaded %d medicines", len(medicines))

	repo := repository.NewMedicineRepository(gormDB)
	svc := service.NewMedicineService(repo)

	created, updated, skipped, err := seedMedicines(context.Background(), repo, svc, medicines)
	if err != nil {
		log.Fatalf("Failed to seed medicines: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New medicines created: %d", created)
	log.Printf("  - Existing medicines updated: %d", updated)
	log.Printf("  - Invalid entries skipped: %d", skipped)
}

// loadSeed reads the seed array from an http(s) URL or a local file.
func loadSeed(source string) ([]SeedMedicine, error) {
	var body []byte
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch seed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
		}
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
	} else {
		var err error
		body, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
	}

	var medicines []SeedMedicine
	if err := json.Unmarshal(body, &medicines); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return medicines, nil
}

// seedMedicines upserts by (name, time_of_day): matching rows are updated,
// others created.
func seedMedicines(ctx context.Context, repo repository.MedicineRepository, svc service.MedicineService, medicines []SeedMedicine) (created, updated, skipped int, err error) {
	for _, item := range medicines {
		if item.Name == "" || item.Dose == "" || item.TimeOfDay == "" {
			log.Printf("Skipping incomplete medicine entry: %+v", item)
			skipped++
			continue
		}

		existing, err := repo.List(ctx, item.TimeOfDay)
		if err != nil {
			return created, updated, skipped, fmt.Errorf("error listing %s medicines: %w", item.TimeOfDay, err)
		}

		var matchID uint
		for _, m := range existing {
			if m.Name == item.Name {
				matchID = m.ID
				break
			}
		}

		if matchID != 0 {
			dose := item.Dose
			in := service.UpdateMedicineInput{Dose: &dose, Active: item.Active}
			if item.Notes != nil {
				in.Notes.Set = true
				in.Notes.Value = item.Notes
			}
			if _, err := svc.UpdateMedicine(ctx, matchID, in); err != nil {
				return created, updated, skipped, fmt.Errorf("error updating medicine %d: %w", matchID, err)
			}
			updated++
			continue
		}

		if _, err := svc.CreateMedicine(ctx, service.CreateMedicineInput{
			Name:      item.Name,
			Dose:      item.Dose,
			TimeOfDay: item.TimeOfDay,
			Notes:     item.Notes,
			Active:    item.Active,
		}); err != nil {
			return created, updated, skipped, fmt.Errorf("error creating medicine %s: %w", item.Name, err)
		}
		created++
	}

	return created, updated, skipped, nil
}
