package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"medtracker/internal/db"
	"medtracker/internal/repository"
	"medtracker/internal/service"
)

func TestLoadSeed_FileAndURL(t *testing.T) {
	payload := `[{"name":"Metformin","dose":"500mg","time_of_day":"morning"}]`

	path := filepath.Join(t.TempDir(), "medicines.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	fromFile, err := loadSeed(path)
	require.NoError(t, err)
	require.Len(t, fromFile, 1)
	assert.Equal(t, "Metformin", fromFile[0].Name)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer ts.Close()

	fromURL, err := loadSeed(ts.URL)
	require.NoError(t, err)
	assert.Equal(t, fromFile, fromURL)

	_, err = loadSeed(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSeedMedicines_Upsert(t *testing.T) {
	gormDB, err := gorm.Open(sqlite.Open("file:seed_upsert?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	require.NoError(t, db.Migrate(gormDB, false))

	repo := repository.NewMedicineRepository(gormDB)
	svc := service.NewMedicineService(repo)
	ctx := context.Background()

	first := []SeedMedicine{
		{Name: "Metformin", Dose: "500mg", TimeOfDay: "morning"},
		{Name: "Metformin", Dose: "500mg", TimeOfDay: "evening"},
		{Name: "", Dose: "1", TimeOfDay: "morning"},
	}
	created, updated, skipped, err := seedMedicines(ctx, repo, svc, first)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 0, updated)
	assert.Equal(t, 1, skipped)

	second := []SeedMedicine{{Name: "Metformin", Dose: "850mg", TimeOfDay: "morning"}}
	created, updated, _, err = seedMedicines(ctx, repo, svc, second)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 1, updated)

	morning, err := repo.List(ctx, "morning")
	require.NoError(t, err)
	require.Len(t, morning, 1)
	assert.Equal(t, "850mg", morning[0].Dose)
	assert.True(t, morning[0].Active)
}
