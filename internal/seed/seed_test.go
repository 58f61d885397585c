package seed

import (
	"testing"

	"caseboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Case{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func TestCasesSeedsEmptyDatabase(t *testing.T) {
	t.Parallel()

	db := setupSeedTestDB(t)

	if err := Cases(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Case{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 seeded cases, got %d", count)
	}

	var seeded []models.Case
	if err := db.Order("id ASC").Find(&seeded).Error; err != nil {
		t.Fatalf("load seeded: %v", err)
	}
	for _, c := range seeded {
		if c.PV != 0 {
			t.Fatalf("case %q: expected 0 views, got %d", c.Title, c.PV)
		}
		if len(c.Tags) == 0 {
			t.Fatalf("case %q: expected tags", c.Title)
		}
	}
	if seeded[0].Likes != 8 || seeded[1].Likes != 5 || seeded[2].Likes != 7 {
		t.Fatalf("unexpected seeded likes: %d, %d, %d", seeded[0].Likes, seeded[1].Likes, seeded[2].Likes)
	}
}

func TestCasesIsIdempotent(t *testing.T) {
	t.Parallel()

	db := setupSeedTestDB(t)

	if err := Cases(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Cases(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Case{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 cases after re-seed, got %d", count)
	}
}

func TestCasesSkipsWhenOnlyDeletedRowsRemain(t *testing.T) {
	t.Parallel()

	db := setupSeedTestDB(t)

	gone := models.Case{Title: "t", Summary: "s", Detail: "d", Deleted: true}
	if err := db.Create(&gone).Error; err != nil {
		t.Fatalf("create deleted case: %v", err)
	}

	if err := Cases(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Case{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected no seeding over deleted rows, got %d rows", count)
	}
}
