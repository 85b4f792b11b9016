package entity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func pageTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("page_entity_test_%d.db", time.Now().UnixNano()))
	t.Cleanup(func() { os.Remove(tmpFile) })
	db, err := gorm.Open(sqlite.Open(tmpFile), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&User{}, &Page{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestPage_BeforeSave_TruncatesOverLongColumns(t *testing.T) {
	db := pageTestDB(t)
	p := &Page{
		Slug:     "long",
		Title:    strings.Repeat("t", 300),
		ImageAlt: strings.Repeat("a", 300),
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	var stored Page
	if err := db.First(&stored, p.PageID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(stored.Title) != 255 {
		t.Errorf("stored title length = %d, want 255", len(stored.Title))
	}
	if len(stored.ImageAlt) != 255 {
		t.Errorf("stored image_alt length = %d, want 255", len(stored.ImageAlt))
	}
	if !strings.HasPrefix(strings.Repeat("t", 300), stored.Title) {
		t.Error("truncated title must keep the leading characters")
	}
}

func TestPage_Translated(t *testing.T) {
	p := &Page{Title: "Base", Translations: []byte(`{"sv": {"title": "Bas"}}`)}
	if got := p.Translated("sv", "title"); got != "Bas" {
		t.Errorf("Translated(sv) = %q, want Bas", got)
	}
	if got := p.Translated("sv", "body"); got != "" {
		t.Errorf("Translated missing field = %q, want empty", got)
	}
	if got := p.Translated("de", "title"); got != "" {
		t.Errorf("Translated missing lang = %q, want empty", got)
	}
}
