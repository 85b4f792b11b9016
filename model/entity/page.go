package entity

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Eboreg/klaatu-go/model/fields"
)

type Page struct {
	PageID    uint    `gorm:"column:page_id;primaryKey;autoIncrement"`
	Slug      string  `gorm:"column:slug;type:varchar(128);uniqueIndex;not null"`
	Title     string  `gorm:"column:title;type:varchar(255);not null"`
	Body      string  `gorm:"column:body;type:text"`
	ImagePath *string `gorm:"column:image_path;type:varchar(255)"`
	ImageAlt  string  `gorm:"column:image_alt;type:varchar(255)"`
	// Translations maps language code to {field: value} overrides.
	Translations datatypes.JSON `gorm:"column:translations"`
	IsActive     bool           `gorm:"column:is_active;not null"`
	CreatedByID  *uint          `gorm:"column:created_by_id"`
	CreatedBy    *User          `gorm:"foreignKey:CreatedByID"`
	Created      time.Time      `gorm:"column:created;autoCreateTime"`
	Modified     time.Time      `gorm:"column:modified;autoUpdateTime"`
}

func (Page) TableName() string {
	return "page"
}

// BeforeSave truncates over-long titles instead of failing the write.
func (p *Page) BeforeSave(tx *gorm.DB) error {
	p.Title = fields.TruncateString(p.Title, 255, "page.title")
	p.ImageAlt = fields.TruncateString(p.ImageAlt, 255, "page.image_alt")
	return nil
}

// Translated returns the value of field for lang from the Translations
// column, or "" when no override exists.
func (p *Page) Translated(lang, field string) string {
	if len(p.Translations) == 0 {
		return ""
	}
	var m map[string]map[string]string
	if err := json.Unmarshal(p.Translations, &m); err != nil {
		return ""
	}
	return m[lang][field]
}

// HasObjectPermission lets anyone view an active page; changing or deleting
// is reserved for the creator. Superusers are handled by the caller.
func (p *Page) HasObjectPermission(user *User, verb string) bool {
	switch verb {
	case VerbView:
		return p.IsActive || (user != nil && p.CreatedByID != nil && *p.CreatedByID == user.UserID)
	case VerbChange, VerbDelete:
		return user != nil && p.CreatedByID != nil && *p.CreatedByID == user.UserID
	default:
		return true
	}
}
