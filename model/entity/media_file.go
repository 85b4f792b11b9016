package entity

import (
	"time"

	"gorm.io/datatypes"
)

type MediaFile struct {
	FileID uint   `gorm:"column:file_id;primaryKey;autoIncrement"`
	Path   string `gorm:"column:path;type:varchar(255);uniqueIndex;not null"`
	Format string `gorm:"column:format;type:varchar(16)"`
	Width  int    `gorm:"column:width"`
	Height int    `gorm:"column:height"`
	Size   int64  `gorm:"column:size"`
	// Metadata holds whatever the upload pipeline wants to record
	// (original dimensions, resize decisions, encoder settings).
	Metadata    datatypes.JSON `gorm:"column:metadata"`
	CreatedByID *uint          `gorm:"column:created_by_id"`
	CreatedBy   *User          `gorm:"foreignKey:CreatedByID"`
	Created     time.Time      `gorm:"column:created;autoCreateTime"`
}

func (MediaFile) TableName() string {
	return "media_file"
}
