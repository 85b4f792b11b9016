package media

import (
	"gorm.io/gorm"

	entity "github.com/Eboreg/klaatu-go/model/entity"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(f *entity.MediaFile) error {
	return r.db.Create(f).Error
}

func (r *MediaRepository) FindByPath(path string) (*entity.MediaFile, error) {
	var f entity.MediaFile
	err := r.db.Where("path = ?", path).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *MediaRepository) List() ([]entity.MediaFile, error) {
	var files []entity.MediaFile
	err := r.db.Order("file_id").Find(&files).Error
	return files, err
}

// PathSet returns all recorded paths as a set, for orphan detection.
func (r *MediaRepository) PathSet() (map[string]bool, error) {
	var paths []string
	if err := r.db.Model(&entity.MediaFile{}).Pluck("path", &paths).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return set, nil
}
