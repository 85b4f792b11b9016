package page

import (
	"gorm.io/gorm"

	entity "github.com/Eboreg/klaatu-go/model/entity"
)

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) FindBySlug(slug string) (*entity.Page, error) {
	var p entity.Page
	err := r.db.Preload("CreatedBy").Where("slug = ?", slug).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PageRepository) FindByID(id uint) (*entity.Page, error) {
	var p entity.Page
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns pages ordered by ID, optionally filtered on is_active
// ("1"/"0"; any other value means no filter).
func (r *PageRepository) List(isActive string) ([]entity.Page, error) {
	var pages []entity.Page
	q := r.db.Order("page_id")
	switch isActive {
	case "1":
		q = q.Where("is_active = ?", true)
	case "0":
		q = q.Where("is_active = ?", false)
	}
	err := q.Find(&pages).Error
	return pages, err
}

func (r *PageRepository) Create(p *entity.Page) error {
	return r.db.Create(p).Error
}

func (r *PageRepository) Delete(p *entity.Page) error {
	return r.db.Delete(p).Error
}

// SetActive bulk-updates is_active for the given IDs and returns the number
// of affected rows.
func (r *PageRepository) SetActive(ids []uint, active bool) (int64, error) {
	res := r.db.Model(&entity.Page{}).Where("page_id IN ?", ids).Update("is_active", active)
	return res.RowsAffected, res.Error
}
