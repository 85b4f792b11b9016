package entity

import "time"

type User struct {
	UserID   uint    `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username string  `gorm:"column:username;type:varchar(40);uniqueIndex;not null"`
	Email    *string `gorm:"column:email;type:varchar(128)"`
	Language *string `gorm:"column:language;type:varchar(8)"`
	// No gorm default tags on the booleans: a default would make gorm drop
	// an explicit false on insert.
	IsActive    bool      `gorm:"column:is_active;not null"`
	IsSuperuser bool      `gorm:"column:is_superuser;not null"`
	CreatedByID *uint     `gorm:"column:created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID"`
	Created     time.Time `gorm:"column:created;autoCreateTime"`
	Modified    time.Time `gorm:"column:modified;autoUpdateTime"`
}

func (User) TableName() string {
	return "user"
}

// Verbs used by the permission checks (HTTP method mapping lives in api).
const (
	VerbView   = "view"
	VerbCreate = "create"
	VerbChange = "change"
	VerbDelete = "delete"
)

// ObjectPermitter is implemented by entities that restrict per-object access.
// Superuser checks happen before this is consulted.
type ObjectPermitter interface {
	HasObjectPermission(user *User, verb string) bool
}
