package entity

import "time"

type AccessToken struct {
	TokenID  uint       `gorm:"column:token_id;primaryKey;autoIncrement"`
	UserID   uint       `gorm:"column:user_id;index;not null"`
	User     *User      `gorm:"foreignKey:UserID"`
	Token    string     `gorm:"column:token;type:varchar(64);uniqueIndex;not null"`
	Revoked  bool       `gorm:"column:revoked;not null"`
	Created  time.Time  `gorm:"column:created;autoCreateTime"`
	LastUsed *time.Time `gorm:"column:last_used"`
}

func (AccessToken) TableName() string {
	return "access_token"
}
