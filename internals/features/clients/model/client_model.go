package model

import "time"

// ClientModel: kontak perusahaan yang jadi subjek success story.
type ClientModel struct {
	ClientID        uint      `gorm:"column:client_id;primaryKey;autoIncrement" json:"client_id"`
	ClientName      string    `gorm:"column:client_name;type:varchar(255);not null" json:"client_name"`
	ClientSlug      string    `gorm:"column:client_slug;type:varchar(120);uniqueIndex" json:"client_slug"`
	ClientIsCompany bool      `gorm:"column:client_is_company;not null;default:false" json:"client_is_company"`
	ClientWebsite   string    `gorm:"column:client_website;type:varchar(255)" json:"client_website"`
	ClientCreatedAt time.Time `gorm:"column:client_created_at;autoCreateTime" json:"client_created_at"`
	ClientUpdatedAt time.Time `gorm:"column:client_updated_at;autoUpdateTime" json:"client_updated_at"`
}

// TableName sets the table name for ClientModel
func (ClientModel) TableName() string {
	return "clients"
}
