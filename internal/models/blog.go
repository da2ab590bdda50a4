package models

import "gorm.io/datatypes"

type Blog struct {
	BaseModelWithDeleted
	AuthorID string         `gorm:"not null;index" json:"author_id"`
	Title    string         `gorm:"not null" json:"title"`
	Content  string         `gorm:"not null" json:"content"`
	Tags     datatypes.JSON `json:"tags"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
