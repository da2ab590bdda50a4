package models

// Resource is a shared file (notes, slides, exercises) uploaded through
// the storage layer.
type Resource struct {
	BaseModel
	OwnerID     string `gorm:"not null;index" json:"owner_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	FileName    string `json:"file_name"`
	FileKey     string `gorm:"uniqueIndex" json:"-"` // storage object key
	FileURL     string `json:"file_url"`
	MimeType    string `json:"mime_type"`
	Size        int64  `json:"size"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}
