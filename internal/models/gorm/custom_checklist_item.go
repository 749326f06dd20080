package gorm

import "time"

// CustomChecklistItem is a user-added checklist entry.
type CustomChecklistItem struct {
	ID         string    `gorm:"column:id;primaryKey;type:varchar(150)"`
	CategoryID string    `gorm:"column:category_id;type:varchar(50)"`
	Name       string    `gorm:"column:name;type:text"`
	Note       string    `gorm:"column:note;type:text"`
	UserID     string    `gorm:"column:user_id;index;type:varchar(100)"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

// TableName specifies the table name for GORM
func (CustomChecklistItem) TableName() string {
	return "custom_checklist_items"
}
