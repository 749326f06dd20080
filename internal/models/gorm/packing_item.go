package gorm

import "time"

// PackingItemState is one user's check state for one checklist item.
// ItemID is "<user>_<item>" so the same item can be checked per user.
type PackingItemState struct {
	ItemID         string    `gorm:"column:item_id;primaryKey;type:varchar(200)"`
	UserID         string    `gorm:"column:user_id;index;type:varchar(100)"`
	OriginalItemID string    `gorm:"column:original_item_id;type:varchar(150)"`
	Checked        bool      `gorm:"column:checked;default:false"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

// TableName specifies the table name for GORM
func (PackingItemState) TableName() string {
	return "packing_items"
}
