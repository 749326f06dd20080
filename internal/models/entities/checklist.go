package entities

// ChecklistItem is a built-in packing list entry.
type ChecklistItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Note      string `json:"note,omitempty"`
	Important bool   `json:"important,omitempty"`
}

// ChecklistCategory groups built-in items.
type ChecklistCategory struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Emoji       string          `json:"emoji"`
	Description string          `json:"description"`
	Items       []ChecklistItem `json:"items"`
}

// CustomChecklistItem is a user-created entry attached to a category.
type CustomChecklistItem struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Note       string `json:"note,omitempty"`
}
