package dtos

type Progress struct {
	Checked int `json:"checked"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// NewProgress derives the percentage from the counts.
func NewProgress(checked, total int) Progress {
	p := Progress{Checked: checked, Total: total}
	if total > 0 {
		p.Percent = checked * 100 / total
	}
	return p
}

type ChecklistItemView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Note      string `json:"note,omitempty"`
	Important bool   `json:"important,omitempty"`
	Custom    bool   `json:"custom,omitempty"`
	Checked   bool   `json:"checked"`
}

type ChecklistCategoryView struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Emoji       string              `json:"emoji"`
	Description string              `json:"description"`
	Expanded    bool                `json:"expanded"`
	Progress    Progress            `json:"progress"`
	Items       []ChecklistItemView `json:"items"`
}

type ChecklistView struct {
	LoggedIn   bool                    `json:"loggedIn"`
	Username   string                  `json:"username,omitempty"`
	Progress   Progress                `json:"progress"`
	Categories []ChecklistCategoryView `json:"categories"`
}
