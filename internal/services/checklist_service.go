package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"fuji-trip/tripmap/internal/auth"
	"fuji-trip/tripmap/internal/checklist"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/models/dtos"
	"fuji-trip/tripmap/internal/models/entities"
)

// ChecklistService manages per-user check state and custom items. State
// is read from the stores on every call; nothing is held in memory.
type ChecklistService struct {
	stores ChecklistStores
	now    func() time.Time
}

func NewChecklistService(stores ChecklistStores) *ChecklistService {
	return &ChecklistService{
		stores: stores,
		now:    time.Now,
	}
}

func requireUser(session *auth.Session) (string, error) {
	if !session.IsLoggedIn() {
		return "", ErrLoginRequired
	}
	return session.Username, nil
}

func (svc *ChecklistService) loadStates(ctx context.Context, user string) map[string]bool {
	states, err := svc.stores.CheckStates(user).Load(ctx)
	if err != nil {
		logging.Warn("Checklist state unavailable, showing unchecked", "user", user, "error", err.Error())
		return map[string]bool{}
	}
	return states
}

// customItems returns the user's items ordered by creation.
func (svc *ChecklistService) customItems(ctx context.Context, user string) []entities.CustomChecklistItem {
	items, err := svc.stores.CustomItems(user).Load(ctx)
	if err != nil {
		logging.Warn("Custom checklist items unavailable", "user", user, "error", err.Error())
		return nil
	}

	out := make([]entities.CustomChecklistItem, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// View builds the checklist for a session. Anonymous sessions see the
// catalog with nothing checked.
func (svc *ChecklistService) View(ctx context.Context, session *auth.Session) dtos.ChecklistView {
	var states map[string]bool
	var custom []entities.CustomChecklistItem

	view := dtos.ChecklistView{}
	if session.IsLoggedIn() {
		view.LoggedIn = true
		view.Username = session.Username
		states = svc.loadStates(ctx, session.Username)
		custom = svc.customItems(ctx, session.Username)
	}

	byCategory := make(map[string][]entities.CustomChecklistItem)
	for _, item := range custom {
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	totalChecked, total := 0, 0
	for _, cat := range checklist.Categories() {
		cv := dtos.ChecklistCategoryView{
			ID:          cat.ID,
			Title:       cat.Title,
			Emoji:       cat.Emoji,
			Description: cat.Description,
		}
		if session != nil {
			cv.Expanded = session.View.IsExpanded(cat.ID)
		}

		for _, item := range cat.Items {
			cv.Items = append(cv.Items, dtos.ChecklistItemView{
				ID:        item.ID,
				Name:      item.Name,
				Note:      item.Note,
				Important: item.Important,
				Checked:   states[item.ID],
			})
		}
		for _, item := range byCategory[cat.ID] {
			cv.Items = append(cv.Items, dtos.ChecklistItemView{
				ID:      item.ID,
				Name:    item.Name,
				Note:    item.Note,
				Custom:  true,
				Checked: states[item.ID],
			})
		}

		checked := 0
		for _, item := range cv.Items {
			if item.Checked {
				checked++
			}
		}
		cv.Progress = dtos.NewProgress(checked, len(cv.Items))
		totalChecked += checked
		total += len(cv.Items)

		view.Categories = append(view.Categories, cv)
	}
	view.Progress = dtos.NewProgress(totalChecked, total)

	return view
}

func (svc *ChecklistService) findCustom(ctx context.Context, user, itemID string) (entities.CustomChecklistItem, bool) {
	for _, item := range svc.customItems(ctx, user) {
		if item.ID == itemID {
			return item, true
		}
	}
	return entities.CustomChecklistItem{}, false
}

// Toggle flips one item for the session's user and returns the new state.
func (svc *ChecklistService) Toggle(ctx context.Context, session *auth.Session, itemID string) (bool, error) {
	user, err := requireUser(session)
	if err != nil {
		return false, err
	}

	if !checklist.IsBuiltInItem(itemID) {
		if _, ok := svc.findCustom(ctx, user, itemID); !ok {
			return false, fmt.Errorf("item %s: %w", itemID, ErrUnknownItem)
		}
	}

	checked := !svc.loadStates(ctx, user)[itemID]
	if err := svc.stores.CheckStates(user).Save(ctx, itemID, checked); err != nil {
		return false, fmt.Errorf("save check state: %w", err)
	}

	logging.Info("Checklist item toggled", "user", user, "item_id", itemID, "checked", checked)
	return checked, nil
}

// AddCustomItem creates an item in a built-in category.
func (svc *ChecklistService) AddCustomItem(ctx context.Context, session *auth.Session, categoryID, name, note string) (entities.CustomChecklistItem, error) {
	user, err := requireUser(session)
	if err != nil {
		return entities.CustomChecklistItem{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return entities.CustomChecklistItem{}, ErrEmptyName
	}
	if _, ok := checklist.Category(categoryID); !ok {
		return entities.CustomChecklistItem{}, fmt.Errorf("category %s: %w", categoryID, ErrUnknownCategory)
	}

	existing := make(map[string]bool)
	for _, item := range svc.customItems(ctx, user) {
		existing[item.ID] = true
	}
	millis := svc.now().UnixMilli()
	id := fmt.Sprintf("custom-%s-%d", user, millis)
	for existing[id] {
		millis++
		id = fmt.Sprintf("custom-%s-%d", user, millis)
	}

	item := entities.CustomChecklistItem{
		ID:         id,
		CategoryID: categoryID,
		Name:       name,
		Note:       strings.TrimSpace(note),
	}
	if err := svc.stores.CustomItems(user).Save(ctx, item.ID, item); err != nil {
		return entities.CustomChecklistItem{}, fmt.Errorf("save custom item: %w", err)
	}

	logging.Info("Custom checklist item added", "user", user, "item_id", item.ID, "category_id", categoryID)
	return item, nil
}

// DeleteCustomItem removes one of the user's items together with its
// check state.
func (svc *ChecklistService) DeleteCustomItem(ctx context.Context, session *auth.Session, itemID string) error {
	user, err := requireUser(session)
	if err != nil {
		return err
	}

	if _, ok := svc.findCustom(ctx, user, itemID); !ok {
		return fmt.Errorf("item %s: %w", itemID, ErrUnknownItem)
	}

	if err := svc.stores.CustomItems(user).Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete custom item: %w", err)
	}
	if err := svc.stores.CheckStates(user).Delete(ctx, itemID); err != nil {
		// The item is gone; an orphaned check state is never displayed.
		logging.Warn("Check state cleanup failed", "user", user, "item_id", itemID, "error", err.Error())
	}

	logging.Info("Custom checklist item deleted", "user", user, "item_id", itemID)
	return nil
}

// ResetAll unchecks every built-in and custom item of the user in one batch.
func (svc *ChecklistService) ResetAll(ctx context.Context, session *auth.Session) error {
	user, err := requireUser(session)
	if err != nil {
		return err
	}

	reset := make(map[string]bool)
	for _, id := range checklist.BuiltInItemIDs() {
		reset[id] = false
	}
	for _, item := range svc.customItems(ctx, user) {
		reset[item.ID] = false
	}

	if err := svc.stores.CheckStates(user).SaveAll(ctx, reset); err != nil {
		return fmt.Errorf("reset checklist: %w", err)
	}

	logging.Info("Checklist reset", "user", user, "items", len(reset))
	return nil
}
