package services

import (
	"context"
	"fmt"

	"fuji-trip/tripmap/internal/auth"
	"fuji-trip/tripmap/internal/checklist"
	"fuji-trip/tripmap/internal/view"
)

// ViewService applies view transitions to a session. Callers persist the
// session afterwards.
type ViewService struct {
	itinerary *ItineraryService
}

func NewViewService(itinerary *ItineraryService) *ViewService {
	return &ViewService{itinerary: itinerary}
}

func (svc *ViewService) SelectTab(session *auth.Session, tab string) error {
	t, err := view.ParseTab(tab)
	if err != nil {
		return err
	}
	session.View.SelectTab(t)
	return nil
}

// SelectDay filters to one day, or to all days when day is view.AllDays.
func (svc *ViewService) SelectDay(ctx context.Context, session *auth.Session, day int) error {
	if day == view.AllDays {
		session.View.SelectAllDays()
		return nil
	}

	plan, ok := svc.itinerary.Catalog().Day(day)
	if !ok {
		return fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	if len(plan.Events) == 0 {
		session.View.SelectDay(day, nil)
		return nil
	}

	pos, err := svc.itinerary.EffectiveLocation(ctx, plan.Events[0].ID)
	if err != nil {
		return err
	}
	session.View.SelectDay(day, &pos)
	return nil
}

// FilterItinerary narrows the itinerary table without moving the map.
func (svc *ViewService) FilterItinerary(session *auth.Session, day int) error {
	if day != view.AllDays {
		if _, ok := svc.itinerary.Catalog().Day(day); !ok {
			return fmt.Errorf("day %d: %w", day, ErrUnknownDay)
		}
	}
	session.View.FilterItinerary(day)
	return nil
}

// FocusEvent centres the map on the event's effective location.
func (svc *ViewService) FocusEvent(ctx context.Context, session *auth.Session, eventID string) error {
	e, ok := svc.itinerary.Catalog().Event(eventID)
	if !ok {
		return fmt.Errorf("event %s: %w", eventID, ErrUnknownEvent)
	}
	pos, err := svc.itinerary.EffectiveLocation(ctx, eventID)
	if err != nil {
		return err
	}
	session.View.FocusEvent(e.Day, pos)
	return nil
}

func (svc *ViewService) ToggleExpandedEvent(session *auth.Session, eventID string) error {
	if !svc.itinerary.Catalog().HasEvent(eventID) {
		return fmt.Errorf("event %s: %w", eventID, ErrUnknownEvent)
	}
	session.View.ToggleExpandedEvent(eventID)
	return nil
}

func (svc *ViewService) ToggleFlag(session *auth.Session, flag string) error {
	return session.View.ToggleFlag(flag)
}

func (svc *ViewService) ToggleCategory(session *auth.Session, categoryID string) error {
	if _, ok := checklist.Category(categoryID); !ok {
		return fmt.Errorf("category %s: %w", categoryID, ErrUnknownCategory)
	}
	session.View.ToggleCategory(categoryID)
	return nil
}

func (svc *ViewService) ExpandAll(session *auth.Session) {
	ids := make([]string, 0)
	for _, c := range checklist.Categories() {
		ids = append(ids, c.ID)
	}
	session.View.ExpandAll(ids)
}

func (svc *ViewService) CollapseAll(session *auth.Session) {
	session.View.CollapseAll()
}
