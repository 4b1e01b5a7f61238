// Package lifecycle holds the moderation state machine of an event and the
// rules for which fields may change in which state. Functions here are pure:
// they operate on a loaded event and never touch storage.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
)

// MinLeadTime is how far in the future an event date must be.
const MinLeadTime = 2 * time.Hour

func ValidateEventDate(date, now time.Time) error {
	if date.Before(now.Add(MinLeadTime)) {
		return fmt.Errorf("%w: %s must be at least %s after %s",
			domain.ErrEventDateTooSoon,
			date.UTC().Format(time.DateTime), MinLeadTime, now.UTC().Format(time.DateTime),
		)
	}
	return nil
}

// ApplyOwnerEdit applies an initiator's edit. On error the event is left untouched.
func ApplyOwnerEdit(e *domain.Event, edit domain.OwnerEdit, actingUserID string, now time.Time) error {
	if actingUserID != e.InitiatorID {
		return domain.ErrNotInitiator
	}
	if e.State == domain.EventStatePublished {
		return domain.ErrEventPublished
	}

	next := *e
	if err := applyPatch(&next, edit.Patch, now); err != nil {
		return err
	}

	switch edit.Action.(type) {
	case nil:
	case domain.SendToReview:
		next.State = domain.EventStatePending
	case domain.CancelReview:
		next.State = domain.EventStateCanceled
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownStateAction, edit.Action)
	}

	*e = next
	return nil
}

// ApplyAdminEdit applies a moderator's edit. On error the event is left untouched.
func ApplyAdminEdit(e *domain.Event, edit domain.AdminEdit, now time.Time) error {
	next := *e

	switch edit.Action.(type) {
	case nil:
	case domain.PublishEvent:
		if e.State != domain.EventStatePending {
			return fmt.Errorf("%w: state is %s", domain.ErrEventNotPending, e.State)
		}
		published := now
		next.State = domain.EventStatePublished
		next.PublishedOn = &published
	case domain.RejectEvent:
		if e.State == domain.EventStatePublished {
			return domain.ErrEventAlreadyPublished
		}
		next.State = domain.EventStateCanceled
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownStateAction, edit.Action)
	}

	if err := applyPatch(&next, edit.Patch, now); err != nil {
		return err
	}

	*e = next
	return nil
}

func applyPatch(e *domain.Event, p domain.EventPatch, now time.Time) error {
	if p.EventDate != nil {
		if err := ValidateEventDate(*p.EventDate, now); err != nil {
			return err
		}
		e.EventDate = *p.EventDate
	}
	if p.ParticipantLimit != nil {
		if *p.ParticipantLimit < 0 {
			return fmt.Errorf("%w: %d", domain.ErrNegativeLimit, *p.ParticipantLimit)
		}
		e.ParticipantLimit = *p.ParticipantLimit
	}

	setText(&e.Title, p.Title)
	setText(&e.Annotation, p.Annotation)
	setText(&e.Description, p.Description)
	setText(&e.CategoryID, p.CategoryID)

	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Paid != nil {
		e.Paid = *p.Paid
	}
	if p.RequestModeration != nil {
		e.RequestModeration = *p.RequestModeration
	}

	return nil
}

// blank strings count as absent
func setText(dst *string, src *string) {
	if src == nil || strings.TrimSpace(*src) == "" {
		return
	}
	*dst = *src
}
