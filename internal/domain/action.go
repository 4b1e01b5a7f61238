package domain

import "fmt"

// OwnerAction is the closed set of state actions an initiator may request.
type OwnerAction interface {
	fmt.Stringer
	ownerAction()
}

type (
	SendToReview struct{}
	CancelReview struct{}
)

func (SendToReview) ownerAction() {}
func (SendToReview) String() string { return "SEND_TO_REVIEW" }
func (CancelReview) ownerAction() {}
func (CancelReview) String() string { return "CANCEL_REVIEW" }

// AdminAction is the closed set of moderation actions.
type AdminAction interface {
	fmt.Stringer
	adminAction()
}

type (
	PublishEvent struct{}
	RejectEvent  struct{}
)

func (PublishEvent) adminAction() {}
func (PublishEvent) String() string { return "PUBLISH_EVENT" }
func (RejectEvent) adminAction() {}
func (RejectEvent) String() string { return "REJECT_EVENT" }

// ParseOwnerAction returns nil for an empty token.
func ParseOwnerAction(token string) (OwnerAction, error) {
	switch token {
	case "":
		return nil, nil
	case SendToReview{}.String():
		return SendToReview{}, nil
	case CancelReview{}.String():
		return CancelReview{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStateAction, token)
	}
}

// ParseAdminAction returns nil for an empty token.
func ParseAdminAction(token string) (AdminAction, error) {
	switch token {
	case "":
		return nil, nil
	case PublishEvent{}.String():
		return PublishEvent{}, nil
	case RejectEvent{}.String():
		return RejectEvent{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStateAction, token)
	}
}
