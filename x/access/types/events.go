package types

import sdk "github.com/cosmos/cosmos-sdk/types"

const (
	EventTypeOwnershipTransferred    = "ownership_transferred"
	EventTypeOperatorshipTransferred = "operatorship_transferred"
	EventTypePaused                  = "paused"
	EventTypeUnpaused                = "unpaused"

	AttributeKeyPrevious = "previous"
	AttributeKeyNew      = "new"
)

func NewEventOwnershipTransferred(previous, next sdk.AccAddress) sdk.Event {
	return sdk.NewEvent(
		EventTypeOwnershipTransferred,
		sdk.NewAttribute(AttributeKeyPrevious, previous.String()),
		sdk.NewAttribute(AttributeKeyNew, next.String()),
	)
}

func NewEventOperatorshipTransferred(previous, next sdk.AccAddress) sdk.Event {
	return sdk.NewEvent(
		EventTypeOperatorshipTransferred,
		sdk.NewAttribute(AttributeKeyPrevious, previous.String()),
		sdk.NewAttribute(AttributeKeyNew, next.String()),
	)
}

func NewEventPaused() sdk.Event {
	return sdk.NewEvent(EventTypePaused)
}

func NewEventUnpaused() sdk.Event {
	return sdk.NewEvent(EventTypeUnpaused)
}
