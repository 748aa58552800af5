package types

import sdk "github.com/cosmos/cosmos-sdk/types"

const (
	EventTypeUpgraded = "upgraded"

	AttributeKeyVersion = "version"
)

func NewEventUpgraded(version string) sdk.Event {
	return sdk.NewEvent(
		EventTypeUpgraded,
		sdk.NewAttribute(AttributeKeyVersion, version),
	)
}
