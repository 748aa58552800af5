package types

const ModuleName = "access"

var (
	// KeyOwner stores the single sdk.AccAddress holding the owner capability.
	KeyOwner = []byte{0x01}
	// KeyOperator stores the single sdk.AccAddress holding the operator capability.
	KeyOperator = []byte{0x02}
	// KeyPaused stores a single byte marker; its presence means the contract is paused.
	KeyPaused = []byte{0x03}
)
