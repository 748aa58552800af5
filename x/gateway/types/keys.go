package types

const ModuleName = "gateway"

var (
	KeyDomainSeparator       = []byte{0x01}
	KeyMinimumRotationDelay  = []byte{0x02}
	KeyPreviousRetention     = []byte{0x03}
	KeyCurrentEpoch          = []byte{0x04}
	KeyLastRotationTimestamp = []byte{0x05}

	// KeyPrefixEpochToHash + big-endian epoch -> signers hash.
	KeyPrefixEpochToHash = []byte{0x10}
	// KeyPrefixHashToEpoch + signers hash -> big-endian epoch.
	KeyPrefixHashToEpoch = []byte{0x11}
	// KeyPrefixApproval + source_chain + 0x00 + message_id -> approval state.
	KeyPrefixApproval = []byte{0x12}
)
