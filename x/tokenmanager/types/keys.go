package types

const ModuleName = "tokenmanager"

var (
	// KeyPrefixManager + manager_address -> Manager.
	KeyPrefixManager = []byte{0x01}
)
