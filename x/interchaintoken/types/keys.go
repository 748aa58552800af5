package types

const ModuleName = "interchaintoken"

var (
	// KeyPrefixToken + token_address -> Token (owner, metadata).
	KeyPrefixToken = []byte{0x01}
	// KeyPrefixMinter + token_address + minter -> presence marker.
	KeyPrefixMinter = []byte{0x02}
	// KeyPrefixBalance + token_address + holder -> i128 balance.
	KeyPrefixBalance = []byte{0x03}
	// KeyPrefixAllowance + token_address + len(owner) + owner + spender ->
	// Allowance.
	KeyPrefixAllowance = []byte{0x04}
)
