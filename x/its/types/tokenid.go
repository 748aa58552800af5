package types

import "github.com/axelar-network/interchain-go/crypto"

// ZeroDeployer is the sentinel deployer identity used for canonical token
// registrations, which have no real deployer.
var ZeroDeployer = [32]byte{}

// ChainNameHash identifies a chain name for use in canonical token ids.
func ChainNameHash(chainName string) [32]byte {
	return crypto.Keccak256([]byte(chainName))
}

// InterchainTokenID derives a token id from a deployer identity and a
// caller-chosen salt. deployer is ZeroDeployer for canonical registrations.
func InterchainTokenID(deployer [32]byte, salt [32]byte) [32]byte {
	return crypto.Keccak256([]byte("its-interchain-token-id"), deployer[:], salt[:])
}

// CanonicalInterchainTokenID derives the token id for a pre-existing token
// wrapped via lock-unlock, keyed by the local chain name and the token's
// address so it is reproducible without a deployer-chosen salt.
func CanonicalInterchainTokenID(chainName string, tokenAddress [32]byte) [32]byte {
	chainHash := ChainNameHash(chainName)
	salt := crypto.Keccak256([]byte("canonical-token-salt"), chainHash[:], tokenAddress[:])
	return InterchainTokenID(ZeroDeployer, salt)
}

// InterchainTokenSalt derives the deterministic deployment salt for a
// token id's token contract.
func InterchainTokenSalt(tokenID [32]byte) [32]byte {
	return crypto.Keccak256([]byte("its-interchain-token-salt"), tokenID[:])
}

// TokenManagerSalt derives the deterministic deployment salt for a token
// id's token manager contract.
func TokenManagerSalt(tokenID [32]byte) [32]byte {
	return crypto.Keccak256([]byte("its-token-manager-salt"), tokenID[:])
}
