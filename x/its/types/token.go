package types

import "unicode"

// TokenManagerType distinguishes a token ITS deployed and mints directly
// from a pre-existing token ITS merely escrows.
type TokenManagerType byte

const (
	NativeInterchainToken TokenManagerType = iota
	LockUnlock
)

// TokenIdConfig is the persisted record binding a token id to its deployed
// token contract, its token manager, and the manager type. Denom carries the
// underlying bank denom a LockUnlock manager escrows; it is empty for
// NativeInterchainToken, whose balances live in x/interchaintoken instead.
type TokenIdConfig struct {
	TokenAddress [32]byte
	TokenManager [32]byte
	ManagerType  TokenManagerType
	Denom        string
}

func (c TokenIdConfig) Marshal() []byte {
	out := make([]byte, 65, 65+len(c.Denom))
	copy(out[0:32], c.TokenAddress[:])
	copy(out[32:64], c.TokenManager[:])
	out[64] = byte(c.ManagerType)
	out = append(out, []byte(c.Denom)...)
	return out
}

func UnmarshalTokenIdConfig(bz []byte) (TokenIdConfig, bool) {
	if len(bz) < 65 {
		return TokenIdConfig{}, false
	}
	var c TokenIdConfig
	copy(c.TokenAddress[:], bz[0:32])
	copy(c.TokenManager[:], bz[32:64])
	c.ManagerType = TokenManagerType(bz[64])
	c.Denom = string(bz[65:])
	return c, true
}

// TokenMetadata is the name/symbol/decimals triple validated before any
// token deployment or remote-deployment framing.
type TokenMetadata struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// Validate enforces the bounds remote deployments expect: nonempty
// name and symbol, each at most 32 characters and pure ASCII. Decimals is a
// uint8 already, so it cannot exceed 255 by construction.
func (m TokenMetadata) Validate() error {
	if !validASCIIField(m.Name) {
		return ErrInvalidTokenName
	}
	if !validASCIIField(m.Symbol) {
		return ErrInvalidTokenSymbol
	}
	return nil
}

func validASCIIField(s string) bool {
	if len(s) == 0 || len(s) > 32 {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
