package types

import sdkmath "cosmossdk.io/math"

// Token is the persisted record for one deployed interchain token
// contract: its owner (always ITS in practice) and its static metadata.
// The minter set, balances and allowances live in their own keyed buckets
// rather than embedded here, the way a token contract keeps per-holder
// storage separate from its instance config.
type Token struct {
	Owner    []byte
	Name     string
	Symbol   string
	Decimals uint8
}

func (t Token) Marshal() []byte {
	out := make([]byte, 0, len(t.Owner)+1+len(t.Name)+1+len(t.Symbol)+1+1)
	out = append(out, byte(len(t.Owner)))
	out = append(out, t.Owner...)
	out = append(out, byte(len(t.Name)))
	out = append(out, t.Name...)
	out = append(out, byte(len(t.Symbol)))
	out = append(out, t.Symbol...)
	out = append(out, t.Decimals)
	return out
}

func UnmarshalToken(bz []byte) (Token, bool) {
	var t Token
	if len(bz) < 1 {
		return t, false
	}
	n := int(bz[0])
	bz = bz[1:]
	if len(bz) < n {
		return t, false
	}
	t.Owner = append([]byte(nil), bz[:n]...)
	bz = bz[n:]

	if len(bz) < 1 {
		return t, false
	}
	n = int(bz[0])
	bz = bz[1:]
	if len(bz) < n {
		return t, false
	}
	t.Name = string(bz[:n])
	bz = bz[n:]

	if len(bz) < 1 {
		return t, false
	}
	n = int(bz[0])
	bz = bz[1:]
	if len(bz) < n {
		return t, false
	}
	t.Symbol = string(bz[:n])
	bz = bz[n:]

	if len(bz) < 1 {
		return t, false
	}
	t.Decimals = bz[0]
	return t, true
}

// Allowance is the persisted spender grant: an amount valid only through
// a ledger (block) height, past which it reads as zero.
type Allowance struct {
	Amount           sdkmath.Int
	ExpirationLedger uint64
}

// Expired reports whether the allowance is no longer usable at the given
// ledger height. A zero-value (never-granted) allowance is expired.
func (a Allowance) Expired(currentLedger uint64) bool {
	return a.Amount.IsNil() || currentLedger > a.ExpirationLedger
}
