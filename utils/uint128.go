package utils

import (
	sdkmath "cosmossdk.io/math"
)

const uint128BitLen = 128

// IsValidUint128 reports whether i fits in an unsigned 128-bit integer,
// the width used for signer weights, thresholds and flow limits.
func IsValidUint128(i sdkmath.Int) bool {
	return !i.IsNil() && !i.IsNegative() && i.BigInt().BitLen() <= uint128BitLen
}

// AddUint128 adds a and b, failing ErrUint128Overflow if the sum no longer
// fits in 128 bits. Used for the Σweights check and the
// flow-limit net-flow accounting.
func AddUint128(a, b sdkmath.Int) (sdkmath.Int, error) {
	sum := a.Add(b)
	if !IsValidUint128(sum) {
		return sdkmath.Int{}, ErrUint128Overflow
	}
	return sum, nil
}
