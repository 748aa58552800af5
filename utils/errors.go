package utils

import "errors"

// ErrUint128Overflow is returned by AddUint128 when a sum no longer fits in
// 128 bits.
var ErrUint128Overflow = errors.New("utils: value overflows uint128")
