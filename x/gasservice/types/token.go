package types

import sdkmath "cosmossdk.io/math"

// Token is the gas-payment asset: a bank denom plus an amount. The
// concrete token implementation is an external collaborator; here it is
// whatever denom the host chain's bank keeper already accounts for.
type Token struct {
	Denom  string
	Amount sdkmath.Int
}

func (t Token) Validate() error {
	if t.Amount.IsNil() || !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
