package types

const ModuleName = "gasservice"

// ModuleAddress is where escrowed gas tokens are held pending collect_fees
// or refund, the same role a Cosmos SDK module account plays for x/bank
// escrow balances.
var ModuleAddress = []byte("gasservice_escrow___")
