package types

const ModuleName = "its"

var (
	KeyHubChainName = []byte{0x01}
	KeyHubAddress   = []byte{0x02}
	KeyChainName    = []byte{0x03}

	// KeyNativeAssetDenom/Name/Symbol hold the host chain's native asset
	// override: remote canonical deployments report this name/symbol
	// instead of the bank denom metadata when the registered denom matches.
	KeyNativeAssetDenom  = []byte{0x04}
	KeyNativeAssetName   = []byte{0x05}
	KeyNativeAssetSymbol = []byte{0x06}

	// KeyPrefixTrustedChain + chain name -> presence marker.
	KeyPrefixTrustedChain = []byte{0x10}
	// KeyPrefixTokenConfig + token_id -> TokenIdConfig.
	KeyPrefixTokenConfig = []byte{0x11}
	// KeyPrefixFlowLimit + token_id -> i128 limit.
	KeyPrefixFlowLimit = []byte{0x12}
	// KeyPrefixFlowIn/Out + token_id + big-endian epoch -> i128 amount.
	KeyPrefixFlowIn  = []byte{0x13}
	KeyPrefixFlowOut = []byte{0x14}
)

// FlowEpochSeconds is the 6-hour flow-accounting window.
const FlowEpochSeconds = 21600

// ModuleAddress stands in for "the current contract" in the host's
// deterministic deployed-address derivation: every ITS-deployed token and
// token manager address is keccak256(ModuleAddress || salt).
var ModuleAddress = []byte("its_module__________")
