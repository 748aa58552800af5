package types

const ModuleName = "upgrade"

var (
	// KeyMigrating stores a single byte marker; its presence means the
	// contract is in the Migrating state.
	KeyMigrating = []byte{0x01}
	// KeyVersion stores the static version string reported by the
	// currently installed code.
	KeyVersion = []byte{0x02}
	// KeyPendingVersion stores the version string of the code an in-flight
	// upgrade will commit to once migrate succeeds.
	KeyPendingVersion = []byte{0x03}
)
