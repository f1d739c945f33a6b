////////////////////////////////////////////////////////////////////////////////
// VaultDAO: staking-backed membership and voting for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	_ "vaultdao/contract"
)

// The wasm exports live in the contract package; linking it is all the
// entrypoint has to do.
func main() {}
