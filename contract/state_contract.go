package contract

import (
	"strings"

	"vaultdao/sdk"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		abortMsg("contract not initialized")
	}
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeContractConfig(*ptr)
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, encodeContractConfig(cfg))
}

// isContractOwner returns true if the given address is the contract owner.
func isContractOwner(addr sdk.Address) bool {
	cfg := loadContractConfig()
	return cfg != nil && cfg.Owner == addr
}

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: owner
func encodeContractConfig(cfg *ContractConfig) string {
	return cfg.Owner.String()
}

// decodeContractConfig deserializes the pipe-delimited string back.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 1 || parts[0] == "" {
		return nil
	}
	return &ContractConfig{Owner: AddressFromString(parts[0])}
}

// -----------------------------------------------------------------------------
// Activity Hook State
// -----------------------------------------------------------------------------

// activityHook returns the configured activity contract id, empty when the
// side channel is disabled.
func activityHook() string {
	ptr := sdk.StateGetObject(ActivityHookKey)
	if ptr == nil {
		return ""
	}
	return *ptr
}

// setActivityHook stores (or clears) the collaborator contract id.
func setActivityHook(contractId string) {
	if contractId == "" {
		sdk.StateDeleteObject(ActivityHookKey)
		return
	}
	sdk.StateSetObject(ActivityHookKey, contractId)
}
