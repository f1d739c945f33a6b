package contract

import "math"

// -----------------------------------------------------------------------------
// Contract + DAO lifecycle
// -----------------------------------------------------------------------------

// ContractInit bootstraps the contract once, recording the deploying account
// as the global owner. Repeat calls trap.
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		abortMsg("contract already initialized")
	}
	owner := getSenderAddress()
	saveContractConfig(&ContractConfig{Owner: owner})
	emitContractInit(owner)
	return strptr("ok")
}

// DaoInit carves out a new DAO scope with sequential id, the sender as admin
// and the payload's stake thresholds. Returns the id as decimal text.
// Example payload: {"name":"gardeners","min_stake_to_join":100,"min_stake_to_propose":500}
//
//go:wasmexport dao_init
func DaoInit(payload *string) *string {
	requireInitialized()
	args := decodeDaoInitArgs(requirePayload(payload))
	if args.Name == "" {
		abortMsg("dao name must not be empty")
	}

	id := getCount(DaosCount)
	sender := getSenderAddress()
	dao := &DaoRecord{
		ID:        id,
		Name:      args.Name,
		Admin:     sender,
		CreatedAt: nowUnix(),
	}
	saveDao(dao)
	saveMembershipConfig(id, &MembershipConfig{
		MinStakeToJoin:    args.MinStakeToJoin,
		MinStakeToPropose: args.MinStakeToPropose,
	})
	saveVault(id, &Vault{})
	setCount(DaosCount, id+1)

	emitDaoCreated(id, args.Name, sender)
	return strptr(UInt64ToString(id))
}

// SetActivityHook points the contract at an activity/XP collaborator.
// Owner only; an empty payload id disables the hook.
// Example payload: {"contract_id":"contract:activity"}
//
//go:wasmexport activity_hook_set
func SetActivityHook(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()
	if !isContractOwner(sender) {
		revertWith("caller is not the contract owner", symNotAdmin)
	}
	id := ""
	if payload != nil && *payload != "" {
		id = decodeHookArgs(*payload)
	}
	setActivityHook(id)
	return strptr("ok")
}

// amountToInt64 bridges ledger amounts to the signed host transfer api.
func amountToInt64(a Amount) int64 {
	if uint64(a) > uint64(math.MaxInt64) {
		abortMsg("amount exceeds transferable range")
	}
	return int64(a)
}
