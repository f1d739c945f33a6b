package contract

import "vaultdao/sdk"

// -----------------------------------------------------------------------------
// Registry sync validation + repair
// -----------------------------------------------------------------------------

// stakerInSync compares the ledger balance against the registry mirror for
// one account. Absent-vs-absent counts as in sync; an absent mirror with a
// live balance (or the reverse) does not.
func stakerInSync(daoID uint64, addr sdk.Address) bool {
	ledger := stakedBalance(daoID, addr)
	mirror, present := registryAmount(daoID, addr)
	if !present {
		return ledger == 0
	}
	return mirror == ledger
}

// RepairStakerSync force-aligns the registry mirror with the ledger for one
// account. Admin only; this is the recovery path for drift that should never
// happen through normal operation.
// Example payload: {"dao_id":0,"account":"hive:bob"}
//
//go:wasmexport sync_repair
func RepairStakerSync(payload *string) *string {
	requireInitialized()
	args := decodeAccountArgs(requirePayload(payload))
	dao := mustLoadDao(args.DaoID)
	requireAdmin(dao, getSenderAddress())

	ledger := stakedBalance(dao.ID, args.Account)
	_, present := registryAmount(dao.ID, args.Account)

	if ledger == 0 {
		if present {
			deleteRegistryEntry(dao.ID, args.Account)
			if n := totalStakers(dao.ID); n > 0 {
				setTotalStakers(dao.ID, n-1)
			}
		}
	} else {
		if !present {
			setTotalStakers(dao.ID, totalStakers(dao.ID)+1)
		}
		setRegistryAmount(dao.ID, args.Account, ledger)
	}

	emitSyncRepaired(dao.ID, args.Account, ledger)
	return strptr("ok")
}
