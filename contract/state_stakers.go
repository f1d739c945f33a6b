package contract

import (
	"strconv"

	"vaultdao/sdk"
)

// -----------------------------------------------------------------------------
// Staker profile + per-DAO stake entries (the authoritative ledger)
// -----------------------------------------------------------------------------

func saveStakerProfile(addr sdk.Address, p *StakerProfile) {
	sdk.StateSetObject(stakerProfileKey(addr), string(EncodeStakerProfile(p)))
}

// loadStakerProfile returns nil when the account never staked anywhere.
// Profiles are created lazily and never deleted, so a zeroed record may
// legitimately remain after a full unstake.
func loadStakerProfile(addr sdk.Address) *StakerProfile {
	ptr := sdk.StateGetObject(stakerProfileKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	p, err := DecodeStakerProfile([]byte(*ptr))
	if err != nil {
		abortMsg("failed to decode staker profile")
	}
	return p
}

func saveStakeEntry(daoID uint64, addr sdk.Address, e *StakeEntry) {
	sdk.StateSetObject(stakeEntryKey(daoID, addr), string(EncodeStakeEntry(e)))
}

func loadStakeEntry(daoID uint64, addr sdk.Address) *StakeEntry {
	ptr := sdk.StateGetObject(stakeEntryKey(daoID, addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	e, err := DecodeStakeEntry([]byte(*ptr))
	if err != nil {
		abortMsg("failed to decode stake entry")
	}
	return e
}

// deleteStakeEntry prunes a position that reached exactly zero.
func deleteStakeEntry(daoID uint64, addr sdk.Address) {
	sdk.StateDeleteObject(stakeEntryKey(daoID, addr))
}

// stakedBalance is the ledger-side balance, zero when the entry is pruned.
func stakedBalance(daoID uint64, addr sdk.Address) Amount {
	if e := loadStakeEntry(daoID, addr); e != nil {
		return e.Balance
	}
	return 0
}

// -----------------------------------------------------------------------------
// Staker registry (denormalized per-DAO mirror)
// -----------------------------------------------------------------------------

// The registry duplicates the ledger balances purely for O(1) per-DAO
// aggregate reads and is maintained by hand at every mutation site. Entries
// are decimal strings, same as every other counter in this contract.

// registryAmount reads the denormalized counter; the bool reports presence
// so callers can tell "absent" from "zero".
func registryAmount(daoID uint64, addr sdk.Address) (Amount, bool) {
	ptr := sdk.StateGetObject(registryEntryKey(daoID, addr))
	if ptr == nil || *ptr == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		abortMsg("failed to decode registry entry")
	}
	return Amount(n), true
}

func setRegistryAmount(daoID uint64, addr sdk.Address, amount Amount) {
	sdk.StateSetObject(registryEntryKey(daoID, addr), strconv.FormatUint(uint64(amount), 10))
}

func deleteRegistryEntry(daoID uint64, addr sdk.Address) {
	sdk.StateDeleteObject(registryEntryKey(daoID, addr))
}

func totalStakers(daoID uint64) uint64 {
	return getCount(totalStakersKey(daoID))
}

func setTotalStakers(daoID uint64, n uint64) {
	setCount(totalStakersKey(daoID), n)
}
