package contract

import "vaultdao/sdk"

// -----------------------------------------------------------------------------
// DAO scope persistence
// -----------------------------------------------------------------------------

func saveDao(d *DaoRecord) {
	sdk.StateSetObject(daoKey(d.ID), string(EncodeDaoRecord(d)))
}

// loadDao returns nil when the DAO id was never initialized.
func loadDao(id uint64) *DaoRecord {
	ptr := sdk.StateGetObject(daoKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	d, err := DecodeDaoRecord([]byte(*ptr))
	if err != nil {
		abortMsg("failed to decode dao record")
	}
	return d
}

// mustLoadDao reverts with not_found so callers get a symbol, not a trap.
func mustLoadDao(id uint64) *DaoRecord {
	d := loadDao(id)
	if d == nil {
		revertWith("dao not found", symNotFound)
	}
	return d
}

func saveMembershipConfig(daoID uint64, cfg *MembershipConfig) {
	sdk.StateSetObject(membershipConfigKey(daoID), string(EncodeMembershipConfig(cfg)))
}

func loadMembershipConfig(daoID uint64) *MembershipConfig {
	ptr := sdk.StateGetObject(membershipConfigKey(daoID))
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg, err := DecodeMembershipConfig([]byte(*ptr))
	if err != nil {
		abortMsg("failed to decode membership config")
	}
	return cfg
}

func mustLoadMembershipConfig(daoID uint64) *MembershipConfig {
	cfg := loadMembershipConfig(daoID)
	if cfg == nil {
		revertWith("membership config not found", symNotFound)
	}
	return cfg
}

// -----------------------------------------------------------------------------
// Vault persistence
// -----------------------------------------------------------------------------

func saveVault(daoID uint64, v *Vault) {
	sdk.StateSetObject(vaultKey(daoID), string(EncodeVault(v)))
}

// loadVault defaults to an empty escrow so callers can checked-add into it.
func loadVault(daoID uint64) *Vault {
	ptr := sdk.StateGetObject(vaultKey(daoID))
	if ptr == nil || *ptr == "" {
		return &Vault{}
	}
	v, err := DecodeVault([]byte(*ptr))
	if err != nil {
		abortMsg("failed to decode vault")
	}
	return v
}

// isAdmin is the explicit escape hatch consulted first in every membership
// and voting predicate: the DAO admin and the contract owner always pass.
func isAdmin(d *DaoRecord, addr sdk.Address) bool {
	if d.Admin == addr {
		return true
	}
	return isContractOwner(addr)
}

// requireAdmin gates administrative mutations.
func requireAdmin(d *DaoRecord, addr sdk.Address) {
	if !isAdmin(d, addr) {
		revertWith("caller is not the dao admin", symNotAdmin)
	}
}
