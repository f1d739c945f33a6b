package contract

import "vaultdao/sdk"

// -----------------------------------------------------------------------------
// Member rows + enumeration index
// -----------------------------------------------------------------------------

func saveMemberRow(daoID uint64, m *MemberRow) {
	sdk.StateSetObject(memberKey(daoID, m.Address), string(EncodeMemberRow(m)))
}

func loadMemberRow(daoID uint64, addr sdk.Address) (*MemberRow, bool) {
	ptr := sdk.StateGetObject(memberKey(daoID, addr))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	m, err := DecodeMemberRow([]byte(*ptr))
	if err != nil {
		abortMsg("failed to decode member row")
	}
	return m, true
}

func deleteMemberRow(daoID uint64, addr sdk.Address) {
	sdk.StateDeleteObject(memberKey(daoID, addr))
}

func totalMembers(daoID uint64) uint64 {
	return getCount(totalMembersKey(daoID))
}

func setTotalMembers(daoID uint64, n uint64) {
	setCount(totalMembersKey(daoID), n)
}

// memberAddresses returns the enumerable index so get_all_member_addresses
// stays a single read.
func memberAddresses(daoID uint64) []sdk.Address {
	ptr := sdk.StateGetObject(memberIndexKey(daoID))
	if ptr == nil || *ptr == "" {
		return []sdk.Address{}
	}
	addrs, err := DecodeAddressList([]byte(*ptr))
	if err != nil {
		abortMsg("failed to decode member index")
	}
	return addrs
}

// addMemberToIndex appends the address, skipping duplicates.
func addMemberToIndex(daoID uint64, addr sdk.Address) {
	addrs := memberAddresses(daoID)
	for _, a := range addrs {
		if a == addr {
			return
		}
	}
	addrs = append(addrs, addr)
	sdk.StateSetObject(memberIndexKey(daoID), string(EncodeAddressList(addrs)))
}

// removeMemberFromIndex drops the address if present.
func removeMemberFromIndex(daoID uint64, addr sdk.Address) {
	addrs := memberAddresses(daoID)
	kept := addrs[:0]
	found := false
	for _, a := range addrs {
		if a == addr {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if found {
		sdk.StateSetObject(memberIndexKey(daoID), string(EncodeAddressList(kept)))
	}
}
