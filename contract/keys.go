package contract

import "vaultdao/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// daoKey builds the storage key for a DaoRecord by id.
func daoKey(id uint64) string {
	var buf [9]byte
	buf[0] = kDaoRecord
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// membershipConfigKey uses prefix 0x02 so configs sit next to the DAO record without colliding.
func membershipConfigKey(id uint64) string {
	var buf [9]byte
	buf[0] = kMembershipConfig
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// vaultKey sits in prefix 0x03 for quick escrow lookups.
func vaultKey(id uint64) string {
	var buf [9]byte
	buf[0] = kVault
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// memberKey mixes dao id plus address bytes to avoid nested maps in host storage.
func memberKey(daoID uint64, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kMember)
	buf = packU64LE(daoID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// memberIndexKey points at the enumerable address list for a DAO.
func memberIndexKey(daoID uint64) string {
	var buf [9]byte
	buf[0] = kMemberIndex
	packU64LEInline(daoID, buf[1:])
	return string(buf[:])
}

// stakerProfileKey is account scoped, one per account across all DAOs.
func stakerProfileKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kStakerProfile)
	buf = append(buf, addrStr...)
	return string(buf)
}

// stakeEntryKey addresses the per-account per-DAO position.
func stakeEntryKey(daoID uint64, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kStakeEntry)
	buf = packU64LE(daoID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// registryEntryKey mirrors stake entries under the registry prefix.
func registryEntryKey(daoID uint64, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kRegistryEntry)
	buf = packU64LE(daoID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// voteKey encodes dao and vote id under the 0x20 prefix keeping a DAO's votes contiguous.
func voteKey(daoID, voteID uint64) string {
	var buf [17]byte
	buf[0] = kVote
	packU64LEInline(daoID, buf[1:9])
	packU64LEInline(voteID, buf[9:])
	return string(buf[:])
}

// ballotKey stores one receipt per voter per vote.
func ballotKey(daoID, voteID uint64, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+8+8+len(addrStr))
	buf = append(buf, kBallot)
	buf = packU64LE(daoID, buf)
	buf = packU64LE(voteID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// voteCountKey holds the per-DAO sequential vote id counter.
func voteCountKey(daoID uint64) string {
	return "count:v:" + UInt64ToString(daoID)
}

// totalMembersKey holds the per-DAO member counter.
func totalMembersKey(daoID uint64) string {
	return "count:mem:" + UInt64ToString(daoID)
}

// totalStakersKey holds the per-DAO registry size counter.
func totalStakersKey(daoID uint64) string {
	return "count:stakers:" + UInt64ToString(daoID)
}
