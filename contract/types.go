package contract

import "vaultdao/sdk"

// Amount is an unsigned staked-value quantity in raw ledger units. All
// mutations go through the checked helpers in safemath.go, never plain
// operators, so balances cannot wrap.
type Amount uint64

// ContractConfig is the one global record written by contract_init.
type ContractConfig struct {
	Owner sdk.Address
}

// DaoRecord scopes every other piece of state. The admin is the account that
// initialized staking for the DAO and bypasses membership predicates.
type DaoRecord struct {
	ID        uint64
	Name      string
	Admin     sdk.Address
	CreatedAt int64
}

// MembershipConfig holds the per-DAO stake thresholds. Set at dao_init,
// mutable by the admin afterwards.
type MembershipConfig struct {
	MinStakeToJoin    Amount
	MinStakeToPropose Amount
}

// Vault mirrors the contract-held escrow for one DAO. Its balance must equal
// the sum of all staked balances for that DAO at all times.
type Vault struct {
	Balance Amount
}

// StakerProfile is the per-account aggregate, created lazily on first stake
// anywhere and never deleted. TotalStaked sums the account's balances across
// all DAOs.
type StakerProfile struct {
	TotalStaked Amount
}

// StakeEntry is the per-account per-DAO position. LastStakeTime refreshes on
// every top-up, which re-arms the unstake cooldown for the whole balance.
// The entry is pruned when the balance reaches exactly zero.
type StakeEntry struct {
	Balance       Amount
	LastStakeTime int64
}

// MemberRow is the stored membership hint. Presence alone does not make an
// account a member: is_member re-checks live stake against the join
// threshold on every call.
type MemberRow struct {
	Address  sdk.Address
	JoinedAt int64
}

// Vote is one yes/no proposal in a DAO's append-only vote list.
type Vote struct {
	ID          uint64
	Title       string
	Description string
	StartTime   int64
	EndTime     int64
	YesTotal    Amount
	NoTotal     Amount
	VoterCount  uint64
	Completed   bool
}

// Ballot records a cast vote. Amount snapshots the voter's registry counter
// at cast time; later stake changes never touch it.
type Ballot struct {
	Amount    Amount
	Timestamp int64
	Yes       bool
}

// -----------------------------------------------------------------------------
// Call payloads
// -----------------------------------------------------------------------------

type DaoInitArgs struct {
	Name              string
	MinStakeToJoin    Amount
	MinStakeToPropose Amount
}

type StakeArgs struct {
	DaoID  uint64
	Amount Amount
}

type DaoArgs struct {
	DaoID uint64
}

type AccountArgs struct {
	DaoID   uint64
	Account sdk.Address
}

type ThresholdArgs struct {
	DaoID  uint64
	Amount Amount
}

type CreateVoteArgs struct {
	DaoID       uint64
	Title       string
	Description string
	StartTime   int64
	EndTime     int64
}

type CastVoteArgs struct {
	DaoID  uint64
	VoteID uint64
	Yes    bool
}

type VoteTargetArgs struct {
	DaoID  uint64
	VoteID uint64
}

type BallotArgs struct {
	DaoID   uint64
	VoteID  uint64
	Account sdk.Address
}

// AddressFromString converts a human string to the platform address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }
