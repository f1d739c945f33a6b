package contract

import "vaultdao/sdk"

// -----------------------------------------------------------------------------
// Staking
// -----------------------------------------------------------------------------

// MinStakingPeriod is the cooldown in seconds that must elapse after the most
// recent stake into a DAO before any unstake from that position is allowed.
// It restarts on every top-up, an intentional anti-gaming rule: topping up a
// position re-locks the whole balance.
const MinStakingPeriod int64 = 3600

// StakingAsset is the fungible asset every vault escrows.
const StakingAsset = sdk.AssetHive

// -----------------------------------------------------------------------------
// Config Keys
// -----------------------------------------------------------------------------

const (
	// ContractConfigKey stores the encoded ContractConfig blob.
	ContractConfigKey = "cfg:contract"
	// ActivityHookKey stores the contract id of the optional activity/XP
	// collaborator. Empty/missing means the side channel is disabled.
	ActivityHookKey = "cfg:activity"
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// DaosCount holds an integer counter for DAO ids.
	DaosCount = "count:dao"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kDaoRecord stores encoded DaoRecord blobs.
	kDaoRecord byte = 0x01
	// kMembershipConfig keeps the stake thresholds separate so threshold
	// updates touch fewer bytes.
	kMembershipConfig byte = 0x02
	// kVault tracks the per-DAO escrow balance.
	kVault byte = 0x03
	// kMember houses encoded MemberRow structs (DAO scoped).
	kMember byte = 0x04
	// kMemberIndex stores the enumerable member address list per DAO.
	kMemberIndex byte = 0x05
	// kStakerProfile stores the per-account aggregate (account scoped).
	kStakerProfile byte = 0x10
	// kStakeEntry stores per-account per-DAO positions.
	kStakeEntry byte = 0x11
	// kRegistryEntry mirrors stake entries as the DAO's denormalized staker
	// registry, the authoritative read path for voting power.
	kRegistryEntry byte = 0x12
	// kVote contains encoded Vote records.
	kVote byte = 0x20
	// kBallot stores one Ballot per voter per vote.
	kBallot byte = 0x21
)
