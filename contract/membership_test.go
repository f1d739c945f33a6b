//go:build test

package contract_test

import (
	"fmt"
	"testing"

	"vaultdao/contract"
	"vaultdao/host"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isMember(t *testing.T, ct *host.ContractTest, daoID uint64, account string) bool {
	t.Helper()
	res := ct.Call(contract.IsMember, accountPayload(daoID, account), host.CallOpts{Caller: account, Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	return res.Ret == `{"member":true}`
}

func TestStakeAboveThresholdAutoJoins(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	assert.False(t, isMember(t, ct, daoID, "hive:someone"))

	res := ct.Call(contract.Stake, stakePayload(daoID, 100), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	assert.True(t, isMember(t, ct, daoID, "hive:someone"))

	res = ct.Call(contract.GetTotalMembers, daoPayload(daoID), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"total":1}`, res.Ret)
}

func TestStakeBelowThresholdDoesNotJoin(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 99), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	assert.False(t, isMember(t, ct, daoID, "hive:someone"))
}

func TestUnstakeBelowThresholdAutoLeaves(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 150), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.True(t, isMember(t, ct, daoID, "hive:someone"))

	after := defaultTime + contract.MinStakingPeriod
	res = ct.Call(contract.Unstake, stakePayload(daoID, 51), host.CallOpts{Caller: "hive:someone", Timestamp: ts(after)})
	require.True(t, res.Success, res.Err)

	assert.False(t, isMember(t, ct, daoID, "hive:someone"))

	res = ct.Call(contract.GetTotalMembers, daoPayload(daoID), host.CallOpts{Caller: "hive:someone", Timestamp: ts(after)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"total":0}`, res.Ret)
}

func TestAdminIsAlwaysMember(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	// no stake at all
	assert.True(t, isMember(t, ct, daoID, adminAddress))
	assert.True(t, isMember(t, ct, daoID, ownerAddress))
}

func TestJoinRequiresThreshold(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.JoinDao, daoPayload(daoID), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	assertRevert(t, res, "min_stake_required")
}

func TestLeaveAndRejoin(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 100), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	res = ct.Call(contract.LeaveDao, daoPayload(daoID), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.False(t, isMember(t, ct, daoID, "hive:someone"))

	// leaving twice is a no-op
	res = ct.Call(contract.LeaveDao, daoPayload(daoID), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	res = ct.Call(contract.JoinDao, daoPayload(daoID), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.True(t, isMember(t, ct, daoID, "hive:someone"))
}

func TestRaisedThresholdRevokesMembership(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 150), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.True(t, isMember(t, ct, daoID, "hive:someone"))

	res = ct.Call(contract.UpdateMinStake, fmt.Sprintf(`{"dao_id":%d,"amount":200}`, daoID), host.CallOpts{Caller: adminAddress, Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	// the stored row is still there but the live check now fails
	assert.False(t, isMember(t, ct, daoID, "hive:someone"))

	// topping up above the new threshold restores it
	res = ct.Call(contract.Stake, stakePayload(daoID, 50), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.True(t, isMember(t, ct, daoID, "hive:someone"))
}

func TestThresholdUpdatesAreAdminOnly(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.UpdateMinStake, fmt.Sprintf(`{"dao_id":%d,"amount":200}`, daoID), host.CallOpts{Caller: "hive:outsider", Timestamp: ts(defaultTime)})
	assertRevert(t, res, "not_admin")

	res = ct.Call(contract.UpdateMinProposalStake, fmt.Sprintf(`{"dao_id":%d,"amount":900}`, daoID), host.CallOpts{Caller: "hive:outsider", Timestamp: ts(defaultTime)})
	assertRevert(t, res, "not_admin")
}

func TestRemoveInactiveMember(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 150), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	// still meets the threshold, eviction must fail
	res = ct.Call(contract.RemoveInactiveMember, accountPayload(daoID, "hive:someone"), host.CallOpts{Caller: adminAddress, Timestamp: ts(defaultTime)})
	assert.False(t, res.Success)

	res = ct.Call(contract.UpdateMinStake, fmt.Sprintf(`{"dao_id":%d,"amount":500}`, daoID), host.CallOpts{Caller: adminAddress, Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	res = ct.Call(contract.RemoveInactiveMember, accountPayload(daoID, "hive:someone"), host.CallOpts{Caller: adminAddress, Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	res = ct.Call(contract.GetTotalMembers, daoPayload(daoID), host.CallOpts{Caller: adminAddress, Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"total":0}`, res.Ret)
}

func TestMemberAddressList(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	for _, acc := range []string{"hive:someone", "hive:member2"} {
		res := ct.Call(contract.Stake, stakePayload(daoID, 100), host.CallOpts{Caller: acc, Timestamp: ts(defaultTime)})
		require.True(t, res.Success, res.Err)
	}

	res := ct.Call(contract.GetMemberAddresses, daoPayload(daoID), host.CallOpts{Caller: adminAddress, Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"addresses":["hive:someone","hive:member2"]}`, res.Ret)
}

func TestCanCreateProposal(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	canPropose := func(account string) bool {
		res := ct.Call(contract.CanCreateProposal, accountPayload(daoID, account), host.CallOpts{Caller: account, Timestamp: ts(defaultTime)})
		require.True(t, res.Success, res.Err)
		return res.Ret == `{"allowed":true}`
	}

	res := ct.Call(contract.Stake, stakePayload(daoID, 150), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	// member but below the proposal bar
	assert.False(t, canPropose("hive:someone"))

	res = ct.Call(contract.Stake, stakePayload(daoID, 350), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.True(t, canPropose("hive:someone"))

	// admin passes with zero stake
	assert.True(t, canPropose(adminAddress))
	assert.False(t, canPropose("hive:outsider"))
}
