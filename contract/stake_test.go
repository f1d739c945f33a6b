//go:build test

package contract_test

import (
	"testing"

	"vaultdao/contract"
	"vaultdao/host"
	"vaultdao/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStakeMovesFundsIntoVault(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 500), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "500", res.Ret)

	assert.Equal(t, int64(200000-500), ct.Balance("hive:someone", sdk.AssetHive))
	assert.Equal(t, int64(500), ct.ContractBalance(sdk.AssetHive))

	res = ct.Call(contract.GetTotalStaked, daoPayload(daoID), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"total":500}`, res.Ret)

	res = ct.Call(contract.GetStakerAmount, accountPayload(daoID, "hive:someone"), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"amount":500}`, res.Ret)
}

func TestStakeRejectsZeroAndUnknownDao(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 0), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	assert.False(t, res.Success)

	res = ct.Call(contract.Stake, stakePayload(99, 100), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	assertRevert(t, res, "not_found")
}

func TestStakeInsufficientBalance(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 300000), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	assertRevert(t, res, "insufficient_balance")

	// nothing moved
	assert.Equal(t, int64(200000), ct.Balance("hive:someone", sdk.AssetHive))
	assert.Equal(t, int64(0), ct.ContractBalance(sdk.AssetHive))
}

func TestUnstakeBeforeCooldownFails(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 500), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	res = ct.Call(contract.Unstake, stakePayload(daoID, 100), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime + contract.MinStakingPeriod - 1)})
	assertRevert(t, res, "time_lock_not_elapsed")

	res = ct.Call(contract.Unstake, stakePayload(daoID, 100), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime + contract.MinStakingPeriod)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "400", res.Ret)
}

func TestTopUpRearmsCooldown(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 100), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	topUpAt := defaultTime + 1000
	res = ct.Call(contract.Stake, stakePayload(daoID, 10), host.CallOpts{Caller: "hive:someone", Timestamp: ts(topUpAt)})
	require.True(t, res.Success, res.Err)

	// the first stake's cooldown has elapsed but the top-up re-armed it
	res = ct.Call(contract.Unstake, stakePayload(daoID, 50), host.CallOpts{Caller: "hive:someone", Timestamp: ts(topUpAt + contract.MinStakingPeriod - 1)})
	assertRevert(t, res, "time_lock_not_elapsed")

	res = ct.Call(contract.Unstake, stakePayload(daoID, 50), host.CallOpts{Caller: "hive:someone", Timestamp: ts(topUpAt + contract.MinStakingPeriod)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "60", res.Ret)
}

func TestPartialUnstakeKeepsStakerRegistered(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 500), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	res = ct.Call(contract.GetTotalStakers, daoPayload(daoID), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"total":1}`, res.Ret)

	after := defaultTime + contract.MinStakingPeriod
	res = ct.Call(contract.Unstake, stakePayload(daoID, 200), host.CallOpts{Caller: "hive:someone", Timestamp: ts(after)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "300", res.Ret)

	res = ct.Call(contract.GetTotalStakers, daoPayload(daoID), host.CallOpts{Caller: "hive:someone", Timestamp: ts(after)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"total":1}`, res.Ret)

	// withdrawing the rest prunes the position
	res = ct.Call(contract.Unstake, stakePayload(daoID, 300), host.CallOpts{Caller: "hive:someone", Timestamp: ts(after)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "0", res.Ret)

	res = ct.Call(contract.GetTotalStakers, daoPayload(daoID), host.CallOpts{Caller: "hive:someone", Timestamp: ts(after)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"total":0}`, res.Ret)

	assert.Equal(t, int64(200000), ct.Balance("hive:someone", sdk.AssetHive))
	assert.Equal(t, int64(0), ct.ContractBalance(sdk.AssetHive))
}

func TestUnstakeMoreThanStakedFails(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 100), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	after := defaultTime + contract.MinStakingPeriod
	res = ct.Call(contract.Unstake, stakePayload(daoID, 101), host.CallOpts{Caller: "hive:someone", Timestamp: ts(after)})
	assertRevert(t, res, "invalid_unstake_amount")
}

func TestUnstakeWithoutPositionFails(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Unstake, stakePayload(daoID, 100), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	assertRevert(t, res, "not_found")
}

func TestStakePositionsAreDaoScoped(t *testing.T) {
	ct := SetupContractTest(t)
	daoA := SetupDao(t, ct, 100, 500)
	daoB := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoA, 300), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	res = ct.Call(contract.Stake, stakePayload(daoB, 700), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	res = ct.Call(contract.GetStakerAmount, accountPayload(daoA, "hive:someone"), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"amount":300}`, res.Ret)

	res = ct.Call(contract.GetStakerAmount, accountPayload(daoB, "hive:someone"), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"amount":700}`, res.Ret)

	// draining one DAO leaves the other untouched
	after := defaultTime + contract.MinStakingPeriod
	res = ct.Call(contract.Unstake, stakePayload(daoA, 300), host.CallOpts{Caller: "hive:someone", Timestamp: ts(after)})
	require.True(t, res.Success, res.Err)

	res = ct.Call(contract.GetStakerAmount, accountPayload(daoB, "hive:someone"), host.CallOpts{Caller: "hive:someone", Timestamp: ts(after)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"amount":700}`, res.Ret)
}

func TestStakeEmitsEvent(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.Stake, stakePayload(daoID, 500), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	found := false
	for _, l := range res.Logs {
		if l == "st|id:0|by:hive:someone|am:500|tot:500|ts:1700000000" {
			found = true
		}
	}
	assert.True(t, found, "stake event missing, logs: %v", res.Logs)
}
