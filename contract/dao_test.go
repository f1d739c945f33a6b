//go:build test

package contract_test

import (
	"testing"

	"vaultdao/contract"
	"vaultdao/host"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractInitOnce(t *testing.T) {
	ct := SetupContractTest(t)

	res := ct.Call(contract.ContractInit, "", host.CallOpts{Caller: "hive:outsider", Timestamp: ts(defaultTime)})
	assert.False(t, res.Success)
	assert.Equal(t, "contract already initialized", res.Err)
}

func TestCallsBeforeInitTrap(t *testing.T) {
	store, clean := host.TempBadgerStore()
	t.Cleanup(clean)
	ct := host.NewContractTest(store)

	res := ct.Call(contract.Stake, stakePayload(0, 100), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	assert.False(t, res.Success)
	assert.Equal(t, "contract not initialized", res.Err)
}

func TestDaoIdsAreSequential(t *testing.T) {
	ct := SetupContractTest(t)

	assert.Equal(t, uint64(0), SetupDao(t, ct, 100, 500))
	assert.Equal(t, uint64(1), SetupDao(t, ct, 100, 500))
	assert.Equal(t, uint64(2), SetupDao(t, ct, 100, 500))
}

func TestDaoInitRejectsEmptyName(t *testing.T) {
	ct := SetupContractTest(t)

	res := ct.Call(contract.DaoInit, `{"name":"","min_stake_to_join":1,"min_stake_to_propose":1}`, host.CallOpts{Caller: adminAddress, Timestamp: ts(defaultTime)})
	assert.False(t, res.Success)
}

func TestMembershipConfigQuery(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	res := ct.Call(contract.GetMembershipConfig, daoPayload(daoID), host.CallOpts{Caller: adminAddress, Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, `{"min_stake_to_join":100,"min_stake_to_propose":500}`, res.Ret)
}

func TestActivityHookReceivesLedgerActions(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := SetupDao(t, ct, 100, 500)

	// only the owner may point the contract at a collaborator
	res := ct.Call(contract.SetActivityHook, `{"contract_id":"contract:activity"}`, host.CallOpts{Caller: adminAddress, Timestamp: ts(defaultTime)})
	assertRevert(t, res, "not_admin")

	res = ct.Call(contract.SetActivityHook, `{"contract_id":"contract:activity"}`, host.CallOpts{Caller: ownerAddress, Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	res = ct.Call(contract.Stake, stakePayload(daoID, 500), host.CallOpts{Caller: "hive:someone", Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	require.Len(t, ct.Host.Calls, 1)
	call := ct.Host.Calls[0]
	assert.Equal(t, "contract:activity", call.ContractID)
	assert.Equal(t, "record_activity", call.Method)
	assert.Equal(t, `{"kind":"stake","dao_id":0,"account":"hive:someone","amount":500}`, call.Payload)

	// clearing the hook silences the side channel
	res = ct.Call(contract.SetActivityHook, `{"contract_id":""}`, host.CallOpts{Caller: ownerAddress, Timestamp: ts(defaultTime)})
	require.True(t, res.Success, res.Err)

	after := defaultTime + contract.MinStakingPeriod
	res = ct.Call(contract.Unstake, stakePayload(daoID, 100), host.CallOpts{Caller: "hive:someone", Timestamp: ts(after)})
	require.True(t, res.Success, res.Err)
	assert.Len(t, ct.Host.Calls, 1)
}
