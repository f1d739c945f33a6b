//go:build test

package contract_test

import (
	"fmt"
	"testing"

	"vaultdao/contract"
	"vaultdao/host"
	"vaultdao/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerAddress = "hive:vaultowner"
const adminAddress = "hive:daoadmin"

// defaultTime is the baseline unix timestamp most calls run at.
const defaultTime int64 = 1_700_000_000

// SetupContractTest builds a badger backed harness, initializes the contract
// and seeds a handful of funded accounts.
func SetupContractTest(t *testing.T) *host.ContractTest {
	store, clean := host.TempBadgerStore()
	t.Cleanup(clean)

	ct := host.NewContractTest(store)
	ct.Deposit("hive:someone", 200000, sdk.AssetHive)
	ct.Deposit("hive:someoneelse", 200000, sdk.AssetHive)
	ct.Deposit("hive:member2", 200000, sdk.AssetHive)
	ct.Deposit("hive:outsider", 200000, sdk.AssetHive)
	ct.Deposit(adminAddress, 200000, sdk.AssetHive)

	res := ct.Call(contract.ContractInit, "", host.CallOpts{Caller: ownerAddress, Timestamp: ts(defaultTime)})
	require.True(t, res.Success, "contract init failed with "+res.Err)
	return ct
}

// SetupDao creates one DAO with the given thresholds and returns its id.
func SetupDao(t *testing.T, ct *host.ContractTest, minJoin, minPropose uint64) uint64 {
	payload := fmt.Sprintf(`{"name":"testdao","min_stake_to_join":%d,"min_stake_to_propose":%d}`, minJoin, minPropose)
	res := ct.Call(contract.DaoInit, payload, host.CallOpts{Caller: adminAddress, Timestamp: ts(defaultTime)})
	require.True(t, res.Success, "dao init failed with "+res.Err)
	var id uint64
	_, err := fmt.Sscanf(res.Ret, "%d", &id)
	require.NoError(t, err)
	return id
}

// ts renders a unix second for CallOpts.Timestamp.
func ts(unix int64) string {
	return fmt.Sprintf("%d", unix)
}

// stakePayload builds the common stake/unstake argument blob.
func stakePayload(daoID, amount uint64) string {
	return fmt.Sprintf(`{"dao_id":%d,"amount":%d}`, daoID, amount)
}

// accountPayload builds the dao+account argument blob.
func accountPayload(daoID uint64, account string) string {
	return fmt.Sprintf(`{"dao_id":%d,"account":"%s"}`, daoID, account)
}

// daoPayload builds the dao-only argument blob.
func daoPayload(daoID uint64) string {
	return fmt.Sprintf(`{"dao_id":%d}`, daoID)
}

// assertRevert checks that the call failed with the given symbol.
func assertRevert(t *testing.T, res host.TxResult, symbol string) {
	t.Helper()
	assert.False(t, res.Success, "call unexpectedly succeeded with "+res.Ret)
	assert.Equal(t, symbol, res.ErrSymbol, "unexpected revert symbol, err: "+res.Err)
}
