// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/types"
	"github.com/stretchr/testify/require"
)

func testChainCfg() *types.Chain33Config {
	cfg := types.NewChain33Config(types.GetDefaultCfgstring())
	cfg.SetTitleOnlyForTest("chain33")
	return cfg
}

func TestCreateRawTx(t *testing.T) {
	cfg := testChainCfg()
	tx, err := CreateRawFormTeamTx(cfg, &TeamDaoFormTeamTx{
		Name:    "alpha",
		Members: []string{"addr1", "addr2"},
	})
	require.NoError(t, err)
	require.Equal(t, ExecerTeamDao, tx.Execer)
	require.Equal(t, address.ExecAddress(cfg.ExecName(TeamDaoX)), tx.To)

	var action TeamDaoAction
	require.NoError(t, types.Decode(tx.Payload, &action))
	require.Equal(t, int32(TeamDaoActionFormTeam), action.Ty)
	require.Equal(t, "alpha", action.GetFormTeam().Name)

	_, err = CreateRawFormTeamTx(cfg, &TeamDaoFormTeamTx{})
	require.Equal(t, types.ErrInvalidParam, err)

	_, err = CreateRawPredictTx(cfg, &TeamDaoPredictTx{Id: "p1"})
	require.Equal(t, types.ErrInvalidParam, err)

	tx, err = CreateRawPublishPriceTx(cfg, &TeamDaoPublishPriceTx{Symbol: "EUR", Price: 100})
	require.NoError(t, err)
	require.NoError(t, types.Decode(tx.Payload, &action))
	require.Equal(t, int64(100), action.GetPublishPrice().Price)
}

func TestActionName(t *testing.T) {
	cfg := testChainCfg()
	ety := NewType(cfg)
	tx, err := CreateRawStakeTx(cfg, &TeamDaoStakeTx{TeamName: "alpha", Percentage: 50})
	require.NoError(t, err)
	require.Equal(t, "stake", ety.ActionName(tx))

	tx, err = CreateRawResolveTx(cfg, &TeamDaoResolveTx{Id: "p1"})
	require.NoError(t, err)
	require.Equal(t, "resolve", ety.ActionName(tx))
}

func TestTypeMap(t *testing.T) {
	ety := NewType(testChainCfg())
	typeMap := ety.GetTypeMap()
	require.Equal(t, int32(TeamDaoActionFormTeam), typeMap[FormTeamAction])
	require.Equal(t, int32(TeamDaoActionPublishPrice), typeMap[PublishPriceAction])
	logMap := ety.GetLogMap()
	require.NotNil(t, logMap[TyLogTeamDaoResolve])
}
