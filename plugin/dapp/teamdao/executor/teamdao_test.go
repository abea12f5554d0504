// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math/rand"
	"testing"

	apimocks "github.com/33cn/chain33/client/mocks"
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	"github.com/33cn/chain33/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	pty "github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

var (
	r = rand.New(rand.NewSource(types.Now().UnixNano()))

	adminPriv  crypto.PrivKey
	adminAddr  string
	oraclePriv crypto.PrivKey
	oracleAddr string
	stakerPriv crypto.PrivKey
	stakerAddr string
	memberPriv crypto.PrivKey
	memberAddr string
	poorPriv   crypto.PrivKey
	poorAddr   string
	otherPriv  crypto.PrivKey
	otherAddr  string

	execAddr   string
	teamdaoDrv *TeamDao

	baseTime int64 = 1700000000
)

func genaddress() (crypto.PrivKey, string) {
	cr, err := crypto.New(types.GetSignName("", types.SECP256K1))
	if err != nil {
		panic(err)
	}
	priv, err := cr.GenKey()
	if err != nil {
		panic(err)
	}
	addr := address.PubKeyToAddress(priv.PubKey().Bytes())
	return priv, addr.String()
}

func signedTx(action *pty.TeamDaoAction, priv crypto.PrivKey) *types.Transaction {
	tx := &types.Transaction{
		Execer:  pty.ExecerTeamDao,
		Payload: types.Encode(action),
		Fee:     1e6,
		Nonce:   r.Int63(),
		To:      execAddr,
	}
	tx.Sign(types.SECP256K1, priv)
	return tx
}

// 模拟框架在交易执行成功后落盘state kv
func apply(t *testing.T, receipt *types.Receipt) {
	for _, kv := range receipt.KV {
		require.NoError(t, teamdaoDrv.GetStateDB().Set(kv.Key, kv.Value))
	}
}

func TestSetup(t *testing.T) {
	adminPriv, adminAddr = genaddress()
	oraclePriv, oracleAddr = genaddress()
	stakerPriv, stakerAddr = genaddress()
	memberPriv, memberAddr = genaddress()
	poorPriv, poorAddr = genaddress()
	otherPriv, otherAddr = genaddress()
	execAddr = address.ExecAddress(pty.TeamDaoX)

	chainCfg := types.NewChain33Config(types.GetDefaultCfgstring())
	chainCfg.SetTitleOnlyForTest("chain33")
	Init(pty.TeamDaoX, chainCfg, nil)
	api := new(apimocks.QueueProtocolAPI)
	api.On("GetConfig", mock.Anything).Return(chainCfg, nil)

	drv := newTeamDao().(*TeamDao)
	drv.SetAPI(api)
	drv.SetStateDB(NewTestDB())
	drv.SetEnv(100, baseTime, 1)
	teamdaoDrv = drv
}

func TestInitDao(t *testing.T) {
	action := &pty.TeamDaoAction{
		Ty:    pty.TeamDaoActionInit,
		Value: &pty.TeamDaoAction_Init{Init: &pty.TeamDaoInit{OracleAddr: oracleAddr}},
	}
	receipt, err := teamdaoDrv.Exec(signedTx(action, adminPriv), 0)
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	apply(t, receipt)

	cfg, err := getConfig(teamdaoDrv.GetStateDB())
	require.NoError(t, err)
	require.True(t, cfg.Initialized)
	require.Equal(t, adminAddr, cfg.Admin)
	require.Equal(t, oracleAddr, cfg.OracleAddr)

	// 重复初始化被拒绝
	_, err = teamdaoDrv.Exec(signedTx(action, adminPriv), 0)
	require.Equal(t, pty.ErrDaoConfigExists, err)
}

func TestPublishPrice(t *testing.T) {
	action := &pty.TeamDaoAction{
		Ty:    pty.TeamDaoActionPublishPrice,
		Value: &pty.TeamDaoAction_PublishPrice{PublishPrice: &pty.TeamDaoPublishPrice{Symbol: "EUR", Price: 100}},
	}
	// 非喂价地址
	_, err := teamdaoDrv.Exec(signedTx(action, stakerPriv), 0)
	require.Equal(t, pty.ErrUnauthorized, err)

	receipt, err := teamdaoDrv.Exec(signedTx(action, oraclePriv), 0)
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	apply(t, receipt)

	bad := &pty.TeamDaoAction{
		Ty:    pty.TeamDaoActionPublishPrice,
		Value: &pty.TeamDaoAction_PublishPrice{PublishPrice: &pty.TeamDaoPublishPrice{Symbol: "EUR", Price: 0}},
	}
	_, err = teamdaoDrv.Exec(signedTx(bad, oraclePriv), 0)
	require.Equal(t, pty.ErrInvalidPrice, err)
}

func TestFormTeam(t *testing.T) {
	form := &pty.TeamDaoFormTeam{Name: "alpha", Members: []string{stakerAddr, memberAddr, poorAddr}}
	action := &pty.TeamDaoAction{
		Ty:    pty.TeamDaoActionFormTeam,
		Value: &pty.TeamDaoAction_FormTeam{FormTeam: form},
	}
	// 只有首位成员可以发起
	_, err := teamdaoDrv.Exec(signedTx(action, memberPriv), 0)
	require.Equal(t, pty.ErrUnauthorized, err)

	receipt, err := teamdaoDrv.Exec(signedTx(action, stakerPriv), 0)
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	apply(t, receipt)

	_, err = teamdaoDrv.Exec(signedTx(action, stakerPriv), 0)
	require.Equal(t, pty.ErrTeamExists, err)

	team, err := getTeam(teamdaoDrv.GetStateDB(), "alpha")
	require.NoError(t, err)
	require.Equal(t, []string{stakerAddr, memberAddr, poorAddr}, team.Members)
	require.Equal(t, int64(0), team.TotalStake)

	uteams, err := getUserTeams(teamdaoDrv.GetStateDB(), memberAddr)
	require.NoError(t, err)
	require.Equal(t, []string{"alpha"}, uteams.Teams)
}

func TestStake(t *testing.T) {
	acc := teamdaoDrv.GetCoinsAccount()
	stakerAcc := acc.LoadExecAccount(stakerAddr, execAddr)
	stakerAcc.Balance = 2000
	acc.SaveExecAccount(execAddr, stakerAcc)
	memberAcc := acc.LoadExecAccount(memberAddr, execAddr)
	memberAcc.Balance = 2000
	acc.SaveExecAccount(execAddr, memberAcc)

	stake := func(team string, pct int64, priv crypto.PrivKey) (*types.Receipt, error) {
		action := &pty.TeamDaoAction{
			Ty:    pty.TeamDaoActionStake,
			Value: &pty.TeamDaoAction_Stake{Stake: &pty.TeamDaoStake{TeamName: team, Percentage: pct}},
		}
		return teamdaoDrv.Exec(signedTx(action, priv), 0)
	}

	_, err := stake("alpha", 150, stakerPriv)
	require.Equal(t, pty.ErrInvalidStakePercentage, err)
	// 负数比例同样非法, 不能落到余额检查
	_, err = stake("alpha", -50, stakerPriv)
	require.Equal(t, pty.ErrInvalidStakePercentage, err)
	_, err = stake("nosuch", 50, stakerPriv)
	require.Equal(t, pty.ErrTeamNotFound, err)
	_, err = stake("alpha", 50, otherPriv)
	require.Equal(t, pty.ErrUnauthorized, err)
	// 成员无余额
	_, err = stake("alpha", 50, poorPriv)
	require.Equal(t, pty.ErrLowBalance, err)

	receipt, err := stake("alpha", 50, stakerPriv)
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	apply(t, receipt)

	receipt, err = stake("alpha", 50, memberPriv)
	require.NoError(t, err)
	apply(t, receipt)

	team, err := getTeam(teamdaoDrv.GetStateDB(), "alpha")
	require.NoError(t, err)
	require.Equal(t, int64(2000), team.TotalStake)

	require.Equal(t, int64(1000), acc.LoadExecAccount(stakerAddr, execAddr).Balance)
	require.Equal(t, int64(2000), acc.LoadExecAccount(execAddr, execAddr).Balance)

	userStake, err := getUserStake(teamdaoDrv.GetStateDB(), stakerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(1000), userStake.Amount)
}

func TestPredict(t *testing.T) {
	predict := func(id, team string, priv crypto.PrivKey) (*types.Receipt, error) {
		action := &pty.TeamDaoAction{
			Ty: pty.TeamDaoActionPredict,
			Value: &pty.TeamDaoAction_Predict{Predict: &pty.TeamDaoPredict{
				Id:              id,
				TeamName:        team,
				Asset:           "EUR/USD",
				Direction:       true,
				StakeAmount:     1000,
				StakePercentage: 50,
			}},
		}
		return teamdaoDrv.Exec(signedTx(action, priv), 0)
	}

	receipt, err := predict("pred-38", "alpha", stakerPriv)
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	apply(t, receipt)

	_, err = predict("pred-38", "alpha", stakerPriv)
	require.Equal(t, pty.ErrPredictionExists, err)

	receipt, err = predict("pred-0", "alpha", stakerPriv)
	require.NoError(t, err)
	apply(t, receipt)

	_, err = predict("pred-x", "nosuch", stakerPriv)
	require.Equal(t, pty.ErrTeamNotFound, err)

	pred, err := getPrediction(teamdaoDrv.GetStateDB(), "pred-38")
	require.NoError(t, err)
	require.Equal(t, baseTime, pred.CreateTime)
	require.Equal(t, stakerAddr, pred.Predictor)
	require.False(t, pred.Resolved)
}

func TestResolve(t *testing.T) {
	resolve := func(id string) (*types.Receipt, error) {
		action := &pty.TeamDaoAction{
			Ty:    pty.TeamDaoActionResolve,
			Value: &pty.TeamDaoAction_Resolve{Resolve: &pty.TeamDaoResolve{Id: id}},
		}
		return teamdaoDrv.Exec(signedTx(action, otherPriv), 0)
	}

	_, err := resolve("nosuch")
	require.Equal(t, pty.ErrPredictionNotFound, err)

	// 只有创建时刻的一轮喂价, 最新价与历史价相同
	_, err = resolve("pred-38")
	require.Equal(t, pty.ErrOracleDataUnavailable, err)

	// 哈希难度不过关时先报哈希错误, 即使价格数据同样不可用
	_, err = resolve("pred-0")
	require.Equal(t, pty.ErrHashVerificationFailed, err)

	teamdaoDrv.SetEnv(101, baseTime+600, 1)
	publish := &pty.TeamDaoAction{
		Ty:    pty.TeamDaoActionPublishPrice,
		Value: &pty.TeamDaoAction_PublishPrice{PublishPrice: &pty.TeamDaoPublishPrice{Symbol: "EUR", Price: 110}},
	}
	receipt, err := teamdaoDrv.Exec(signedTx(publish, oraclePriv), 0)
	require.NoError(t, err)
	apply(t, receipt)

	// 哈希难度门先于预言机数据校验
	_, err = resolve("pred-0")
	require.Equal(t, pty.ErrHashVerificationFailed, err)

	receipt, err = resolve("pred-38")
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	apply(t, receipt)

	pred, err := getPrediction(teamdaoDrv.GetStateDB(), "pred-38")
	require.NoError(t, err)
	require.True(t, pred.Resolved)
	require.True(t, pred.Outcome)

	_, err = resolve("pred-38")
	require.Equal(t, pty.ErrAlreadyResolved, err)
}

func TestDistribute(t *testing.T) {
	distribute := func(id string) (*types.Receipt, error) {
		action := &pty.TeamDaoAction{
			Ty:    pty.TeamDaoActionDistribute,
			Value: &pty.TeamDaoAction_Distribute{Distribute: &pty.TeamDaoDistribute{Id: id}},
		}
		return teamdaoDrv.Exec(signedTx(action, otherPriv), 0)
	}

	_, err := distribute("nosuch")
	require.Equal(t, pty.ErrPredictionNotFound, err)

	// 未结算的预测没有可发放的奖励
	_, err = distribute("pred-0")
	require.Equal(t, pty.ErrPredictionNotFound, err)

	receipt, err := distribute("pred-38")
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	apply(t, receipt)

	acc := teamdaoDrv.GetCoinsAccount()
	require.Equal(t, int64(2100), acc.LoadExecAccount(stakerAddr, execAddr).Balance)
	require.Equal(t, int64(900), acc.LoadExecAccount(execAddr, execAddr).Balance)

	pred, err := getPrediction(teamdaoDrv.GetStateDB(), "pred-38")
	require.NoError(t, err)
	require.True(t, pred.Distributed)

	_, err = distribute("pred-38")
	require.Equal(t, pty.ErrRewardAlreadyDistributed, err)
}

func TestHashGate(t *testing.T) {
	require.Equal(t, int64(450), predictionHashSum("pred-38", "alpha", baseTime))
	require.Equal(t, int64(677), predictionHashSum("pred-0", "alpha", baseTime))
	require.Zero(t, int64(450)%50)
	require.NotZero(t, int64(677)%50)
}

func TestQuery(t *testing.T) {
	msg, err := teamdaoDrv.Query_GetTeamInfo(&pty.ReqTeamInfo{Name: "alpha"})
	require.NoError(t, err)
	require.Equal(t, int64(2000), msg.(*pty.Team).TotalStake)

	_, err = teamdaoDrv.Query_GetTeamInfo(&pty.ReqTeamInfo{Name: "nosuch"})
	require.Equal(t, pty.ErrTeamNotFound, err)

	msg, err = teamdaoDrv.Query_GetPredictionInfo(&pty.ReqPredictionInfo{Id: "pred-38"})
	require.NoError(t, err)
	require.True(t, msg.(*pty.Prediction).Distributed)

	msg, err = teamdaoDrv.Query_GetUserStake(&types.ReqAddr{Addr: stakerAddr})
	require.NoError(t, err)
	require.Equal(t, int64(1000), msg.(*pty.UserStake).Amount)

	msg, err = teamdaoDrv.Query_GetUserTeams(&types.ReqAddr{Addr: poorAddr})
	require.NoError(t, err)
	require.Equal(t, []string{"alpha"}, msg.(*pty.UserTeams).Teams)

	msg, err = teamdaoDrv.Query_GetConfig(&types.ReqNil{})
	require.NoError(t, err)
	require.Equal(t, oracleAddr, msg.(*pty.DaoConfig).OracleAddr)

	msg, err = teamdaoDrv.Query_GetLastPrice(&pty.ReqPriceInfo{Symbol: "EUR"})
	require.NoError(t, err)
	require.Equal(t, int64(110), msg.(*pty.PriceRound).Price)

	_, err = teamdaoDrv.Query_GetLastPrice(&pty.ReqPriceInfo{Symbol: "BTC"})
	require.Equal(t, pty.ErrOracleDataUnavailable, err)
}

func TestLocalIndex(t *testing.T) {
	formLog := &pty.ReceiptTeamForm{Name: "alpha", Index: 100*types.MaxTxsPerBlock + 3}
	receiptData := &types.ReceiptData{
		Ty: types.ExecOk,
		Logs: []*types.ReceiptLog{
			{Ty: pty.TyLogTeamDaoFormTeam, Log: types.Encode(formLog)},
		},
	}
	set, err := teamdaoDrv.execLocal(receiptData)
	require.NoError(t, err)
	require.Len(t, set, 1)
	require.Equal(t, calcTeamListKey(formLog.Index), set[0].Key)
	require.Equal(t, []byte("alpha"), set[0].Value)

	del, err := teamdaoDrv.execDelLocal(receiptData)
	require.NoError(t, err)
	require.Len(t, del, 1)
	require.Equal(t, calcTeamListKey(formLog.Index), del[0].Key)
	require.Nil(t, del[0].Value)
}

// TestDB 简单的kv状态库
type TestDB struct {
	cache map[string][]byte
}

// Begin 启动
func (e *TestDB) Begin() {
}

// Commit 提交
func (e *TestDB) Commit() error {
	return nil
}

// Rollback 回滚
func (e *TestDB) Rollback() {
}

// NewTestDB new a TestDB
func NewTestDB() *TestDB {
	return &TestDB{cache: make(map[string][]byte)}
}

// Get get value from cache
func (e *TestDB) Get(key []byte) (value []byte, err error) {
	if value, ok := e.cache[string(key)]; ok {
		return value, nil
	}
	return nil, types.ErrNotFound
}

// Set set key value to cache
func (e *TestDB) Set(key []byte, value []byte) error {
	e.cache[string(key)] = value
	return nil
}

// BatchGet batch get keys
func (e *TestDB) BatchGet(keys [][]byte) (values [][]byte, err error) {
	return nil, types.ErrNotFound
}

// List list prefixed keys
func (e *TestDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return nil, types.ErrNotFound
}
