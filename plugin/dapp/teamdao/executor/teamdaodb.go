// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/client"
	"github.com/33cn/chain33/common"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	pty "github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

// Action 具体动作执行
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	localDB      dbm.Lister
	index        int
	api          client.QueueProtocolAPI
}

// NewAction 生成action
func NewAction(t *TeamDao, tx *types.Transaction, index int) *Action {
	hash := tx.Hash()
	fromaddr := tx.From()
	return &Action{t.GetCoinsAccount(), t.GetStateDB(), hash, fromaddr,
		t.GetBlockTime(), t.GetHeight(), dapp.ExecAddress(string(tx.Execer)), t.GetLocalDB(), index, t.GetAPI()}
}

// GetIndex 返回当前交易的全局index
func (action *Action) GetIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func getTeam(db dbm.KV, name string) (*pty.Team, error) {
	value, err := db.Get(teamKey(name))
	if err != nil {
		return nil, err
	}
	var team pty.Team
	err = types.Decode(value, &team)
	if err != nil {
		tlog.Error("getTeam", "decode err", err)
		return nil, err
	}
	return &team, nil
}

func getPrediction(db dbm.KV, id string) (*pty.Prediction, error) {
	value, err := db.Get(predictionKey(id))
	if err != nil {
		return nil, err
	}
	var pred pty.Prediction
	err = types.Decode(value, &pred)
	if err != nil {
		tlog.Error("getPrediction", "decode err", err)
		return nil, err
	}
	return &pred, nil
}

func getConfig(db dbm.KV) (*pty.DaoConfig, error) {
	value, err := db.Get(daoConfigKey())
	if err != nil {
		if err == types.ErrNotFound {
			return &pty.DaoConfig{}, nil
		}
		return nil, err
	}
	var cfg pty.DaoConfig
	err = types.Decode(value, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func getUserStake(db dbm.KV, addr string) (*pty.UserStake, error) {
	value, err := db.Get(userStakeKey(addr))
	if err != nil {
		if err == types.ErrNotFound {
			return &pty.UserStake{Addr: addr}, nil
		}
		return nil, err
	}
	var stake pty.UserStake
	err = types.Decode(value, &stake)
	if err != nil {
		return nil, err
	}
	return &stake, nil
}

func getUserTeams(db dbm.KV, addr string) (*pty.UserTeams, error) {
	value, err := db.Get(userTeamsKey(addr))
	if err != nil {
		if err == types.ErrNotFound {
			return &pty.UserTeams{Addr: addr}, nil
		}
		return nil, err
	}
	var teams pty.UserTeams
	err = types.Decode(value, &teams)
	if err != nil {
		return nil, err
	}
	return &teams, nil
}

// 质押币种由配置决定, 配置为空时使用主链coins
func (action *Action) tokenAccount(cfg *pty.DaoConfig) (*account.DB, error) {
	if cfg.TokenExec == "" || cfg.TokenExec == "coins" {
		return action.coinsAccount, nil
	}
	chainCfg := action.api.GetConfig()
	return account.NewAccountDB(chainCfg, cfg.TokenExec, cfg.TokenSymbol, action.db)
}

func predictionHashSum(id, teamName string, createTime int64) int64 {
	digest := common.Sha256([]byte(fmt.Sprintf("%s:%s:%d", id, teamName, createTime)))
	var sum int64
	for i := 0; i < 4; i++ {
		sum += int64(digest[i])
	}
	return sum
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// FormTeam 组队, 发起人必须是首位成员
func (action *Action) FormTeam(form *pty.TeamDaoFormTeam) (*types.Receipt, error) {
	if len(form.Members) == 0 || form.Members[0] != action.fromaddr {
		tlog.Error("FormTeam", "addr", action.fromaddr, "err", "not first member")
		return nil, pty.ErrUnauthorized
	}
	_, err := getTeam(action.db, form.Name)
	if err == nil {
		return nil, pty.ErrTeamExists
	}
	if err != types.ErrNotFound {
		return nil, err
	}

	var members []string
	for _, m := range form.Members {
		if !contains(members, m) {
			members = append(members, m)
		}
	}
	if len(members) > pty.MaxTeamMembers {
		return nil, pty.ErrInvalidParam
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	team := &pty.Team{Name: form.Name, Members: members}
	kv = append(kv, &types.KeyValue{Key: teamKey(form.Name), Value: types.Encode(team)})

	for _, m := range members {
		uteams, err := getUserTeams(action.db, m)
		if err != nil {
			return nil, err
		}
		if !contains(uteams.Teams, form.Name) {
			uteams.Teams = append(uteams.Teams, form.Name)
		}
		kv = append(kv, &types.KeyValue{Key: userTeamsKey(m), Value: types.Encode(uteams)})
	}

	receiptLog := &pty.ReceiptTeamForm{
		Name:    form.Name,
		Creator: action.fromaddr,
		Members: members,
		Index:   action.GetIndex(),
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogTeamDaoFormTeam, Log: types.Encode(receiptLog)})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Stake 按余额百分比质押进入合约池
func (action *Action) Stake(stake *pty.TeamDaoStake) (*types.Receipt, error) {
	if stake.Percentage < 0 || stake.Percentage > 100 {
		return nil, pty.ErrInvalidStakePercentage
	}
	team, err := getTeam(action.db, stake.TeamName)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, pty.ErrTeamNotFound
		}
		return nil, err
	}
	if !contains(team.Members, action.fromaddr) {
		tlog.Error("Stake", "addr", action.fromaddr, "team", stake.TeamName, "err", "not a member")
		return nil, pty.ErrUnauthorized
	}

	cfg, err := getConfig(action.db)
	if err != nil {
		return nil, err
	}
	acc, err := action.tokenAccount(cfg)
	if err != nil {
		return nil, err
	}

	balance := acc.LoadExecAccount(action.fromaddr, action.execaddr).Balance
	amount := balance * stake.Percentage / 100
	if amount <= 0 {
		tlog.Error("Stake", "addr", action.fromaddr, "balance", balance, "percentage", stake.Percentage)
		return nil, pty.ErrLowBalance
	}

	receipt, err := acc.ExecTransfer(action.fromaddr, action.execaddr, action.execaddr, amount)
	if err != nil {
		tlog.Error("Stake.ExecTransfer", "addr", action.fromaddr, "amount", amount, "err", err)
		return nil, err
	}
	logs := receipt.Logs
	kv := receipt.KV

	team.TotalStake += amount
	kv = append(kv, &types.KeyValue{Key: teamKey(team.Name), Value: types.Encode(team)})

	userStake, err := getUserStake(action.db, action.fromaddr)
	if err != nil {
		return nil, err
	}
	userStake.Amount += amount
	kv = append(kv, &types.KeyValue{Key: userStakeKey(action.fromaddr), Value: types.Encode(userStake)})

	receiptLog := &pty.ReceiptTeamStake{
		TeamName:   team.Name,
		Addr:       action.fromaddr,
		Amount:     amount,
		Percentage: stake.Percentage,
		TotalStake: team.TotalStake,
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogTeamDaoStake, Log: types.Encode(receiptLog)})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Predict 提交方向预测, 质押数值按申报记录
func (action *Action) Predict(predict *pty.TeamDaoPredict) (*types.Receipt, error) {
	_, err := getPrediction(action.db, predict.Id)
	if err == nil {
		return nil, pty.ErrPredictionExists
	}
	if err != types.ErrNotFound {
		return nil, err
	}
	_, err = getTeam(action.db, predict.TeamName)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, pty.ErrTeamNotFound
		}
		return nil, err
	}

	pred := &pty.Prediction{
		Id:              predict.Id,
		TeamName:        predict.TeamName,
		Asset:           predict.Asset,
		Direction:       predict.Direction,
		StakeAmount:     predict.StakeAmount,
		StakePercentage: predict.StakePercentage,
		Predictor:       action.fromaddr,
		CreateTime:      action.blocktime,
	}
	kv := []*types.KeyValue{{Key: predictionKey(pred.Id), Value: types.Encode(pred)}}

	receiptLog := &pty.ReceiptPredict{
		Id:        pred.Id,
		TeamName:  pred.TeamName,
		Predictor: pred.Predictor,
		Asset:     pred.Asset,
		Direction: pred.Direction,
		Index:     action.GetIndex(),
	}
	logs := []*types.ReceiptLog{{Ty: pty.TyLogTeamDaoPredict, Log: types.Encode(receiptLog)}}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Resolve 结算预测, 先过哈希难度门, 再校验预言机数据
func (action *Action) Resolve(resolve *pty.TeamDaoResolve) (*types.Receipt, error) {
	pred, err := getPrediction(action.db, resolve.Id)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, pty.ErrPredictionNotFound
		}
		return nil, err
	}
	if pred.Resolved {
		return nil, pty.ErrAlreadyResolved
	}

	cfg, err := getConfig(action.db)
	if err != nil {
		return nil, err
	}
	if !cfg.Initialized || cfg.OracleAddr == "" {
		tlog.Warn("Resolve", "id", resolve.Id, "err", "oracle not configured")
		return nil, pty.ErrOracleDataUnavailable
	}

	symbol := normalizeAsset(pred.Asset)
	feed, err := getPriceFeed(action.db, symbol)
	if err != nil {
		return nil, err
	}
	currentPrice, okCur := latestPrice(feed)
	historicalPrice, okHis := priceAt(feed, pred.CreateTime)
	if !okCur || !okHis {
		tlog.Warn("Resolve", "id", resolve.Id, "symbol", symbol, "err", "price round missing")
		return nil, pty.ErrOracleDataUnavailable
	}

	hashSum := predictionHashSum(pred.Id, pred.TeamName, pred.CreateTime)
	target := pred.StakePercentage
	if target < 1 {
		target = 1
	}
	if hashSum%target != 0 {
		tlog.Warn("Resolve hash gate rejected", "id", resolve.Id, "hashSum", hashSum, "target", target)
		return nil, pty.ErrHashVerificationFailed
	}

	if currentPrice == historicalPrice || currentPrice <= 0 || historicalPrice <= 0 {
		tlog.Warn("Resolve oracle data inconsistent", "id", resolve.Id,
			"current", currentPrice, "historical", historicalPrice)
		return nil, pty.ErrOracleDataUnavailable
	}

	priceIncreased := currentPrice > historicalPrice
	pred.Resolved = true
	pred.Outcome = pred.Direction == priceIncreased
	pred.ResolveTime = action.blocktime

	kv := []*types.KeyValue{{Key: predictionKey(pred.Id), Value: types.Encode(pred)}}
	receiptLog := &pty.ReceiptResolve{
		Id:              pred.Id,
		Outcome:         pred.Outcome,
		CurrentPrice:    currentPrice,
		HistoricalPrice: historicalPrice,
		HashSum:         hashSum,
		Target:          target,
	}
	logs := []*types.ReceiptLog{
		{Ty: pty.TyLogTeamDaoHashApproved, Log: types.Encode(receiptLog)},
		{Ty: pty.TyLogTeamDaoResolve, Log: types.Encode(receiptLog)},
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Distribute 发放奖励, 预测正确返还质押并附加十分之一奖励
func (action *Action) Distribute(distribute *pty.TeamDaoDistribute) (*types.Receipt, error) {
	pred, err := getPrediction(action.db, distribute.Id)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, pty.ErrPredictionNotFound
		}
		return nil, err
	}
	if !pred.Resolved {
		return nil, pty.ErrPredictionNotFound
	}
	if pred.Distributed {
		return nil, pty.ErrRewardAlreadyDistributed
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	var reward int64

	if pred.Outcome {
		cfg, err := getConfig(action.db)
		if err != nil {
			return nil, err
		}
		acc, err := action.tokenAccount(cfg)
		if err != nil {
			return nil, err
		}
		reward = pred.StakeAmount + pred.StakeAmount/pty.RewardDenominator
		receipt, err := acc.ExecTransfer(action.execaddr, pred.Predictor, action.execaddr, reward)
		if err != nil {
			tlog.Error("Distribute.ExecTransfer", "id", pred.Id, "reward", reward, "err", err)
			return nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}

	pred.Distributed = true
	kv = append(kv, &types.KeyValue{Key: predictionKey(pred.Id), Value: types.Encode(pred)})

	receiptLog := &pty.ReceiptDistribute{
		Id:        pred.Id,
		Predictor: pred.Predictor,
		Reward:    reward,
		Outcome:   pred.Outcome,
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogTeamDaoDistribute, Log: types.Encode(receiptLog)})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Init 初始化合约配置, 只允许一次
func (action *Action) Init(init *pty.TeamDaoInit) (*types.Receipt, error) {
	cfg, err := getConfig(action.db)
	if err != nil {
		return nil, err
	}
	if cfg.Initialized {
		return nil, pty.ErrDaoConfigExists
	}
	if init.OracleAddr == "" {
		return nil, pty.ErrInvalidParam
	}

	cfg = &pty.DaoConfig{
		TokenExec:   init.TokenExec,
		TokenSymbol: init.TokenSymbol,
		OracleAddr:  init.OracleAddr,
		Admin:       action.fromaddr,
		Initialized: true,
	}
	kv := []*types.KeyValue{{Key: daoConfigKey(), Value: types.Encode(cfg)}}

	receiptLog := &pty.ReceiptDaoInit{
		TokenExec:   cfg.TokenExec,
		TokenSymbol: cfg.TokenSymbol,
		OracleAddr:  cfg.OracleAddr,
		Admin:       cfg.Admin,
	}
	logs := []*types.ReceiptLog{{Ty: pty.TyLogTeamDaoInit, Log: types.Encode(receiptLog)}}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// PublishPrice 预言机喂价, 仅限配置的喂价地址
func (action *Action) PublishPrice(publish *pty.TeamDaoPublishPrice) (*types.Receipt, error) {
	cfg, err := getConfig(action.db)
	if err != nil {
		return nil, err
	}
	if !cfg.Initialized || cfg.OracleAddr == "" {
		return nil, pty.ErrOracleDataUnavailable
	}
	if action.fromaddr != cfg.OracleAddr {
		tlog.Error("PublishPrice", "addr", action.fromaddr, "err", "not oracle addr")
		return nil, pty.ErrUnauthorized
	}
	if publish.Price <= 0 {
		return nil, pty.ErrInvalidPrice
	}

	feed, err := getPriceFeed(action.db, publish.Symbol)
	if err != nil {
		return nil, err
	}
	feed.Rounds = append(feed.Rounds, &pty.PriceRound{Price: publish.Price, Timestamp: action.blocktime})
	if len(feed.Rounds) > pty.MaxPriceRounds {
		feed.Rounds = feed.Rounds[len(feed.Rounds)-pty.MaxPriceRounds:]
	}
	kv := []*types.KeyValue{{Key: priceFeedKey(publish.Symbol), Value: types.Encode(feed)}}

	receiptLog := &pty.ReceiptPrice{
		Symbol:    publish.Symbol,
		Price:     publish.Price,
		Timestamp: action.blocktime,
	}
	logs := []*types.ReceiptLog{{Ty: pty.TyLogTeamDaoPrice, Log: types.Encode(receiptLog)}}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}
