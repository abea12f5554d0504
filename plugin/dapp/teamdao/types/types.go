// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"reflect"

	"github.com/33cn/chain33/common/address"
	log "github.com/33cn/chain33/common/log/log15"
	"github.com/33cn/chain33/types"
)

var tlog = log.New("module", TeamDaoX)

func init() {
	// init executor type
	types.AllowUserExec = append(types.AllowUserExec, ExecerTeamDao)
	types.RegFork(TeamDaoX, InitFork)
	types.RegExec(TeamDaoX, InitExecutor)
}

// InitFork 初始化fork
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(TeamDaoX, "Enable", 0)
}

// InitExecutor 初始化执行器类型
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(TeamDaoX, NewType(cfg))
}

// TeamDaoType 执行器基类结构体
type TeamDaoType struct {
	types.ExecTypeBase
}

// NewType 创建执行器类型
func NewType(cfg *types.Chain33Config) *TeamDaoType {
	c := &TeamDaoType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

// GetName 获取执行器名称
func (t *TeamDaoType) GetName() string {
	return TeamDaoX
}

// GetPayload 获取teamdao action
func (t *TeamDaoType) GetPayload() types.Message {
	return &TeamDaoAction{}
}

// GetLogMap 获取log的映射对应关系
func (t *TeamDaoType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogTeamDaoFormTeam:     {Ty: reflect.TypeOf(ReceiptTeamForm{}), Name: "LogTeamDaoFormTeam"},
		TyLogTeamDaoStake:        {Ty: reflect.TypeOf(ReceiptTeamStake{}), Name: "LogTeamDaoStake"},
		TyLogTeamDaoPredict:      {Ty: reflect.TypeOf(ReceiptPredict{}), Name: "LogTeamDaoPredict"},
		TyLogTeamDaoResolve:      {Ty: reflect.TypeOf(ReceiptResolve{}), Name: "LogTeamDaoResolve"},
		TyLogTeamDaoDistribute:   {Ty: reflect.TypeOf(ReceiptDistribute{}), Name: "LogTeamDaoDistribute"},
		TyLogTeamDaoInit:         {Ty: reflect.TypeOf(ReceiptDaoInit{}), Name: "LogTeamDaoInit"},
		TyLogTeamDaoPrice:        {Ty: reflect.TypeOf(ReceiptPrice{}), Name: "LogTeamDaoPrice"},
		TyLogTeamDaoHashApproved: {Ty: reflect.TypeOf(ReceiptResolve{}), Name: "LogTeamDaoHashApproved"},
	}
}

// GetTypeMap 根据action的name获取type
func (t *TeamDaoType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		FormTeamAction:     TeamDaoActionFormTeam,
		StakeAction:        TeamDaoActionStake,
		PredictAction:      TeamDaoActionPredict,
		ResolveAction:      TeamDaoActionResolve,
		DistributeAction:   TeamDaoActionDistribute,
		InitAction:         TeamDaoActionInit,
		PublishPriceAction: TeamDaoActionPublishPrice,
	}
}

// ActionName 获取action name
func (t *TeamDaoType) ActionName(tx *types.Transaction) string {
	var action TeamDaoAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return "unknown-err"
	}
	switch action.Ty {
	case TeamDaoActionFormTeam:
		return "formTeam"
	case TeamDaoActionStake:
		return "stake"
	case TeamDaoActionPredict:
		return "predict"
	case TeamDaoActionResolve:
		return "resolve"
	case TeamDaoActionDistribute:
		return "distribute"
	case TeamDaoActionInit:
		return "init"
	case TeamDaoActionPublishPrice:
		return "publishPrice"
	}
	return "unknown"
}

// Amount 获取金额
func (t *TeamDaoType) Amount(tx *types.Transaction) (int64, error) {
	return 0, nil
}

// CreateTx 根据json参数构造交易
func (t *TeamDaoType) CreateTx(action string, message json.RawMessage) (*types.Transaction, error) {
	tlog.Debug("teamdao.CreateTx", "action", action)
	cfg := t.GetConfig()
	if action == "TeamDaoFormTeam" {
		var param TeamDaoFormTeamTx
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawFormTeamTx(cfg, &param)
	} else if action == "TeamDaoStake" {
		var param TeamDaoStakeTx
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawStakeTx(cfg, &param)
	} else if action == "TeamDaoPredict" {
		var param TeamDaoPredictTx
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawPredictTx(cfg, &param)
	} else if action == "TeamDaoResolve" {
		var param TeamDaoResolveTx
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawResolveTx(cfg, &param)
	} else if action == "TeamDaoDistribute" {
		var param TeamDaoDistributeTx
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawDistributeTx(cfg, &param)
	} else if action == "TeamDaoInit" {
		var param TeamDaoInitTx
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawInitTx(cfg, &param)
	} else if action == "TeamDaoPublishPrice" {
		var param TeamDaoPublishPriceTx
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawPublishPriceTx(cfg, &param)
	}
	return nil, types.ErrNotSupport
}

// CreateRawFormTeamTx 构造组队交易
func CreateRawFormTeamTx(cfg *types.Chain33Config, parm *TeamDaoFormTeamTx) (*types.Transaction, error) {
	if parm == nil || parm.Name == "" {
		return nil, types.ErrInvalidParam
	}
	v := &TeamDaoFormTeam{
		Name:    parm.Name,
		Members: parm.Members,
	}
	action := &TeamDaoAction{
		Ty:    TeamDaoActionFormTeam,
		Value: &TeamDaoAction_FormTeam{FormTeam: v},
	}
	return newRawTx(cfg, action, parm.Fee)
}

// CreateRawStakeTx 构造质押交易
func CreateRawStakeTx(cfg *types.Chain33Config, parm *TeamDaoStakeTx) (*types.Transaction, error) {
	if parm == nil || parm.TeamName == "" {
		return nil, types.ErrInvalidParam
	}
	v := &TeamDaoStake{
		TeamName:   parm.TeamName,
		Percentage: parm.Percentage,
	}
	action := &TeamDaoAction{
		Ty:    TeamDaoActionStake,
		Value: &TeamDaoAction_Stake{Stake: v},
	}
	return newRawTx(cfg, action, parm.Fee)
}

// CreateRawPredictTx 构造预测交易
func CreateRawPredictTx(cfg *types.Chain33Config, parm *TeamDaoPredictTx) (*types.Transaction, error) {
	if parm == nil || parm.Id == "" || parm.TeamName == "" {
		return nil, types.ErrInvalidParam
	}
	v := &TeamDaoPredict{
		Id:              parm.Id,
		TeamName:        parm.TeamName,
		Asset:           parm.Asset,
		Direction:       parm.Direction,
		StakeAmount:     parm.StakeAmount,
		StakePercentage: parm.StakePercentage,
	}
	action := &TeamDaoAction{
		Ty:    TeamDaoActionPredict,
		Value: &TeamDaoAction_Predict{Predict: v},
	}
	return newRawTx(cfg, action, parm.Fee)
}

// CreateRawResolveTx 构造结算交易
func CreateRawResolveTx(cfg *types.Chain33Config, parm *TeamDaoResolveTx) (*types.Transaction, error) {
	if parm == nil || parm.Id == "" {
		return nil, types.ErrInvalidParam
	}
	v := &TeamDaoResolve{Id: parm.Id}
	action := &TeamDaoAction{
		Ty:    TeamDaoActionResolve,
		Value: &TeamDaoAction_Resolve{Resolve: v},
	}
	return newRawTx(cfg, action, parm.Fee)
}

// CreateRawDistributeTx 构造奖励发放交易
func CreateRawDistributeTx(cfg *types.Chain33Config, parm *TeamDaoDistributeTx) (*types.Transaction, error) {
	if parm == nil || parm.Id == "" {
		return nil, types.ErrInvalidParam
	}
	v := &TeamDaoDistribute{Id: parm.Id}
	action := &TeamDaoAction{
		Ty:    TeamDaoActionDistribute,
		Value: &TeamDaoAction_Distribute{Distribute: v},
	}
	return newRawTx(cfg, action, parm.Fee)
}

// CreateRawInitTx 构造初始化交易
func CreateRawInitTx(cfg *types.Chain33Config, parm *TeamDaoInitTx) (*types.Transaction, error) {
	if parm == nil || parm.OracleAddr == "" {
		return nil, types.ErrInvalidParam
	}
	v := &TeamDaoInit{
		TokenExec:   parm.TokenExec,
		TokenSymbol: parm.TokenSymbol,
		OracleAddr:  parm.OracleAddr,
	}
	action := &TeamDaoAction{
		Ty:    TeamDaoActionInit,
		Value: &TeamDaoAction_Init{Init: v},
	}
	return newRawTx(cfg, action, parm.Fee)
}

// CreateRawPublishPriceTx 构造喂价交易
func CreateRawPublishPriceTx(cfg *types.Chain33Config, parm *TeamDaoPublishPriceTx) (*types.Transaction, error) {
	if parm == nil || parm.Symbol == "" {
		return nil, types.ErrInvalidParam
	}
	v := &TeamDaoPublishPrice{
		Symbol: parm.Symbol,
		Price:  parm.Price,
	}
	action := &TeamDaoAction{
		Ty:    TeamDaoActionPublishPrice,
		Value: &TeamDaoAction_PublishPrice{PublishPrice: v},
	}
	return newRawTx(cfg, action, parm.Fee)
}

func newRawTx(cfg *types.Chain33Config, action *TeamDaoAction, fee int64) (*types.Transaction, error) {
	name := cfg.ExecName(TeamDaoX)
	tx := &types.Transaction{
		Execer:  []byte(name),
		Payload: types.Encode(action),
		Fee:     fee,
		To:      address.ExecAddress(name),
	}
	return types.FormatTx(cfg, name, tx)
}
