// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// teamdao action ty
const (
	TeamDaoActionFormTeam = iota + 1
	TeamDaoActionStake
	TeamDaoActionPredict
	TeamDaoActionResolve
	TeamDaoActionDistribute
	TeamDaoActionInit
	TeamDaoActionPublishPrice
)

// log ty
const (
	TyLogTeamDaoFormTeam   = 860
	TyLogTeamDaoStake      = 861
	TyLogTeamDaoPredict    = 862
	TyLogTeamDaoResolve    = 863
	TyLogTeamDaoDistribute = 864
	TyLogTeamDaoInit       = 865
	TyLogTeamDaoPrice      = 866
	// 哈希难度校验通过
	TyLogTeamDaoHashApproved = 867
)

const (
	// FormTeamAction 组队
	FormTeamAction = "FormTeam"
	// StakeAction 质押
	StakeAction = "Stake"
	// PredictAction 提交预测
	PredictAction = "Predict"
	// ResolveAction 结算预测
	ResolveAction = "Resolve"
	// DistributeAction 发放奖励
	DistributeAction = "Distribute"
	// InitAction 初始化配置
	InitAction = "Init"
	// PublishPriceAction 喂价
	PublishPriceAction = "PublishPrice"
)

const (
	// FuncNameQueryTeamInfo 查询队伍
	FuncNameQueryTeamInfo = "GetTeamInfo"
	// FuncNameQueryTeamList 分页查询队伍列表
	FuncNameQueryTeamList = "ListTeams"
	// FuncNameQueryPredictionInfo 查询预测
	FuncNameQueryPredictionInfo = "GetPredictionInfo"
	// FuncNameQueryPredictionList 分页查询队伍下的预测
	FuncNameQueryPredictionList = "ListPredictions"
	// FuncNameQueryUserStake 查询用户累计质押
	FuncNameQueryUserStake = "GetUserStake"
	// FuncNameQueryUserTeams 查询用户所在队伍
	FuncNameQueryUserTeams = "GetUserTeams"
	// FuncNameQueryConfig 查询合约配置
	FuncNameQueryConfig = "GetConfig"
	// FuncNameQueryLastPrice 查询最新喂价
	FuncNameQueryLastPrice = "GetLastPrice"
)

// MaxTeamMembers 单个队伍成员上限
const MaxTeamMembers = 100

// MaxPriceRounds 单个交易对保留的喂价轮数
const MaxPriceRounds = 100

// RewardDenominator 奖励比例, 奖励 = 质押 + 质押/RewardDenominator
const RewardDenominator = 10

var (
	// TeamDaoX 执行器名称
	TeamDaoX = "teamdao"
	// ExecerTeamDao 执行器名称
	ExecerTeamDao = []byte(TeamDaoX)
)
