// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

// Query_GetTeamInfo 查询队伍
func (t *TeamDao) Query_GetTeamInfo(in *pty.ReqTeamInfo) (types.Message, error) {
	team, err := getTeam(t.GetStateDB(), in.Name)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, pty.ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

// Query_GetPredictionInfo 查询预测
func (t *TeamDao) Query_GetPredictionInfo(in *pty.ReqPredictionInfo) (types.Message, error) {
	pred, err := getPrediction(t.GetStateDB(), in.Id)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, pty.ErrPredictionNotFound
		}
		return nil, err
	}
	return pred, nil
}

// Query_GetUserStake 查询用户累计质押, 未质押过返回零值
func (t *TeamDao) Query_GetUserStake(in *types.ReqAddr) (types.Message, error) {
	return getUserStake(t.GetStateDB(), in.Addr)
}

// Query_GetUserTeams 查询用户所在的全部队伍
func (t *TeamDao) Query_GetUserTeams(in *types.ReqAddr) (types.Message, error) {
	return getUserTeams(t.GetStateDB(), in.Addr)
}

// Query_GetConfig 查询合约配置
func (t *TeamDao) Query_GetConfig(in *types.ReqNil) (types.Message, error) {
	return getConfig(t.GetStateDB())
}

// Query_GetLastPrice 查询最新喂价
func (t *TeamDao) Query_GetLastPrice(in *pty.ReqPriceInfo) (types.Message, error) {
	feed, err := getPriceFeed(t.GetStateDB(), in.Symbol)
	if err != nil {
		return nil, err
	}
	if len(feed.Rounds) == 0 {
		return nil, pty.ErrOracleDataUnavailable
	}
	return feed.Rounds[len(feed.Rounds)-1], nil
}

// Query_ListTeams 按创建顺序分页列出队伍
func (t *TeamDao) Query_ListTeams(in *pty.ReqTeamList) (types.Message, error) {
	count := in.Count
	if count <= 0 {
		count = 20
	}
	var key []byte
	if in.Index > 0 {
		key = calcTeamListKey(in.Index)
	}
	values, err := t.GetLocalDB().List([]byte(teamListPrefix), key, count, in.Direction)
	if err != nil {
		return nil, err
	}
	var reply pty.ReplyTeamList
	for _, value := range values {
		team, err := getTeam(t.GetStateDB(), string(value))
		if err != nil {
			tlog.Error("Query_ListTeams", "name", string(value), "err", err)
			continue
		}
		reply.Teams = append(reply.Teams, team)
	}
	return &reply, nil
}

// Query_ListPredictions 按提交顺序分页列出队伍下的预测
func (t *TeamDao) Query_ListPredictions(in *pty.ReqPredictionList) (types.Message, error) {
	if in.TeamName == "" {
		return nil, pty.ErrInvalidParam
	}
	count := in.Count
	if count <= 0 {
		count = 20
	}
	var key []byte
	if in.Index > 0 {
		key = calcPredListKey(in.TeamName, in.Index)
	}
	values, err := t.GetLocalDB().List(calcPredListPrefix(in.TeamName), key, count, in.Direction)
	if err != nil {
		return nil, err
	}
	var reply pty.ReplyPredictionList
	for _, value := range values {
		pred, err := getPrediction(t.GetStateDB(), string(value))
		if err != nil {
			tlog.Error("Query_ListPredictions", "id", string(value), "err", err)
			continue
		}
		reply.Predictions = append(reply.Predictions, pred)
	}
	return &reply, nil
}
