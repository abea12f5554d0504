// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

// Exec_FormTeam 组队
func (t *TeamDao) Exec_FormTeam(payload *pty.TeamDaoFormTeam, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(t, tx, index)
	return action.FormTeam(payload)
}

// Exec_Stake 质押
func (t *TeamDao) Exec_Stake(payload *pty.TeamDaoStake, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(t, tx, index)
	return action.Stake(payload)
}

// Exec_Predict 提交预测
func (t *TeamDao) Exec_Predict(payload *pty.TeamDaoPredict, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(t, tx, index)
	return action.Predict(payload)
}

// Exec_Resolve 结算预测
func (t *TeamDao) Exec_Resolve(payload *pty.TeamDaoResolve, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(t, tx, index)
	return action.Resolve(payload)
}

// Exec_Distribute 发放奖励
func (t *TeamDao) Exec_Distribute(payload *pty.TeamDaoDistribute, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(t, tx, index)
	return action.Distribute(payload)
}

// Exec_Init 初始化配置
func (t *TeamDao) Exec_Init(payload *pty.TeamDaoInit, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(t, tx, index)
	return action.Init(payload)
}

// Exec_PublishPrice 喂价
func (t *TeamDao) Exec_PublishPrice(payload *pty.TeamDaoPublishPrice, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(t, tx, index)
	return action.PublishPrice(payload)
}
