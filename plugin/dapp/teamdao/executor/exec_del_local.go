// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

func (t *TeamDao) execDelLocal(receiptData *types.ReceiptData) ([]*types.KeyValue, error) {
	var set []*types.KeyValue
	for _, log := range receiptData.Logs {
		switch log.GetTy() {
		case pty.TyLogTeamDaoFormTeam:
			var receipt pty.ReceiptTeamForm
			err := types.Decode(log.Log, &receipt)
			if err != nil {
				return nil, err
			}
			set = append(set, t.delTeamIndex(&receipt)...)
		case pty.TyLogTeamDaoPredict:
			var receipt pty.ReceiptPredict
			err := types.Decode(log.Log, &receipt)
			if err != nil {
				return nil, err
			}
			set = append(set, t.delPredIndex(&receipt)...)
		}
	}
	return set, nil
}

// ExecDelLocal_FormTeam 回滚组队的本地索引
func (t *TeamDao) ExecDelLocal_FormTeam(payload *pty.TeamDaoFormTeam, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := t.execDelLocal(receiptData)
	if err != nil {
		return nil, err
	}
	return &types.LocalDBSet{KV: set}, nil
}

// ExecDelLocal_Stake 质押无本地索引
func (t *TeamDao) ExecDelLocal_Stake(payload *pty.TeamDaoStake, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal_Predict 回滚预测的本地索引
func (t *TeamDao) ExecDelLocal_Predict(payload *pty.TeamDaoPredict, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := t.execDelLocal(receiptData)
	if err != nil {
		return nil, err
	}
	return &types.LocalDBSet{KV: set}, nil
}

// ExecDelLocal_Resolve 结算无本地索引
func (t *TeamDao) ExecDelLocal_Resolve(payload *pty.TeamDaoResolve, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal_Distribute 奖励发放无本地索引
func (t *TeamDao) ExecDelLocal_Distribute(payload *pty.TeamDaoDistribute, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal_Init 初始化无本地索引
func (t *TeamDao) ExecDelLocal_Init(payload *pty.TeamDaoInit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal_PublishPrice 喂价无本地索引
func (t *TeamDao) ExecDelLocal_PublishPrice(payload *pty.TeamDaoPublishPrice, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}
