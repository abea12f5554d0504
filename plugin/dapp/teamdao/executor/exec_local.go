// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

func (t *TeamDao) execLocal(receiptData *types.ReceiptData) ([]*types.KeyValue, error) {
	var set []*types.KeyValue
	for _, log := range receiptData.Logs {
		switch log.GetTy() {
		case pty.TyLogTeamDaoFormTeam:
			var receipt pty.ReceiptTeamForm
			err := types.Decode(log.Log, &receipt)
			if err != nil {
				return nil, err
			}
			set = append(set, t.saveTeamIndex(&receipt)...)
		case pty.TyLogTeamDaoPredict:
			var receipt pty.ReceiptPredict
			err := types.Decode(log.Log, &receipt)
			if err != nil {
				return nil, err
			}
			set = append(set, t.savePredIndex(&receipt)...)
		}
	}
	return set, nil
}

// ExecLocal_FormTeam 组队的本地索引
func (t *TeamDao) ExecLocal_FormTeam(payload *pty.TeamDaoFormTeam, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := t.execLocal(receiptData)
	if err != nil {
		return nil, err
	}
	return &types.LocalDBSet{KV: set}, nil
}

// ExecLocal_Stake 质押无本地索引
func (t *TeamDao) ExecLocal_Stake(payload *pty.TeamDaoStake, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecLocal_Predict 预测的本地索引
func (t *TeamDao) ExecLocal_Predict(payload *pty.TeamDaoPredict, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := t.execLocal(receiptData)
	if err != nil {
		return nil, err
	}
	return &types.LocalDBSet{KV: set}, nil
}

// ExecLocal_Resolve 结算无本地索引
func (t *TeamDao) ExecLocal_Resolve(payload *pty.TeamDaoResolve, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecLocal_Distribute 奖励发放无本地索引
func (t *TeamDao) ExecLocal_Distribute(payload *pty.TeamDaoDistribute, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecLocal_Init 初始化无本地索引
func (t *TeamDao) ExecLocal_Init(payload *pty.TeamDaoInit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecLocal_PublishPrice 喂价无本地索引
func (t *TeamDao) ExecLocal_PublishPrice(payload *pty.TeamDaoPublishPrice, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}
