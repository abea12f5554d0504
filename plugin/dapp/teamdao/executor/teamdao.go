// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	log "github.com/33cn/chain33/common/log/log15"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	pty "github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

var tlog = log.New("module", "execs.teamdao")

var driverName = pty.TeamDaoX

// Init 注册teamdao执行器
func Init(name string, cfg *types.Chain33Config, sub []byte) {
	drivers.Register(cfg, GetName(), newTeamDao, cfg.GetDappFork(driverName, "Enable"))
	InitExecType()
}

// InitExecType 初始化执行器方法表
func InitExecType() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&TeamDao{}))
}

// TeamDao 执行器结构体
type TeamDao struct {
	drivers.DriverBase
}

func newTeamDao() drivers.Driver {
	t := &TeamDao{}
	t.SetChild(t)
	t.SetExecutorType(types.LoadExecutorType(driverName))
	return t
}

// GetName 获取执行器名称
func GetName() string {
	return newTeamDao().GetName()
}

// GetDriverName 获取驱动名称
func (t *TeamDao) GetDriverName() string {
	return driverName
}

func (t *TeamDao) saveTeamIndex(receipt *pty.ReceiptTeamForm) []*types.KeyValue {
	kv := &types.KeyValue{
		Key:   calcTeamListKey(receipt.Index),
		Value: []byte(receipt.Name),
	}
	return []*types.KeyValue{kv}
}

func (t *TeamDao) delTeamIndex(receipt *pty.ReceiptTeamForm) []*types.KeyValue {
	kv := &types.KeyValue{
		Key:   calcTeamListKey(receipt.Index),
		Value: nil,
	}
	return []*types.KeyValue{kv}
}

func (t *TeamDao) savePredIndex(receipt *pty.ReceiptPredict) []*types.KeyValue {
	kv := &types.KeyValue{
		Key:   calcPredListKey(receipt.TeamName, receipt.Index),
		Value: []byte(receipt.Id),
	}
	return []*types.KeyValue{kv}
}

func (t *TeamDao) delPredIndex(receipt *pty.ReceiptPredict) []*types.KeyValue {
	kv := &types.KeyValue{
		Key:   calcPredListKey(receipt.TeamName, receipt.Index),
		Value: nil,
	}
	return []*types.KeyValue{kv}
}
