// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"context"
	"encoding/hex"

	"github.com/33cn/chain33/types"
	pty "github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

// TeamDaoFormTeamTx 构造组队交易
func (c *Jrpc) TeamDaoFormTeamTx(parm *pty.TeamDaoFormTeamTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.FormTeam(context.Background(), parm)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// TeamDaoStakeTx 构造质押交易
func (c *Jrpc) TeamDaoStakeTx(parm *pty.TeamDaoStakeTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.Stake(context.Background(), parm)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// TeamDaoPredictTx 构造预测交易
func (c *Jrpc) TeamDaoPredictTx(parm *pty.TeamDaoPredictTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.Predict(context.Background(), parm)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// TeamDaoResolveTx 构造结算交易
func (c *Jrpc) TeamDaoResolveTx(parm *pty.TeamDaoResolveTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.Resolve(context.Background(), parm)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// TeamDaoDistributeTx 构造奖励发放交易
func (c *Jrpc) TeamDaoDistributeTx(parm *pty.TeamDaoDistributeTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.Distribute(context.Background(), parm)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// TeamDaoInitTx 构造初始化交易
func (c *Jrpc) TeamDaoInitTx(parm *pty.TeamDaoInitTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.InitDao(context.Background(), parm)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// TeamDaoPublishPriceTx 构造喂价交易
func (c *Jrpc) TeamDaoPublishPriceTx(parm *pty.TeamDaoPublishPriceTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.PublishPrice(context.Background(), parm)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}
