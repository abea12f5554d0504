// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"context"

	"github.com/33cn/chain33/types"
	pty "github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

// FormTeam 构造组队的未签名交易
func (c *channelClient) FormTeam(ctx context.Context, parm *pty.TeamDaoFormTeamTx) (*types.UnsignTx, error) {
	cfg := c.GetConfig()
	tx, err := pty.CreateRawFormTeamTx(cfg, parm)
	if err != nil {
		return nil, err
	}
	return &types.UnsignTx{Data: types.Encode(tx)}, nil
}

// Stake 构造质押的未签名交易
func (c *channelClient) Stake(ctx context.Context, parm *pty.TeamDaoStakeTx) (*types.UnsignTx, error) {
	cfg := c.GetConfig()
	tx, err := pty.CreateRawStakeTx(cfg, parm)
	if err != nil {
		return nil, err
	}
	return &types.UnsignTx{Data: types.Encode(tx)}, nil
}

// Predict 构造预测的未签名交易
func (c *channelClient) Predict(ctx context.Context, parm *pty.TeamDaoPredictTx) (*types.UnsignTx, error) {
	cfg := c.GetConfig()
	tx, err := pty.CreateRawPredictTx(cfg, parm)
	if err != nil {
		return nil, err
	}
	return &types.UnsignTx{Data: types.Encode(tx)}, nil
}

// Resolve 构造结算的未签名交易
func (c *channelClient) Resolve(ctx context.Context, parm *pty.TeamDaoResolveTx) (*types.UnsignTx, error) {
	cfg := c.GetConfig()
	tx, err := pty.CreateRawResolveTx(cfg, parm)
	if err != nil {
		return nil, err
	}
	return &types.UnsignTx{Data: types.Encode(tx)}, nil
}

// Distribute 构造奖励发放的未签名交易
func (c *channelClient) Distribute(ctx context.Context, parm *pty.TeamDaoDistributeTx) (*types.UnsignTx, error) {
	cfg := c.GetConfig()
	tx, err := pty.CreateRawDistributeTx(cfg, parm)
	if err != nil {
		return nil, err
	}
	return &types.UnsignTx{Data: types.Encode(tx)}, nil
}

// InitDao 构造初始化的未签名交易
func (c *channelClient) InitDao(ctx context.Context, parm *pty.TeamDaoInitTx) (*types.UnsignTx, error) {
	cfg := c.GetConfig()
	tx, err := pty.CreateRawInitTx(cfg, parm)
	if err != nil {
		return nil, err
	}
	return &types.UnsignTx{Data: types.Encode(tx)}, nil
}

// PublishPrice 构造喂价的未签名交易
func (c *channelClient) PublishPrice(ctx context.Context, parm *pty.TeamDaoPublishPriceTx) (*types.UnsignTx, error) {
	cfg := c.GetConfig()
	tx, err := pty.CreateRawPublishPriceTx(cfg, parm)
	if err != nil {
		return nil, err
	}
	return &types.UnsignTx{Data: types.Encode(tx)}, nil
}
