// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	rpctypes "github.com/33cn/chain33/rpc/types"
)

// Jrpc jrpc接口
type Jrpc struct {
	cli *channelClient
}

// Grpc grpc接口
type Grpc struct {
	*channelClient
}

type channelClient struct {
	rpctypes.ChannelClient
}

// Init 注册rpc接口
func Init(name string, s rpctypes.RPCServer) {
	cli := &channelClient{}
	grpc := &Grpc{channelClient: cli}
	cli.Init(name, s, &Jrpc{cli: cli}, grpc)
}
