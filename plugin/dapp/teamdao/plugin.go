// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teamdao

import (
	"github.com/33cn/chain33/pluginmgr"
	"github.com/kaledao/plugin/plugin/dapp/teamdao/commands"
	"github.com/kaledao/plugin/plugin/dapp/teamdao/executor"
	"github.com/kaledao/plugin/plugin/dapp/teamdao/rpc"
	"github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     types.TeamDaoX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.TeamDaoCmd,
		RPC:      rpc.Init,
	})
}
