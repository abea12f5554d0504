package init

import (
	_ "github.com/kaledao/plugin/plugin/dapp/teamdao" //auto gen
)
