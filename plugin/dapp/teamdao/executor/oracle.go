// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/types"
	"github.com/pkg/errors"
	pty "github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

// 交易对到喂价symbol的固定映射, 未登记的原样使用
var assetSymbols = map[string]string{
	"EUR/USD": "EUR",
}

func normalizeAsset(asset string) string {
	if symbol, ok := assetSymbols[asset]; ok {
		return symbol
	}
	return asset
}

func getPriceFeed(db dbm.KV, symbol string) (*pty.PriceFeed, error) {
	value, err := db.Get(priceFeedKey(symbol))
	if err != nil {
		if err == types.ErrNotFound {
			return &pty.PriceFeed{Symbol: symbol}, nil
		}
		return nil, err
	}
	var feed pty.PriceFeed
	err = types.Decode(value, &feed)
	if err != nil {
		return nil, errors.Wrapf(err, "decode price feed %s", symbol)
	}
	return &feed, nil
}

// 最新一轮喂价
func latestPrice(feed *pty.PriceFeed) (int64, bool) {
	if len(feed.Rounds) == 0 {
		return 0, false
	}
	return feed.Rounds[len(feed.Rounds)-1].Price, true
}

// timestamp时刻的价格, 即不晚于该时刻的最近一轮喂价
func priceAt(feed *pty.PriceFeed, timestamp int64) (int64, bool) {
	for i := len(feed.Rounds) - 1; i >= 0; i-- {
		if feed.Rounds[i].Timestamp <= timestamp {
			return feed.Rounds[i].Price, true
		}
	}
	return 0, false
}
