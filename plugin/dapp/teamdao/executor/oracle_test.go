// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/stretchr/testify/require"
	pty "github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

func TestNormalizeAsset(t *testing.T) {
	require.Equal(t, "EUR", normalizeAsset("EUR/USD"))
	require.Equal(t, "BTC", normalizeAsset("BTC"))
}

func TestPriceLookup(t *testing.T) {
	feed := &pty.PriceFeed{Symbol: "EUR"}

	_, ok := latestPrice(feed)
	require.False(t, ok)
	_, ok = priceAt(feed, 100)
	require.False(t, ok)

	feed.Rounds = []*pty.PriceRound{
		{Price: 100, Timestamp: 10},
		{Price: 105, Timestamp: 20},
		{Price: 110, Timestamp: 30},
	}

	price, ok := latestPrice(feed)
	require.True(t, ok)
	require.Equal(t, int64(110), price)

	price, ok = priceAt(feed, 25)
	require.True(t, ok)
	require.Equal(t, int64(105), price)

	price, ok = priceAt(feed, 30)
	require.True(t, ok)
	require.Equal(t, int64(110), price)

	_, ok = priceAt(feed, 5)
	require.False(t, ok)
}
