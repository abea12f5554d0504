// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import "fmt"

const (
	teamPrefix       = "mavl-teamdao-team-"
	userStakePrefix  = "mavl-teamdao-stake-"
	userTeamsPrefix  = "mavl-teamdao-uteams-"
	predictionPrefix = "mavl-teamdao-pred-"
	daoConfigKeyName = "mavl-teamdao-config"
	priceFeedPrefix  = "mavl-teamdao-price-"
)

const (
	teamListPrefix = "LODB-teamdao-team:"
	predListPrefix = "LODB-teamdao-pred:"
)

func teamKey(name string) []byte {
	return []byte(fmt.Sprintf("%s%s", teamPrefix, name))
}

func userStakeKey(addr string) []byte {
	return []byte(fmt.Sprintf("%s%s", userStakePrefix, addr))
}

func userTeamsKey(addr string) []byte {
	return []byte(fmt.Sprintf("%s%s", userTeamsPrefix, addr))
}

func predictionKey(id string) []byte {
	return []byte(fmt.Sprintf("%s%s", predictionPrefix, id))
}

func daoConfigKey() []byte {
	return []byte(daoConfigKeyName)
}

func priceFeedKey(symbol string) []byte {
	return []byte(fmt.Sprintf("%s%s", priceFeedPrefix, symbol))
}

func calcTeamListKey(index int64) []byte {
	return []byte(fmt.Sprintf("%s%018d", teamListPrefix, index))
}

func calcPredListPrefix(teamName string) []byte {
	return []byte(fmt.Sprintf("%s%s:", predListPrefix, teamName))
}

func calcPredListKey(teamName string, index int64) []byte {
	return []byte(fmt.Sprintf("%s%s:%018d", predListPrefix, teamName, index))
}
