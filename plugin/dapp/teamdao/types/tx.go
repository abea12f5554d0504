// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// TeamDaoFormTeamTx 组队交易的构造入参
type TeamDaoFormTeamTx struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Fee     int64    `json:"fee"`
}

// TeamDaoStakeTx 质押交易的构造入参
type TeamDaoStakeTx struct {
	TeamName   string `json:"teamName"`
	Percentage int64  `json:"percentage"`
	Fee        int64  `json:"fee"`
}

// TeamDaoPredictTx 预测交易的构造入参
type TeamDaoPredictTx struct {
	Id              string `json:"id"`
	TeamName        string `json:"teamName"`
	Asset           string `json:"asset"`
	Direction       bool   `json:"direction"`
	StakeAmount     int64  `json:"stakeAmount"`
	StakePercentage int64  `json:"stakePercentage"`
	Fee             int64  `json:"fee"`
}

// TeamDaoResolveTx 结算交易的构造入参
type TeamDaoResolveTx struct {
	Id  string `json:"id"`
	Fee int64  `json:"fee"`
}

// TeamDaoDistributeTx 奖励发放交易的构造入参
type TeamDaoDistributeTx struct {
	Id  string `json:"id"`
	Fee int64  `json:"fee"`
}

// TeamDaoInitTx 初始化交易的构造入参
type TeamDaoInitTx struct {
	TokenExec   string `json:"tokenExec"`
	TokenSymbol string `json:"tokenSymbol"`
	OracleAddr  string `json:"oracleAddr"`
	Fee         int64  `json:"fee"`
}

// TeamDaoPublishPriceTx 喂价交易的构造入参
type TeamDaoPublishPriceTx struct {
	Symbol string `json:"symbol"`
	Price  int64  `json:"price"`
	Fee    int64  `json:"fee"`
}
