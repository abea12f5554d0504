// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrLowBalance 余额不足
	ErrLowBalance = errors.New("ErrLowBalance")
	// ErrUnauthorized 无权限
	ErrUnauthorized = errors.New("ErrUnauthorized")
	// ErrTeamNotFound 队伍不存在
	ErrTeamNotFound = errors.New("ErrTeamNotFound")
	// ErrTeamExists 队伍已存在
	ErrTeamExists = errors.New("ErrTeamExists")
	// ErrInvalidStakePercentage 质押比例非法
	ErrInvalidStakePercentage = errors.New("ErrInvalidStakePercentage")
	// ErrPredictionExists 预测已存在
	ErrPredictionExists = errors.New("ErrPredictionExists")
	// ErrPredictionNotFound 预测不存在
	ErrPredictionNotFound = errors.New("ErrPredictionNotFound")
	// ErrOracleDataUnavailable 预言机数据不可用
	ErrOracleDataUnavailable = errors.New("ErrOracleDataUnavailable")
	// ErrAlreadyResolved 预测已结算
	ErrAlreadyResolved = errors.New("ErrAlreadyResolved")
	// ErrHashVerificationFailed 哈希校验失败
	ErrHashVerificationFailed = errors.New("ErrHashVerificationFailed")
	// ErrRewardAlreadyDistributed 奖励已发放
	ErrRewardAlreadyDistributed = errors.New("ErrRewardAlreadyDistributed")
	// ErrDaoConfigExists 配置已初始化
	ErrDaoConfigExists = errors.New("ErrDaoConfigExists")
	// ErrInvalidPrice 价格非法
	ErrInvalidPrice = errors.New("ErrInvalidPrice")
	// ErrInvalidParam 参数非法
	ErrInvalidParam = errors.New("ErrInvalidParam")
)
