// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"strings"

	jsonrpc "github.com/33cn/chain33/rpc/jsonclient"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	pty "github.com/kaledao/plugin/plugin/dapp/teamdao/types"
)

// TeamDaoCmd 组队预测DAO命令行
func TeamDaoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teamdao",
		Short: "team prediction dao management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		formTeamRawTxCmd(),
		stakeRawTxCmd(),
		predictRawTxCmd(),
		resolveRawTxCmd(),
		distributeRawTxCmd(),
		initRawTxCmd(),
		publishPriceRawTxCmd(),
	)
	return cmd
}

func formTeamRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Form a new team",
		Run:   formTeam,
	}
	cmd.Flags().StringP("name", "n", "", "team name")
	cmd.MarkFlagRequired("name")
	cmd.Flags().StringP("members", "m", "", "comma separated member addresses, first one signs")
	cmd.MarkFlagRequired("members")
	return cmd
}

func formTeam(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	name, _ := cmd.Flags().GetString("name")
	members, _ := cmd.Flags().GetString("members")
	params := pty.TeamDaoFormTeamTx{
		Name:    name,
		Members: strings.Split(members, ","),
	}
	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "teamdao.TeamDaoFormTeamTx", params, &res)
	ctx.RunWithoutMarshal()
}

func stakeRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stake",
		Short: "Stake a percentage of balance into the team pool",
		Run:   stake,
	}
	cmd.Flags().StringP("team", "t", "", "team name")
	cmd.MarkFlagRequired("team")
	cmd.Flags().Int64P("percentage", "p", 0, "percentage of balance to stake (1-100)")
	cmd.MarkFlagRequired("percentage")
	return cmd
}

func stake(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	team, _ := cmd.Flags().GetString("team")
	percentage, _ := cmd.Flags().GetInt64("percentage")
	params := pty.TeamDaoStakeTx{
		TeamName:   team,
		Percentage: percentage,
	}
	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "teamdao.TeamDaoStakeTx", params, &res)
	ctx.RunWithoutMarshal()
}

func predictRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Submit a price direction prediction",
		Run:   predict,
	}
	cmd.Flags().StringP("id", "i", "", "prediction id, generated when empty")
	cmd.Flags().StringP("team", "t", "", "team name")
	cmd.MarkFlagRequired("team")
	cmd.Flags().StringP("asset", "a", "", "asset pair, e.g. EUR/USD")
	cmd.MarkFlagRequired("asset")
	cmd.Flags().BoolP("up", "u", false, "predict the price goes up")
	cmd.Flags().Int64P("amount", "m", 0, "staked amount backing the prediction")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().Int64P("percentage", "p", 0, "stake percentage, also the resolve difficulty")
	cmd.MarkFlagRequired("percentage")
	return cmd
}

func predict(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	id, _ := cmd.Flags().GetString("id")
	team, _ := cmd.Flags().GetString("team")
	asset, _ := cmd.Flags().GetString("asset")
	up, _ := cmd.Flags().GetBool("up")
	amount, _ := cmd.Flags().GetInt64("amount")
	percentage, _ := cmd.Flags().GetInt64("percentage")
	if id == "" {
		id = uuid.New().String()
	}
	params := pty.TeamDaoPredictTx{
		Id:              id,
		TeamName:        team,
		Asset:           asset,
		Direction:       up,
		StakeAmount:     amount,
		StakePercentage: percentage,
	}
	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "teamdao.TeamDaoPredictTx", params, &res)
	ctx.RunWithoutMarshal()
}

func resolveRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a prediction against the oracle feed",
		Run:   resolve,
	}
	cmd.Flags().StringP("id", "i", "", "prediction id")
	cmd.MarkFlagRequired("id")
	return cmd
}

func resolve(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	id, _ := cmd.Flags().GetString("id")
	params := pty.TeamDaoResolveTx{Id: id}
	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "teamdao.TeamDaoResolveTx", params, &res)
	ctx.RunWithoutMarshal()
}

func distributeRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Distribute the reward of a resolved prediction",
		Run:   distribute,
	}
	cmd.Flags().StringP("id", "i", "", "prediction id")
	cmd.MarkFlagRequired("id")
	return cmd
}

func distribute(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	id, _ := cmd.Flags().GetString("id")
	params := pty.TeamDaoDistributeTx{Id: id}
	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "teamdao.TeamDaoDistributeTx", params, &res)
	ctx.RunWithoutMarshal()
}

func initRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the dao config",
		Run:   initDao,
	}
	cmd.Flags().StringP("token_exec", "e", "", "staking token executor, empty for coins")
	cmd.Flags().StringP("token_symbol", "s", "", "staking token symbol")
	cmd.Flags().StringP("oracle", "o", "", "price publisher address")
	cmd.MarkFlagRequired("oracle")
	return cmd
}

func initDao(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	tokenExec, _ := cmd.Flags().GetString("token_exec")
	tokenSymbol, _ := cmd.Flags().GetString("token_symbol")
	oracle, _ := cmd.Flags().GetString("oracle")
	params := pty.TeamDaoInitTx{
		TokenExec:   tokenExec,
		TokenSymbol: tokenSymbol,
		OracleAddr:  oracle,
	}
	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "teamdao.TeamDaoInitTx", params, &res)
	ctx.RunWithoutMarshal()
}

func publishPriceRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish an oracle price round",
		Run:   publishPrice,
	}
	cmd.Flags().StringP("symbol", "s", "", "price symbol, e.g. EUR")
	cmd.MarkFlagRequired("symbol")
	cmd.Flags().Int64P("price", "p", 0, "price scaled by 1e14")
	cmd.MarkFlagRequired("price")
	return cmd
}

func publishPrice(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	symbol, _ := cmd.Flags().GetString("symbol")
	price, _ := cmd.Flags().GetInt64("price")
	params := pty.TeamDaoPublishPriceTx{
		Symbol: symbol,
		Price:  price,
	}
	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "teamdao.TeamDaoPublishPriceTx", params, &res)
	ctx.RunWithoutMarshal()
}
