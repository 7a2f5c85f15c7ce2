// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokend/command/token-cli/rpccalls"
	"github.com/bitmark-inc/tokend/rpc/auction"
	"github.com/bitmark-inc/tokend/rpc/token"
	"github.com/bitmark-inc/tokend/rpc/transfer"
)

// connect, run f with the client then print its result
func withClient(c *cli.Context, f func(client *rpccalls.Client) (interface{}, error)) error {
	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s  tls: %t\n", m.connect, m.useTLS)
	}

	client, err := rpccalls.NewClient(m.connect, m.useTLS, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := f(client)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func runInfo(c *cli.Context) error {
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.TokenInfo()
	})
}

func runNode(c *cli.Context) error {
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.NodeInfo()
	})
}

func runBalance(c *cli.Context) error {
	holder, err := checkAccount("holder", c.String("holder"))
	if nil != err {
		return err
	}
	spender, err := checkOptionalAccount("spender", c.String("spender"))
	if nil != err {
		return err
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Balance(&token.BalanceArguments{
			Holder:  holder,
			Spender: spender,
		})
	})
}

func runHolders(c *cli.Context) error {
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Holders(&token.HoldersArguments{
			Start: c.Int("start"),
			Count: c.Int("count"),
		})
	})
}

func runTransfer(c *cli.Context) error {
	caller, err := checkAccount("caller", c.String("caller"))
	if nil != err {
		return err
	}
	to, err := checkAccount("to", c.String("to"))
	if nil != err {
		return err
	}
	value, err := checkAmount("amount", c.String("amount"))
	if nil != err {
		return err
	}

	args := &transfer.SendArguments{
		Caller:     caller,
		To:         to,
		Amount:     value,
		IncludeFee: c.Bool("include-fee"),
		Notify:     c.Bool("notify"),
	}
	if "" != c.String("fee-limit") {
		limit, err := checkAmount("fee-limit", c.String("fee-limit"))
		if nil != err {
			return err
		}
		args.FeeLimit = &limit
	}

	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Send(args)
	})
}

func runTransferFrom(c *cli.Context) error {
	caller, err := checkAccount("caller", c.String("caller"))
	if nil != err {
		return err
	}
	from, err := checkAccount("from", c.String("from"))
	if nil != err {
		return err
	}
	to, err := checkAccount("to", c.String("to"))
	if nil != err {
		return err
	}
	value, err := checkAmount("amount", c.String("amount"))
	if nil != err {
		return err
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.From(&transfer.FromArguments{
			Caller: caller,
			From:   from,
			To:     to,
			Amount: value,
		})
	})
}

func runApprove(c *cli.Context) error {
	caller, err := checkAccount("caller", c.String("caller"))
	if nil != err {
		return err
	}
	spender, err := checkAccount("spender", c.String("spender"))
	if nil != err {
		return err
	}
	value, err := checkAmount("amount", c.String("amount"))
	if nil != err {
		return err
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Approve(&transfer.ApproveArguments{
			Caller:  caller,
			Spender: spender,
			Amount:  value,
		})
	})
}

func runMint(c *cli.Context) error {
	caller, err := checkAccount("caller", c.String("caller"))
	if nil != err {
		return err
	}
	to, err := checkAccount("to", c.String("to"))
	if nil != err {
		return err
	}
	value, err := checkAmount("amount", c.String("amount"))
	if nil != err {
		return err
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Mint(&transfer.SupplyArguments{
			Caller: caller,
			To:     to,
			Amount: value,
		})
	})
}

func runBurn(c *cli.Context) error {
	caller, err := checkAccount("caller", c.String("caller"))
	if nil != err {
		return err
	}
	value, err := checkAmount("amount", c.String("amount"))
	if nil != err {
		return err
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Burn(&transfer.SupplyArguments{
			Caller: caller,
			Amount: value,
		})
	})
}

func runUpdate(c *cli.Context) error {
	caller, err := checkAccount("caller", c.String("caller"))
	if nil != err {
		return err
	}
	setting := c.String("setting")
	if "" == setting {
		return fmt.Errorf("setting is required")
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Update(&token.UpdateArguments{
			Caller:  caller,
			Setting: setting,
			Value:   c.String("value"),
		})
	})
}

func runTransaction(c *cli.Context) error {
	if !c.IsSet("id") {
		return ErrRequiredId
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Transaction(&token.TransactionArguments{
			Id: c.Uint64("id"),
		})
	})
}

func runTransactions(c *cli.Context) error {
	holder, err := checkOptionalAccount("holder", c.String("holder"))
	if nil != err {
		return err
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Transactions(&token.TransactionsArguments{
			Holder: holder,
			Start:  c.Uint64("start"),
			Count:  c.Int("count"),
		})
	})
}

func runNotify(c *cli.Context) error {
	caller, err := checkAccount("caller", c.String("caller"))
	if nil != err {
		return err
	}
	if !c.IsSet("id") {
		return ErrRequiredId
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Notify(&transfer.NotifyArguments{
			Caller: caller,
			Id:     c.Uint64("id"),
		})
	})
}

func runBid(c *cli.Context) error {
	bidder, err := checkAccount("bidder", c.String("bidder"))
	if nil != err {
		return err
	}
	resources := c.Uint64("resources")
	if 0 == resources {
		return fmt.Errorf("resources must be positive")
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Bid(&auction.BidArguments{
			Bidder:    bidder,
			Resources: resources,
		})
	})
}

func runAuctionInfo(c *cli.Context) error {
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.AuctionInfo()
	})
}

func runAuction(c *cli.Context) error {
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.RunAuction()
	})
}

func runAuctionRecord(c *cli.Context) error {
	if !c.IsSet("id") {
		return ErrRequiredId
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.GetAuction(&auction.GetArguments{
			Id: c.Uint64("id"),
		})
	})
}

func runConfigureAuction(c *cli.Context) error {
	caller, err := checkAccount("caller", c.String("caller"))
	if nil != err {
		return err
	}
	args := &auction.ConfigureArguments{
		Caller:       caller,
		MinResources: c.Uint64("min-resources"),
		Period:       c.String("period"),
	}
	if c.IsSet("resources") {
		resources := c.Uint64("resources")
		args.ResourceBalance = &resources
	}
	if 0 == args.MinResources && "" == args.Period && nil == args.ResourceBalance {
		return fmt.Errorf("one of min-resources, period or resources is required")
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		if err := client.Configure(args); nil != err {
			return nil, err
		}
		return args, nil
	})
}
