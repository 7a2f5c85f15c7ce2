// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	useTLS  bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "token-cli"
	app.Usage = "query and operate a tokend"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " tokend client RPC `HOST:PORT`",
			EnvVar: "TOKEND_CONNECT",
		},
		cli.BoolFlag{
			Name:  "plain, P",
			Usage: " connect without TLS",
		},
	}

	callerFlag := cli.StringFlag{
		Name:  "caller, C",
		Value: "",
		Usage: "*base58 `ACCOUNT` making the request",
	}
	amountFlag := cli.StringFlag{
		Name:  "amount, a",
		Value: "",
		Usage: "*decimal `AMOUNT`",
	}
	toFlag := cli.StringFlag{
		Name:  "to, t",
		Value: "",
		Usage: "*recipient base58 `ACCOUNT`",
	}

	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display token metadata and statistics",
			Action: runInfo,
		},
		{
			Name:   "node",
			Usage:  "display tokend status",
			Action: runNode,
		},
		{
			Name:      "balance",
			Usage:     "display balance and approvals of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: "*base58 `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: " also show allowance for spender `ACCOUNT`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "holders",
			Usage:     "list accounts with non-zero balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "start, s",
					Value: 0,
					Usage: " first `INDEX`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum `COUNT` of entries",
				},
			},
			Action: runHolders,
		},
		{
			Name:      "transfer",
			Usage:     "transfer from the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				callerFlag,
				toFlag,
				amountFlag,
				cli.StringFlag{
					Name:  "fee-limit, l",
					Value: "",
					Usage: " maximum fee `AMOUNT` the caller accepts",
				},
				cli.BoolFlag{
					Name:  "include-fee, i",
					Usage: " deduct the fee from the amount",
				},
				cli.BoolFlag{
					Name:  "notify, N",
					Usage: " notify the recipient after commit",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "transfer-from",
			Usage:     "transfer against an allowance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				callerFlag,
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*owner base58 `ACCOUNT`",
				},
				toFlag,
				amountFlag,
			},
			Action: runTransferFrom,
		},
		{
			Name:      "approve",
			Usage:     "set the allowance of a spender",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				callerFlag,
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spender base58 `ACCOUNT`",
				},
				amountFlag,
			},
			Action: runApprove,
		},
		{
			Name:      "mint",
			Usage:     "create new supply (owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{callerFlag, toFlag, amountFlag},
			Action:    runMint,
		},
		{
			Name:      "burn",
			Usage:     "destroy supply from the caller",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{callerFlag, amountFlag},
			Action:    runBurn,
		},
		{
			Name:      "update",
			Usage:     "change an owner setting [name|logo|fee|fee_to|owner|test]",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				callerFlag,
				cli.StringFlag{
					Name:  "setting, s",
					Value: "",
					Usage: "*setting `NAME`",
				},
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: " new `VALUE`",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "transaction",
			Usage:     "display one ledger record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, I",
					Value: 0,
					Usage: "*record `ID`",
				},
			},
			Action: runTransaction,
		},
		{
			Name:      "transactions",
			Usage:     "list ledger records, optionally for one account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: " only records involving `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first `INDEX`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum `COUNT` of records",
				},
			},
			Action: runTransactions,
		},
		{
			Name:      "notify",
			Usage:     "deliver the notification for a transfer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				callerFlag,
				cli.Uint64Flag{
					Name:  "id, I",
					Value: 0,
					Usage: "*transfer record `ID`",
				},
			},
			Action: runNotify,
		},
		{
			Name:      "bid",
			Usage:     "bid resources in the current auction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "bidder, b",
					Value: "",
					Usage: "*bidder base58 `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "resources, r",
					Value: 0,
					Usage: "*`COUNT` of resources",
				},
			},
			Action: runBid,
		},
		{
			Name:   "auction",
			Usage:  "display the current auction round",
			Action: runAuctionInfo,
		},
		{
			Name:   "run-auction",
			Usage:  "settle the current auction round",
			Action: runAuction,
		},
		{
			Name:      "auction-record",
			Usage:     "display a settled auction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, I",
					Value: 0,
					Usage: "*auction `ID`",
				},
			},
			Action: runAuctionRecord,
		},
		{
			Name:      "configure-auction",
			Usage:     "change auction settings or report the resource balance (owner only)",
			ArgsUsage: "\n   (* = required, + = at least one)",
			Flags: []cli.Flag{
				callerFlag,
				cli.Uint64Flag{
					Name:  "min-resources, m",
					Value: 0,
					Usage: "+fee ratio threshold `COUNT`",
				},
				cli.StringFlag{
					Name:  "period, p",
					Value: "",
					Usage: "+auction `DURATION` e.g. 24h",
				},
				cli.Uint64Flag{
					Name:  "resources, r",
					Value: 0,
					Usage: "+reported resource balance `COUNT`",
				},
			},
			Action: runConfigureAuction,
		},
		{
			Name:  "version",
			Usage: "display token-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			useTLS:  !c.GlobalBool("plain"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
