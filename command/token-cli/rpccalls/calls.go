// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/tokend/rpc/auction"
	"github.com/bitmark-inc/tokend/rpc/node"
	"github.com/bitmark-inc/tokend/rpc/token"
	"github.com/bitmark-inc/tokend/rpc/transfer"
)

// NodeInfo - daemon status
func (c *Client) NodeInfo() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := c.call("Node.Info", &node.InfoArguments{}, reply)
	return reply, err
}

// TokenInfo - token metadata and statistics
func (c *Client) TokenInfo() (*token.InfoReply, error) {
	reply := &token.InfoReply{}
	err := c.call("Token.Info", &token.InfoArguments{}, reply)
	return reply, err
}

// Balance - balance of a holder, optionally with an allowance
func (c *Client) Balance(args *token.BalanceArguments) (*token.BalanceReply, error) {
	reply := &token.BalanceReply{}
	err := c.call("Token.Balance", args, reply)
	return reply, err
}

// Holders - a page of non-zero balances
func (c *Client) Holders(args *token.HoldersArguments) (*token.HoldersReply, error) {
	reply := &token.HoldersReply{}
	err := c.call("Token.Holders", args, reply)
	return reply, err
}

// Transaction - one ledger record
func (c *Client) Transaction(args *token.TransactionArguments) (*token.TransactionReply, error) {
	reply := &token.TransactionReply{}
	err := c.call("Token.Transaction", args, reply)
	return reply, err
}

// Transactions - a page of ledger records
func (c *Client) Transactions(args *token.TransactionsArguments) (*token.TransactionsReply, error) {
	reply := &token.TransactionsReply{}
	err := c.call("Token.Transactions", args, reply)
	return reply, err
}

// Update - change one owner setting
func (c *Client) Update(args *token.UpdateArguments) (*token.UpdateReply, error) {
	reply := &token.UpdateReply{}
	err := c.call("Token.Update", args, reply)
	return reply, err
}

// Send - transfer from the caller
func (c *Client) Send(args *transfer.SendArguments) (*transfer.IdReply, error) {
	reply := &transfer.IdReply{}
	err := c.call("Transfer.Send", args, reply)
	return reply, err
}

// From - transfer against an allowance
func (c *Client) From(args *transfer.FromArguments) (*transfer.IdReply, error) {
	reply := &transfer.IdReply{}
	err := c.call("Transfer.From", args, reply)
	return reply, err
}

// Approve - set an allowance
func (c *Client) Approve(args *transfer.ApproveArguments) (*transfer.IdReply, error) {
	reply := &transfer.IdReply{}
	err := c.call("Transfer.Approve", args, reply)
	return reply, err
}

// Mint - create new supply
func (c *Client) Mint(args *transfer.SupplyArguments) (*transfer.IdReply, error) {
	reply := &transfer.IdReply{}
	err := c.call("Transfer.Mint", args, reply)
	return reply, err
}

// Burn - destroy supply
func (c *Client) Burn(args *transfer.SupplyArguments) (*transfer.IdReply, error) {
	reply := &transfer.IdReply{}
	err := c.call("Transfer.Burn", args, reply)
	return reply, err
}

// Notify - deliver a pending notification
func (c *Client) Notify(args *transfer.NotifyArguments) (*transfer.NotifyReply, error) {
	reply := &transfer.NotifyReply{}
	err := c.call("Transfer.Notify", args, reply)
	return reply, err
}

// Bid - add resources to the current round
func (c *Client) Bid(args *auction.BidArguments) (*auction.BidReply, error) {
	reply := &auction.BidReply{}
	err := c.call("Auction.Bid", args, reply)
	return reply, err
}

// AuctionInfo - the current round
func (c *Client) AuctionInfo() (*auction.InfoReply, error) {
	reply := &auction.InfoReply{}
	err := c.call("Auction.Info", &auction.InfoArguments{}, reply)
	return reply, err
}

// RunAuction - settle the current round
func (c *Client) RunAuction() (*auction.RecordReply, error) {
	reply := &auction.RecordReply{}
	err := c.call("Auction.Run", &auction.RunArguments{}, reply)
	return reply, err
}

// GetAuction - a settled round
func (c *Client) GetAuction(args *auction.GetArguments) (*auction.RecordReply, error) {
	reply := &auction.RecordReply{}
	err := c.call("Auction.Get", args, reply)
	return reply, err
}

// Configure - change auction parameters
func (c *Client) Configure(args *auction.ConfigureArguments) error {
	return c.call("Auction.Configure", args, &auction.ConfigureReply{})
}
