// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"time"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/util"
)

// Metadata - descriptive and economic settings of the token
type Metadata struct {
	Name        string         `json:"name"`
	Symbol      string         `json:"symbol"`
	Logo        string         `json:"logo"`
	Decimals    uint8          `json:"decimals"`
	TotalSupply amount.Amount  `json:"total_supply"`
	Owner       account.Holder `json:"owner"`
	Fee         amount.Amount  `json:"fee"`
	FeeTo       account.Holder `json:"fee_to"`
	IsTest      bool           `json:"is_test"`
}

// Info - metadata plus live statistics
type Info struct {
	Metadata        Metadata  `json:"metadata"`
	DeployTime      time.Time `json:"deploy_time"`
	HistorySize     uint64    `json:"history_size"`
	HolderCount     int       `json:"holder_count"`
	ResourceBalance uint64    `json:"resource_balance"`
}

// persisted form of the metadata with its deploy time
type stats struct {
	Metadata
	deployTime time.Time
}

func (s *stats) pack() []byte {
	message := util.Packer{}
	message = message.String(s.Name)
	message = message.String(s.Symbol)
	message = message.String(s.Logo)
	message = message.Uint64(uint64(s.Decimals))
	message = message.Bytes(s.TotalSupply.Bytes())
	message = message.Bytes(s.Owner.Bytes())
	message = message.Bytes(s.Fee.Bytes())
	message = message.Bytes(s.FeeTo.Bytes())
	message = message.Bool(s.IsTest)
	message = message.Uint64(uint64(s.deployTime.UnixNano()))
	return message
}

func unpackStats(buffer []byte) (*stats, error) {
	u := util.NewUnpacker(buffer)
	s := &stats{
		Metadata: Metadata{
			Name:        u.String(),
			Symbol:      u.String(),
			Logo:        u.String(),
			Decimals:    uint8(u.Uint64()),
			TotalSupply: amount.FromBytes(u.Bytes()),
			Owner:       account.FromBytes(u.Bytes()),
			Fee:         amount.FromBytes(u.Bytes()),
			FeeTo:       account.FromBytes(u.Bytes()),
			IsTest:      u.Bool(),
		},
		deployTime: time.Unix(0, int64(u.Uint64())).UTC(),
	}
	if err := u.Err(); nil != err {
		return nil, err
	}
	return s, nil
}
