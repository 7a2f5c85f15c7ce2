// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// RatioPlaces - decimal places kept in a fee ratio
const RatioPlaces = 16

// FeeRatio - fraction of each fee retained for the auction
//
// while resources are at or below the threshold the whole fee is
// retained, above it the ratio falls as threshold/resources and
// approaches zero as resources grow
func FeeRatio(resources uint64, threshold uint64) decimal.Decimal {
	if resources <= threshold {
		return decimal.NewFromInt(1)
	}

	// floor(threshold × 10^places / resources) × 10^-places
	n := new(big.Int).SetUint64(threshold)
	n.Mul(n, new(big.Int).Exp(big.NewInt(10), big.NewInt(RatioPlaces), nil))
	n.Quo(n, new(big.Int).SetUint64(resources))

	return decimal.NewFromBigInt(n, -RatioPlaces)
}
