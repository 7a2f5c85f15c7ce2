// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/storage"
)

// Cursor - lazy walk over the records involving one holder
//
// records are read one at a time in id order; records appended while
// the walk is in progress are also visited
type Cursor struct {
	ledger *Ledger
	holder account.Holder
	access storage.Access
	next   uint64
}

// Next - the next matching record, false when exhausted
func (c *Cursor) Next() (*Record, bool) {
	for c.next < c.ledger.Len(c.access) {
		r, ok := c.ledger.Get(c.access, c.next)
		c.next += 1
		if ok && r.Involves(c.holder) {
			return r, true
		}
	}
	return nil, false
}

// Page - skip the first start matches and return up to limit more
func (c *Cursor) Page(start uint64, limit uint64) []*Record {
	results := make([]*Record, 0, 16)
	for uint64(len(results)) < limit {
		r, ok := c.Next()
		if !ok {
			break
		}
		if start > 0 {
			start -= 1
			continue
		}
		results = append(results, r)
	}
	return results
}
