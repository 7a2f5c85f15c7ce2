// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"time"
)

// SetClock - replace the time source
func (t *Token) SetClock(now func() time.Time) {
	t.Lock()
	t.now = now
	t.Unlock()
}
