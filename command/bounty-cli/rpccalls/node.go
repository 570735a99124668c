// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/bountyd/rpc/node"
)

// GetInfo - daemon chain, counters and uptime
func (c *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	err := c.call("Node.Info", node.InfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
