// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/tokend/fault"
)

type broadcaster struct {
	socket *zmq.Socket
}

// bind one PUB socket to every address
//
// addresses are "host:port" or full ZeroMQ endpoints
func newBroadcaster(addresses []string) (*broadcaster, error) {
	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}
	err = socket.SetLinger(0)
	if nil != err {
		socket.Close()
		return nil, err
	}

	for _, address := range addresses {
		endpoint, ipv6, err := endpointFor(address)
		if nil != err {
			socket.Close()
			return nil, err
		}
		if ipv6 {
			err = socket.SetIpv6(true)
			if nil != err {
				socket.Close()
				return nil, err
			}
		}
		err = socket.Bind(endpoint)
		if nil != err {
			socket.Close()
			return nil, err
		}
	}

	return &broadcaster{socket: socket}, nil
}

// Send - topic frame then data frame; a slow subscriber never blocks
func (b *broadcaster) Send(topic string, data []byte) error {
	_, err := b.socket.Send(topic, zmq.SNDMORE|zmq.DONTWAIT)
	if nil != err {
		return err
	}
	_, err = b.socket.SendBytes(data, zmq.DONTWAIT)
	return err
}

func (b *broadcaster) Close() error {
	return b.socket.Close()
}

// convert "host:port" into a tcp endpoint
func endpointFor(address string) (string, bool, error) {
	address = strings.TrimSpace(address)
	if "" == address {
		return "", false, fault.InvalidIpAddress
	}
	if strings.Contains(address, "://") {
		return address, strings.Contains(address, "["), nil
	}
	n := strings.LastIndex(address, ":")
	if n <= 0 || n == len(address)-1 {
		return "", false, fault.InvalidIpAddress
	}
	ipv6 := strings.HasPrefix(address, "[")
	if strings.Contains(address[:n], ":") && !ipv6 {
		return "", false, fault.InvalidIpAddress
	}
	return "tcp://" + address, ipv6, nil
}
