// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/tokend/fault"
)

// CanonicalIPandPort - make the IP:Port canonical
//
// examples:
//
//	IPv4:  127.0.0.1:1234
//	IPv6:  [::1]:1234
func CanonicalIPandPort(hostPort string) (string, error) {
	host, port, err := splitHostPort(hostPort)
	if nil != err {
		return "", err
	}

	IP := net.ParseIP(host)
	if nil == IP {
		return "", fault.InvalidIpAddress
	}
	return net.JoinHostPort(IP.String(), port), nil
}

// CanonicalAddress - like CanonicalIPandPort but also accepts a DNS
// host name, which is kept as written
func CanonicalAddress(hostPort string) (string, error) {
	host, port, err := splitHostPort(hostPort)
	if nil != err {
		return "", err
	}

	if IP := net.ParseIP(host); nil != IP {
		return net.JoinHostPort(IP.String(), port), nil
	}
	if "" == host || strings.ContainsAny(host, " []:*") {
		return "", fault.InvalidIpAddress
	}
	return net.JoinHostPort(host, port), nil
}

// split and check the port is in 1..65535
func splitHostPort(hostPort string) (string, string, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", "", fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return "", "", fault.InvalidPortNumber
	}
	return strings.TrimSpace(host), strconv.Itoa(numericPort), nil
}
