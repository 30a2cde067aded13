// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - the TLS JSON-RPC and HTTPS front ends
package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/logger"
)

const (
	minConnectionCount = 1
)

// Listener - a configured front end
type Listener interface {
	Serve() error
	Stop()
}

// change "*:PORT" to "[::]:PORT" and select the network from the
// address form
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	addresses := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Error("listen error: empty address")
			return nil, nil, fault.ErrInvalidIPAddress
		}

		host := ""
		switch listen[0] {
		case '*':
			s := strings.Split(listen, ":")
			if 2 != len(s) {
				return nil, nil, fault.ErrInvalidIPAddress
			}
			addresses[i] = "[::]:" + s[1]
			networks[i] = "tcp"
			host = "::"
		case '[':
			addresses[i] = listen
			networks[i] = "tcp6"
			host = strings.Split(listen[1:], "]:")[0]
		default:
			addresses[i] = listen
			networks[i] = "tcp4"
			host = strings.Split(listen, ":")[0]
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.ErrInvalidIPAddress
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, nil, err
		}
	}
	return networks, addresses, nil
}
