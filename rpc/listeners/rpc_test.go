// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/counter"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/rpc/certificate"
	"github.com/bitmark-inc/inheritd/rpc/fixtures"
	"github.com/bitmark-inc/inheritd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

// an address that was free a moment ago
func freeAddress(t *testing.T) string {
	l, err := net.Listen("tcp4", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	defer l.Close()
	return fmt.Sprintf("127.0.0.1:%d", l.Addr().(*net.TCPAddr).Port)
}

func testTLS(t *testing.T) (*tls.Config, [32]byte) {
	cert, key := fixtures.CertificatePair()
	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cert, key)
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	return tlsConfig, fingerprint
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := freeAddress(t)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	tlsConfig, fingerprint := testTLS(t)
	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, tlsConfig, fingerprint)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Stop()

	c, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()
	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
}

func TestRpcListenerStop(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := freeAddress(t)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}
	count := counter.Counter(0)
	tlsConfig, fingerprint := testTLS(t)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), tlsConfig, fingerprint)
	assert.Nil(t, err, "wrong NewRPC")
	assert.Nil(t, l.Serve(), "wrong Serve")

	l.Stop()

	// the address is free again
	again, err := net.Listen("tcp4", listen)
	assert.Nil(t, err, "address still bound")
	if nil == err {
		_ = again.Close()
	}
}

func TestRpcListenerInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	log := logger.New(fixtures.LogCategory)

	items := []struct {
		configuration listeners.RPCConfiguration
		err           error
	}{
		{listeners.RPCConfiguration{MaximumConnections: 0, Listen: []string{"127.0.0.1:2130"}}, fault.ErrMissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{}}, fault.ErrMissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"localhost:2130"}}, fault.ErrInvalidIPAddress},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"*:2130:1"}}, fault.ErrInvalidIPAddress},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{""}}, fault.ErrInvalidIPAddress},
	}

	for i, item := range items {
		_, err := listeners.NewRPC(&item.configuration, log, &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}

func TestRpcListenerWildcardAddress(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"*:2130", "[::1]:2130", "0.0.0.0:2131"},
	}
	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Nil(t, err, "wrong error")
}
