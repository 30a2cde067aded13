// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"io/ioutil"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/rpc/fixtures"
	"github.com/bitmark-inc/inheritd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type testHandler struct {
	allow map[string][]*net.IPNet
}

func (h *testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h *testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h *testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h *testHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

var client = &http.Client{
	Transport: &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	},
}

func setupHTTPS(t *testing.T) (string, listeners.Listener, *testHandler) {
	listen := freeAddress(t)
	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Allow: map[string][]string{
			"details": {"127.0.0.1/32", " ::1/128 "},
		},
	}

	tlsConfig, _ := testTLS(t)
	h := &testHandler{}
	l, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), tlsConfig, h)
	if nil != err {
		t.Fatalf("NewHTTPS error: %s", err)
	}
	return "https://" + listen, l, h
}

func get(t *testing.T, url string) string {
	resp, err := client.Get(url)
	if nil != err {
		t.Fatalf("get: %s  error: %s", url, err)
	}
	defer resp.Body.Close()

	content, _ := ioutil.ReadAll(resp.Body)
	return string(content)
}

func TestHttpsListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	url, l, h := setupHTTPS(t)

	assert.Nil(t, l.Serve(), "wrong Serve")
	defer l.Stop()

	assert.Equal(t, "RPC", get(t, url+"/inheritd/rpc"), "wrong RPC route")
	assert.Equal(t, "Details", get(t, url+"/inheritd/details"), "wrong Details route")
	assert.Equal(t, "Root", get(t, url+"/anything"), "wrong Root route")

	assert.Equal(t, 2, len(h.allow["details"]), "allow list not passed")
}

func TestHttpsListenerDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, logger.New(fixtures.LogCategory), &tls.Config{}, &testHandler{})
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, l, "listener created without addresses")
}

func TestHttpsListenerInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)

	_, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2131"},
	}, log, &tls.Config{}, &testHandler{})
	assert.Equal(t, fault.ErrMissingParameters, err, "zero connections accepted")

	_, err = listeners.NewHTTPS(&listeners.HTTPSConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:2131"},
		Allow: map[string][]string{
			"details": {"not-a-network"},
		},
	}, log, &tls.Config{}, &testHandler{})
	assert.NotNil(t, err, "bad allow list accepted")
}
