// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/inheritd/fault"
)

const minimumPasswordLength = 8

var passwordConsole *terminal.Terminal

func getTerminal() (*terminal.Terminal, int, *terminal.State, error) {
	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		return nil, 0, nil, err
	}

	if nil != passwordConsole {
		return passwordConsole, 0, oldState, nil
	}

	tmpIO, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		_ = terminal.Restore(0, oldState)
		return nil, 0, nil, fmt.Errorf("no console: %s", err)
	}

	passwordConsole = terminal.NewTerminal(tmpIO, "inherit-cli: ")

	return passwordConsole, 0, oldState, nil
}

func readPassword(prompt string) (string, error) {
	console, fd, state, err := getTerminal()
	if nil != err {
		return "", err
	}
	password, err := console.ReadPassword(prompt)
	_ = terminal.Restore(fd, state)
	return password, err
}

// ask twice for a new password
func promptNewPassword() (string, error) {
	password, err := readPassword("Set identity password(length >= 8): ")
	if nil != err {
		return "", err
	}
	if err := checkPasswordLength(password); nil != err {
		return "", err
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verifyPassword {
		return "", fault.ErrPasswordMismatch
	}

	return password, nil
}

func promptPassword() (string, error) {
	return readPassword("password: ")
}

func checkPasswordLength(password string) error {
	if len(password) < minimumPasswordLength {
		return fault.ErrInvalidPasswordLength
	}
	return nil
}
