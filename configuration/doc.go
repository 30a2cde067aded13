// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - run a Lua file and map its result table
// onto a Go structure
//
// The script may compute values, e.g. read a key with io.open or
// take a data directory from os.getenv.
package configuration
