// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/inheritd/fault"
)

// EnsureAbsolute - relative paths are taken from directory
func EnsureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Join(directory, filePath)
}

// InDirectory - place a bare file name in directory, a name that
// carries any path is rejected
//
// a blank directory leaves the name unchanged
func InDirectory(directory string, name string) (string, error) {
	if "" == name || filepath.Base(name) != name {
		return "", fault.ErrNotPlainFileName
	}
	if "" == directory {
		return name, nil
	}
	return filepath.Join(directory, name), nil
}

// IsRegularFile - true only for an existing plain file
func IsRegularFile(name string) bool {
	info, err := os.Stat(name)
	return nil == err && info.Mode().IsRegular()
}
