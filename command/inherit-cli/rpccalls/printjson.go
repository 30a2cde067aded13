// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
	"io"
)

// PrintJson - indented JSON followed by a newline
//
// memos and remarks are printed as typed, so HTML characters are not
// escaped
func PrintJson(handle io.Writer, message interface{}) error {
	encoder := json.NewEncoder(handle)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(message)
}

// verbose echo of a request or reply under a title line
func (client *Client) printJson(title string, message interface{}) {
	fmt.Fprintf(client.handle, "%s:\n", title)
	err := PrintJson(client.handle, message)
	if nil != err {
		fmt.Fprintf(client.handle, "%s: marshal error: %s\n", title, err)
	}
}
