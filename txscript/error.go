// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// ScriptError is the structured script-evaluation failure the
// transaction acceptor's Signature error wraps with an input index.
type ScriptError struct {
	msg string
}

func (e *ScriptError) Error() string { return e.msg }

func scriptError(format string, args ...interface{}) *ScriptError {
	return &ScriptError{msg: fmt.Sprintf(format, args...)}
}
