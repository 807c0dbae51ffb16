/*
Copyright 2025 by Samuel Loewen

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

package soa2ledger

import (
	"time"

	"github.com/teris-io/shortid"
)

// IDService provides an endless supply of unique short IDs. Receive from
// it whenever something needs an identity: records get one at read time,
// import runs take one to tag their log lines.
var IDService <-chan string

func init() {
	sid := shortid.MustNew(1, shortid.DefaultABC, uint64(time.Now().UnixNano()))

	c := make(chan string, 16)
	IDService = c
	go func() {
		for {
			c <- sid.MustGenerate()
		}
	}()
}
