// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package findfast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindFunc(t *testing.T) {
	s := []int{10, 20, 30, 40, 50}
	is := func(v int) func(int) bool {
		return func(e int) bool { return e == v }
	}

	for i, v := range s {
		assert.Equal(t, i, FindFunc(s, is(v)))
		for start := range len(s) + 2 {
			assert.Equal(t, i, FindFunc(s, is(v), start))
		}
	}
	assert.Equal(t, -1, FindFunc(s, is(99)))
	assert.Equal(t, -1, FindFunc(s, is(99), 2))
	assert.Equal(t, -1, FindFunc(nil, is(10)))
	assert.Equal(t, 0, FindFunc(s, is(10), 0))
}
