// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr

import (
	"bytes"
	"sync"
)

// Buffer pool for Join, String and MarshalJSON.
// Buffers larger than maxPooledBuffer are dropped instead of returned so a
// single huge join does not pin its memory.

const maxPooledBuffer = 64 << 10

var bufferPool = sync.Pool{New: func() any { return new(bytes.Buffer) }}

// acquireBuffer returns an empty pooled buffer.
func acquireBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// releaseBuffer resets b and returns it to the pool; oversized buffers
// are left to the garbage collector.
func releaseBuffer(b *bytes.Buffer) {
	if b.Cap() > maxPooledBuffer {
		return
	}
	b.Reset()
	bufferPool.Put(b)
}
