package gzhead

import (
	"io"
	"sync"
)

// Pool reuses Decoders, and their read buffers, across sources. The zero
// value is ready to use; Opt applies to every Decoder the pool hands out.
type Pool struct {
	Opt  Options
	pool sync.Pool
}

// Acquire returns an unread Decoder over r, using the pool's current options.
func (pool *Pool) Acquire(r io.Reader) *Decoder {
	if d, ok := pool.pool.Get().(*Decoder); ok {
		d.opt = pool.Opt
		d.opt.setDefaults()
		d.Reset(r)
		return d
	}

	return NewDecoder(r, pool.Opt)
}

// Release drops the Decoder's source and returns it to the pool. Headers
// already returned by the Decoder stay valid.
func (pool *Pool) Release(d *Decoder) {
	d.Reset(nil)
	pool.pool.Put(d)
}
