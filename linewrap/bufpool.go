package linewrap

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Output buffers are short-lived and all about the same size. To avoid
// allocating one per Wrap call we pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &bytes.Buffer{}, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// borrowBuffer returns an empty buffer from the pool, grown to capacity.
func borrowBuffer(capacity int) *bytes.Buffer {
	o, _ := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	buf := o.(*bytes.Buffer)
	buf.Reset()
	buf.Grow(capacity)
	return buf
}

// releaseBuffer puts a buffer back into the pool.
func releaseBuffer(buf *bytes.Buffer) {
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}
