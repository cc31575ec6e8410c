package opencc

import (
	"context"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
)

// Chunk conversion produces many short-lived output buffers. To avoid
// multiple allocation of small objects we will pool them.
type builderPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBuilderPool *builderPool

func init() {
	globalBuilderPool = &builderPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			b := &strings.Builder{}
			return b, nil
		})
	globalBuilderPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBuilderPool.opool = pool.NewObjectPool(globalBuilderPool.ctx, factory, config)
}

// borrowBuilder returns a reset scratch builder from the pool.
func borrowBuilder() *strings.Builder {
	o, _ := globalBuilderPool.opool.BorrowObject(globalBuilderPool.ctx)
	b := o.(*strings.Builder)
	b.Reset()
	return b
}

// Puts the builder back into the pool. The caller must have taken its
// String() already.
func releaseBuilder(b *strings.Builder) {
	_ = globalBuilderPool.opool.ReturnObject(globalBuilderPool.ctx, b)
}
