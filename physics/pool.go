package physics

import (
	"sync"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &sweepContext{}
	},
}

func newCtx(b *Body) *sweepContext {
	ctx := ctxPool.Get().(*sweepContext)
	ctx.body = b
	return ctx
}

func putCtx(ctx *sweepContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *sweepContext) reset() {
	ctx.body = nil
	ctx.boxes = ctx.boxes[:0]
}
