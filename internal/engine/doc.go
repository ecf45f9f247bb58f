// Package engine holds the render context of one session.
//
// A [Context] owns everything that changes between frames: the animation
// driver, the optional blend smoother and, through its strategy, the raster
// buffers. Frames are rendered synchronously, one per tick:
//
//	ctx, _ := engine.Build(cfg, surface.NewRGBA(w, h), transform.NewRegistry())
//	for i := 0; i < n; i++ {
//	    ctx.Frame()
//	}
//
// # Thread Safety
//
// A Context is NOT safe for concurrent use. Front-ends call [Context.Frame]
// from their single update loop, or hand the loop to [Context.Run].
package engine
