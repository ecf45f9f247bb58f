package engine_test

import "github.com/san-kum/cplane/internal/viewport"

func mustViewport(size int) viewport.Viewport {
	vp, err := viewport.New(3, size, size)
	if err != nil {
		panic(err)
	}
	return vp
}
