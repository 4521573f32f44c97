// Pixel-perfect 2D collision detection for Go.
//
// This package tests whether two placed collision masks overlap in at least
// one pixel. Masks are built from binary images or convex polygons, placed
// with translation, rotation and scaling, and tested pairwise: transformed
// convex hulls are intersected first, and only the pixels inside the
// intersection are checked against the images.
package pixelcoll

import (
	"github.com/osuushi/pixelcoll/geometry"
	"github.com/osuushi/pixelcoll/internal"
	"github.com/osuushi/pixelcoll/mask"
)

type P = geometry.P
type Mask = mask.Mask
type CollisionInfo = mask.CollisionInfo
type CollisionPair = mask.CollisionPair

// Collides reports whether the two placed masks overlap in at least one
// pixel.
//
// The engine panics internally on invariant violations rather than
// threading errors through the recursive geometry. Those panics are
// recovered here and returned as errors; anything else propagates.
func Collides(info1, info2 *CollisionInfo) (collides bool, err error) {
	defer func() {
		recoveredErr := internal.HandleCollisionPanicRecover(recover())
		if recoveredErr != nil {
			collides = false
			err = recoveredErr
		}
	}()
	return mask.TestForCollision(info1, info2), nil
}
