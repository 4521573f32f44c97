package internal

import "github.com/pkg/errors"

// Threading errors up and down the recursive intersection and weaving
// operations would add a ton of complexity to the code. Instead, we use
// panics, and the public API recovers to convert to an error.

type CollisionError error

// Panic with a CollisionError.
func Fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleCollisionPanicRecover(r interface{}) error {
	if r != nil {
		if collisionError, ok := r.(CollisionError); ok {
			return collisionError
		}
		panic(r)
	}
	return nil
}
