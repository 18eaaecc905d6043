package assert

import "github.com/cubeforge/voxphys/verror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(verror.New(message, args...))
	}
}
