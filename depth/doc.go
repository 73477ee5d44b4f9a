// Package depth converts between eye-space depth and the non-linear value a
// perspective projection stores in a depth buffer.
//
// The mapping is the z/w row pair of a reversed-Z projection matrix:
//
//	M = | -(n+f)/(n-f)  -2nf/(n-f) |
//	    |      -1            0     |
//
// Encoding multiplies M by [z, 1] and performs the homogeneous divide.
// Decoding does the same with the inverse of M. Eye-space z is negative
// (the camera looks down -Z), so z in [-far, -near] maps onto d in [-1, 1],
// with the near plane at +1.
//
// All functions are pure and safe for concurrent use.
package depth
