// Package zbuf is a small software rasterizer with a quantized depth
// buffer, for looking at depth precision directly.
//
// Pipeline (fixed):
//
//	eye-space triangle → depth.Params.Encode per vertex → perspective divide
//	→ screen-space barycentric fill → N-bit depth test → canvas.
//
// Encoded depth is affine in screen space (it is a linear function of 1/w),
// so it is interpolated without perspective correction. The buffer uses the
// reversed-Z convention of package depth: larger values are nearer.
package zbuf
