// Package viz provides the character-cell rendering core of discoball.
//
// The package is organised around a pair of parallel grids:
//
//   - [Frame]: a row-major glyph buffer and an index-aligned inverse-depth
//     buffer of the same size
//   - [RenderSphere]: the rotation projector that rasterises a shaded sphere
//     into both buffers with a depth test
//   - [Plot], [BlitText], [BlitSprite]: compositing primitives
//   - [Serialize]: buffer-to-text conversion with optional highlight styling
//
// # Bounds Policy
//
// Nothing in this package returns an error. Writes outside the grid are
// dropped, and a render call whose buffers disagree in size does nothing.
// Off-screen samples are routine when a sphere is partly outside the frame.
//
// # Glyphs
//
// Sphere shading uses the bands '.', ';', '<'/'>' and '8' from dim to bright.
// The floor uses '=' and '-', light beams use '\'' and the banner uses '#'.
package viz
