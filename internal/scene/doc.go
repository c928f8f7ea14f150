// Package scene drives the discoball animations.
//
// A [Stage] is the explicit context object for rendering: it owns the frame
// and depth buffers, the rotation angles and the rhythm tick, and renders one
// frame of any scene per call. A [Director] runs scenes over a Stage, pacing
// frames and writing them to a [Sink]:
//
//	intro -> party -> credits -> spinner -> (restart -> party | proceed)
//
// The goodbye scene is invoked directly by the caller.
//
// # Interruption
//
// Every wait selects on the context. A cancelled context ends the current
// scene and the chain without an error; only sink failures are returned.
package scene
