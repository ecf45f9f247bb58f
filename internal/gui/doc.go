// Package gui shows a session in a raylib window. Frames are drawn on an
// RGBA surface and uploaded into a texture; raylib's target FPS paces the
// loop.
package gui
