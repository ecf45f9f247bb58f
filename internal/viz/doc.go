// Package viz renders sessions in the terminal.
//
//   - [Canvas]: braille surface, 2x4 dots per cell with one colour per cell
//   - [Model]: Bubble Tea program that renders one frame per tick next to a
//     status panel with an asciigraph plot of time and blend
//   - [Theme]: lipgloss colours for the panel
//
// The live view takes no input besides q, esc and ctrl+c, which quit.
// Frames can be captured as images through [WithCapture].
package viz
