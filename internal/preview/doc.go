// Package preview shows rewrite results in a full-screen scrollable view.
//
// The viewer draws a title row, the result text, and a status line with
// scroll position and key hints. It reads keys until the user quits with
// q, Escape, or Ctrl-C. Drawing goes through a tcell.Screen, so tests
// drive it with tcell's simulation screen.
package preview
