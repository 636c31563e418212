// Package command binds an action to an optional address condition and applies it to streamed lines.
//
// A command is built from tokens, usually program arguments: the action name followed by an optional address
// condition, for instance `delete [0..3)` or `print`. A command without a condition applies to every line.
package command
