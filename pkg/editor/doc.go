// Package editor streams lines through a sequence of commands.
//
// Every input line gets the next address, starting at 0, and is folded through the commands in order: each command
// receives the line produced by the previous one. The editor then forwards one record per input line carrying its
// final contents, preceded by a record for every print emission. A deleted line is forwarded with empty contents.
//
// Run reads from an io.Reader and writes to a Sink through a three steps pipeline (read, edit, write). Transform
// offers the same processing as a lazy sequence.
package editor
