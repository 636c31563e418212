// Package address describes which lines of a stream a command applies to.
//
// A condition is written between two closures. The first character selects the lower bound closure, `[` for
// inclusive and `(` for exclusive, and the last character selects the upper bound closure, `]` or `)`. The interior
// is one, two or three addresses separated by `..`:
//
//	[5]         line 5
//	[5..10)     lines 5 to 9
//	(5..10]     lines 6 to 10
//	[0..2..10]  lines 0, 2, 4, 6, 8 and 10
//
// Conditions are immutable values and evaluating them never fails.
package address
