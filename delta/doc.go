// Package delta implements the piecewise-linear integer bijections that
// the deltani engine uses to reconstruct a tree edge at any committed
// version without rewriting the edge itself.
//
// A Function is a finite set of Ranges — (From, To) breakpoint pairs —
// plus a Max bound. Evaluate and EvaluateInv apply the function and its
// inverse by a floor lookup over the breakpoints, indexed both ways so
// neither direction needs to scan. Merge composes two functions so that
// the result of applying A then B can be produced by a single Apply.
//
// Every Function built by an insert or remove edit carries the sentinel
// range (1, 1): deltani.h anchors every delta there so the floor query
// never falls below the smallest breakpoint for values at or above 1.
package delta
