// Package mars simulates robots on a rectangular grid. Robots that fall
// off leave a scent on their last cell, and later robots in the same run
// refuse to step off the grid from a scented cell.
//
// Input is a list of trimmed, non-empty lines: "max_x max_y", then for
// each robot a "x y O" line followed by its instruction line.
package mars
