package board

// This file contains some sample filled boards, used solely for testing.
// They are in the format SetFromPlaintext reads.

// SampleBoard is a string representation of a board.
type SampleBoard string

const (
	// CatRow is a 3x1 board spelling CAT.
	CatRow SampleBoard = `
   0 1 2
   ------
 0|C A T |
   ------
`

	// Crossing is a 5x5 board with two words crossing at the H of HOUSE
	// and a lone letter in the corner.
	Crossing SampleBoard = `
   0 1 2 3 4
   ----------
 0|. . . . Q |
 1|. . . . . |
 2|H O U S E |
 3|A . . . . |
 4|T . . . . |
   ----------
`

	// Gappy is a 6x3 board with runs broken by empty cells and runs that
	// touch the right and bottom edges.
	Gappy SampleBoard = `
   0 1 2 3 4 5
   ------------
 0|D O . . . Z |
 1|. . . J A X |
 2|. O . . . E |
   ------------
`
)
