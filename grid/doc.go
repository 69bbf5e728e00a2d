// Package grid models a maze as a rectangular 2D matrix of wall and open cells
// with designated start and exit coordinates.
//
// What:
//
//   - Grid stores Height rows of Width cells; cells[y][x] is the cell at column x, row y.
//   - Start and Exit mark the two endpoints the maze is generated around.
//   - IsOpen / IsWall / Neighbors are the only queries the search engines need.
//   - Parse / String round-trip a human-readable text form ('#' wall, '.' open, 'S', 'E').
//   - Encode / Decode round-trip a compact msgpack form, optionally zstd-compressed.
//
// Neighbor order:
//
//	Neighbors always tests Up, Right, Down, Left, i.e. offsets
//	(0,-1), (1,0), (0,1), (-1,0). Every search engine in this module expands
//	cells in this order, so it fixes their tie-breaking and makes traces
//	reproducible.
//
// Boundaries:
//
//	Any coordinate outside [0,Width)×[0,Height) is reported as a wall by IsWall
//	and as not open by IsOpen. Callers may probe past the border freely.
//
// Lifecycle and concurrency:
//
//	A Grid is mutated only while it is being built (New + SetCell/Carve, or a
//	loader such as FromRows, Parse, Decode). After that it is read-only and may
//	be shared by any number of concurrent searches. Building and searching the
//	same Grid must be sequenced by the caller.
//
// Errors:
//
//   - ErrInvalidGrid:     umbrella for every malformed-input error below.
//   - ErrEmptyGrid:       no rows or no columns.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrBadCellValue:    a cell value or glyph that is neither open nor wall.
//   - ErrDuplicateMarker: more than one 'S' or 'E' in text input.
//   - ErrDecode:          binary input could not be decompressed or decoded.
package grid
