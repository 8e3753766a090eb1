package builder

import (
	"fmt"

	"github.com/katalvlaran/railpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
	rowLineFmt = "H%d"
	colLineFmt = "V%d"
)

// GridID returns the station name Grid uses for cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid lays out rows×cols stations. Horizontal hops of row r belong to line
// "H<r>", vertical hops of column c to line "V<c>". Edges are added row by
// row, right neighbor before bottom neighbor. A 1×1 grid has no edges and
// therefore no stations.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return builderErrorf(methodGrid, "rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGridDim, ErrTooFewStations)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := cfg.add(g, methodGrid, u, GridID(r, c+1), fmt.Sprintf(rowLineFmt, r)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.add(g, methodGrid, u, GridID(r+1, c), fmt.Sprintf(colLineFmt, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
