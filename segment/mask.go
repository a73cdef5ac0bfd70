// File: mask.go
// Mask is a binary image-shaped grid. Dilate/FillHoles/Regions generalize
// the teacher gridgraph package's BFS island-detection from an integer
// land-value grid to a boolean fibre/cell mask.
package segment

import "github.com/fibrenet/pyfibre-go/model"

// Mask is a dense row-major boolean grid over an image's (Rows, Cols) shape.
type Mask struct {
	Rows, Cols int
	Data       []bool
}

// NewMask returns an all-false mask of the given shape.
func NewMask(rows, cols int) *Mask {
	return &Mask{Rows: rows, Cols: cols, Data: make([]bool, rows*cols)}
}

func (m *Mask) at(r, c int) bool {
	if r < 0 || r >= m.Rows || c < 0 || c >= m.Cols {
		return false
	}
	return m.Data[r*m.Cols+c]
}

func (m *Mask) set(r, c int, v bool) {
	if r < 0 || r >= m.Rows || c < 0 || c >= m.Cols {
		return
	}
	m.Data[r*m.Cols+c] = v
}

// Complement returns the logical negation of m.
func (m *Mask) Complement() *Mask {
	out := NewMask(m.Rows, m.Cols)
	for i, v := range m.Data {
		out.Data[i] = !v
	}
	return out
}

// Dilate grows every set pixel by radius pixels using disk connectivity,
// adapted from the teacher gridgraph.ExpandIsland 4/8-connectivity offset
// walk, generalized to an arbitrary integer radius.
func Dilate(m *Mask, radius int) *Mask {
	out := NewMask(m.Rows, m.Cols)
	r2 := radius * radius
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if !m.at(r, c) {
				continue
			}
			for dr := -radius; dr <= radius; dr++ {
				for dc := -radius; dc <= radius; dc++ {
					if dr*dr+dc*dc > r2 {
						continue
					}
					out.set(r+dr, c+dc, true)
				}
			}
		}
	}
	return out
}

// cell4Offsets are the 4-connected neighbour offsets, matching the teacher
// gridgraph.Conn4 table.
var cell4Offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// cell8Offsets are the 8-connected neighbour offsets, matching the teacher
// gridgraph.Conn8 table.
var cell8Offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// FillHoles fills every connected background (false) component with area
// <= maxArea that does not touch the mask border, matching
// scipy/skimage's remove_small_holes semantics used by the original
// implementation.
func FillHoles(m *Mask, maxArea int) *Mask {
	out := &Mask{Rows: m.Rows, Cols: m.Cols, Data: append([]bool(nil), m.Data...)}
	visited := make([]bool, m.Rows*m.Cols)

	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			idx := r*m.Cols + c
			if out.Data[idx] || visited[idx] {
				continue
			}
			queue := []int{idx}
			visited[idx] = true
			touchesBorder := false
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				cur := queue[qi]
				cr, cc := cur/m.Cols, cur%m.Cols
				comp = append(comp, cur)
				if cr == 0 || cc == 0 || cr == m.Rows-1 || cc == m.Cols-1 {
					touchesBorder = true
				}
				for _, d := range cell4Offsets {
					nr, nc := cr+d[0], cc+d[1]
					if nr < 0 || nr >= m.Rows || nc < 0 || nc >= m.Cols {
						continue
					}
					nidx := nr*m.Cols + nc
					if visited[nidx] || out.Data[nidx] {
						continue
					}
					visited[nidx] = true
					queue = append(queue, nidx)
				}
			}

			if !touchesBorder && len(comp) <= maxArea {
				for _, idx := range comp {
					out.Data[idx] = true
				}
			}
		}
	}
	return out
}

// Regions extracts every 8-connected component of set pixels as a Region,
// sampling intensity from the given image (same Rows×Cols shape).
func Regions(m *Mask, image []float64) []model.Region {
	visited := make([]bool, m.Rows*m.Cols)
	var out []model.Region

	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			idx := r*m.Cols + c
			if !m.Data[idx] || visited[idx] {
				continue
			}
			queue := []int{idx}
			visited[idx] = true
			minRow, minCol := r, c
			maxRow, maxCol := r, c
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				cur := queue[qi]
				cr, cc := cur/m.Cols, cur%m.Cols
				comp = append(comp, cur)
				if cr < minRow {
					minRow = cr
				}
				if cr > maxRow {
					maxRow = cr
				}
				if cc < minCol {
					minCol = cc
				}
				if cc > maxCol {
					maxCol = cc
				}
				for _, d := range cell8Offsets {
					nr, nc := cr+d[0], cc+d[1]
					if nr < 0 || nr >= m.Rows || nc < 0 || nc >= m.Cols {
						continue
					}
					nidx := nr*m.Cols + nc
					if visited[nidx] || !m.Data[nidx] {
						continue
					}
					visited[nidx] = true
					queue = append(queue, nidx)
				}
			}

			rows := maxRow - minRow + 1
			cols := maxCol - minCol + 1
			region := model.Region{
				MinRow: minRow, MinCol: minCol, Rows: rows, Cols: cols,
				Mask:      make([]bool, rows*cols),
				Intensity: make([]float64, rows*cols),
			}
			for _, idx := range comp {
				cr, cc := idx/m.Cols, idx%m.Cols
				lr, lc := cr-minRow, cc-minCol
				region.Mask[lr*cols+lc] = true
				if image != nil {
					region.Intensity[lr*cols+lc] = image[cr*m.Cols+cc]
				}
			}
			out = append(out, region)
		}
	}
	return out
}
