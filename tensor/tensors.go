// File: tensors.go
// Structure, hessian and nematic 2×2 tensor fields (spec.md §4.3).
package tensor

import "math"

// Field2x2 holds the three distinct components (T00=Jxx/Hxx, T01=Jxy/Hxy,
// T11=Jyy/Hyy) of a symmetric 2×2 tensor at every pixel.
type Field2x2 struct {
	Rows, Cols int
	T00, T01, T11 []float64
}

func newField2x2(rows, cols int) *Field2x2 {
	n := rows * cols
	return &Field2x2{Rows: rows, Cols: cols, T00: make([]float64, n), T01: make([]float64, n), T11: make([]float64, n)}
}

func (f *Field2x2) at(i int) (t00, t01, t11 float64) {
	return f.T00[i], f.T01[i], f.T11[i]
}

// StructureTensor computes the classical structure tensor (Jxx,Jxy,Jyy)
// from Gaussian-smoothed first derivatives of I at scale sigma.
func StructureTensor(I *Grid, sigma float64) *Field2x2 {
	smoothed := SmoothGaussian(I, sigma)
	dr, dc := gradients(smoothed)

	out := newField2x2(I.Rows, I.Cols)
	n := I.Rows * I.Cols
	jxxRaw, jxyRaw, jyyRaw := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		gr, gc := dr.Data[i], dc.Data[i]
		jxxRaw[i] = gr * gr
		jxyRaw[i] = gr * gc
		jyyRaw[i] = gc * gc
	}
	out.T00 = smoothComponent(jxxRaw, I.Rows, I.Cols, sigma)
	out.T01 = smoothComponent(jxyRaw, I.Rows, I.Cols, sigma)
	out.T11 = smoothComponent(jyyRaw, I.Rows, I.Cols, sigma)
	return out
}

// HessianTensor computes (Hxx,Hxy,Hyy) from second derivatives of I at
// scale sigma.
func HessianTensor(I *Grid, sigma float64) *Field2x2 {
	hrr, hrc, hcc := secondDerivatives(I, sigma)
	out := newField2x2(I.Rows, I.Cols)
	out.T00 = hrr.Data
	out.T01 = hrc.Data
	out.T11 = hcc.Data
	return out
}

// NematicTensor computes, at every pixel with gradient (gc,gr) and
// r2=gr^2+gc^2 > 0, n = [[gc^2/r2, -gr*gc/r2],[-gr*gc/r2, gr^2/r2]], then
// Gaussian-smooths the four components; zero-gradient pixels produce the
// zero tensor.
func NematicTensor(I *Grid, sigma float64) *Field2x2 {
	dr, dc := gradients(I)
	n := I.Rows * I.Cols
	n00, n01, n11 := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		gr, gc := dr.Data[i], dc.Data[i]
		r2 := gr*gr + gc*gc
		if r2 == 0 {
			continue
		}
		n00[i] = gc * gc / r2
		n01[i] = -gr * gc / r2
		n11[i] = gr * gr / r2
	}
	out := newField2x2(I.Rows, I.Cols)
	out.T00 = smoothComponent(n00, I.Rows, I.Cols, sigma)
	out.T01 = smoothComponent(n01, I.Rows, I.Cols, sigma)
	out.T11 = smoothComponent(n11, I.Rows, I.Cols, sigma)
	return out
}

func smoothComponent(data []float64, rows, cols int, sigma float64) []float64 {
	g := &Grid{Rows: rows, Cols: cols, Data: data}
	return SmoothGaussian(g, sigma).Data
}

// EigenSummary is the per-pixel (anisotropy, angle-degrees, energy) triple
// derived from a symmetric 2×2 tensor (spec.md §4.3 eigen_summary).
type EigenSummary struct {
	Anisotropy float64
	AngleDeg   float64
	Energy     float64
}

// Summarize computes the eigen-summary of a single symmetric 2×2 tensor
// [[t00,t01],[t01,t11]] using the closed-form 2×2 eigenvalue formula.
func Summarize(t00, t01, t11 float64) EigenSummary {
	trace := t00 + t11
	diff := t00 - t11
	disc := math.Sqrt(diff*diff + 4*t01*t01)
	lambdaMax := (trace + disc) / 2
	lambdaMin := (trace - disc) / 2

	var anisotropy float64
	if lambdaMax+lambdaMin != 0 {
		anisotropy = (lambdaMax - lambdaMin) / (lambdaMax + lambdaMin)
	}

	angle := 0.5 * math.Atan2(2*t01, t11-t00) * 180 / math.Pi
	energy := math.Abs(t00) + math.Abs(t11)

	return EigenSummary{Anisotropy: anisotropy, AngleDeg: angle, Energy: energy}
}

// SummarizeField applies Summarize to every pixel of a Field2x2.
func SummarizeField(f *Field2x2) []EigenSummary {
	n := f.Rows * f.Cols
	out := make([]EigenSummary, n)
	for i := 0; i < n; i++ {
		t00, t01, t11 := f.at(i)
		out[i] = Summarize(t00, t01, t11)
	}
	return out
}
