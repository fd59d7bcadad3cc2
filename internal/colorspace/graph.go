package colorspace

import (
	"fmt"

	"github.com/deepteams/zimg/internal/ztype"
)

// edge is one conversion step out of a colorspace vertex: the
// colorspace it lands on and the Operation that performs it.
type edge struct {
	to ztype.Colorspace
	op Operation
}

var csGraph = buildGraph()

func isValidCsp(c ztype.Colorspace) bool {
	return !(c.Matrix == ztype.Matrix2020CL && c.Transfer == ztype.TransferLinear)
}

// buildGraph enumerates every valid colorspace vertex and the
// conversion edges leaving it, grounded on graph.cpp's
// ColorspaceGraph constructor.
func buildGraph() map[ztype.Colorspace][]edge {
	g := make(map[ztype.Colorspace][]edge)

	allMatrix := []ztype.MatrixCoefficients{ztype.MatrixRGB, ztype.Matrix601, ztype.Matrix709, ztype.Matrix2020NCL, ztype.Matrix2020CL}
	allTransfer := []ztype.TransferCharacteristics{ztype.TransferLinear, ztype.Transfer709}
	allPrimaries := []ztype.ColorPrimaries{ztype.PrimariesSMPTEC, ztype.Primaries709, ztype.Primaries2020}

	var vertices []ztype.Colorspace
	for _, m := range allMatrix {
		for _, t := range allTransfer {
			for _, p := range allPrimaries {
				c := ztype.Colorspace{Matrix: m, Transfer: t, Primaries: p}
				if isValidCsp(c) {
					vertices = append(vertices, c)
					g[c] = nil
				}
			}
		}
	}

	link := func(a, b ztype.Colorspace, op Operation) {
		g[a] = append(g[a], edge{to: b, op: op})
	}

	for _, csp := range vertices {
		if csp.Matrix == ztype.MatrixRGB {
			for _, coeffs := range allMatrix {
				if coeffs == ztype.Matrix2020CL && csp.Transfer == ztype.TransferLinear {
					link(csp, csp.To(coeffs).ToTransfer(ztype.Transfer709), Rec2020CLToYUVOp)
				} else if coeffs != ztype.MatrixRGB && coeffs != ztype.Matrix2020CL {
					m, _ := NclRgbToYuvMatrix(coeffs)
					link(csp, csp.To(coeffs), NewMatrixOp(m))
				}
			}

			if csp.Transfer == ztype.TransferLinear {
				for _, transfer := range allTransfer {
					if transfer != csp.Transfer {
						link(csp, csp.ToTransfer(transfer), Rec709GammaOp)
					}
				}
				for _, primaries := range allPrimaries {
					if primaries != csp.Primaries {
						toXYZ, _ := GamutRgbToXyzMatrix(csp.Primaries)
						fromXYZ, _ := GamutXyzToRgbMatrix(primaries)
						link(csp, csp.ToPrimaries(primaries), NewMatrixOp(fromXYZ.Mul(toXYZ)))
					}
				}
			}

			if csp.Transfer != ztype.TransferLinear {
				link(csp, csp.ToLinear(), Rec709InverseGammaOp)
			}
		} else {
			if csp.Matrix == ztype.Matrix2020CL {
				link(csp, csp.ToRGB().ToLinear(), Rec2020CLToRGBOp)
			} else {
				m, _ := NclYuvToRgbMatrix(csp.Matrix)
				link(csp, csp.ToRGB(), NewMatrixOp(m))
			}
		}
	}

	return g
}

// OperationPath returns the shortest sequence of Operations converting
// in to out, found by breadth-first search over the colorspace graph,
// grounded on graph.cpp's bfs.
func OperationPath(in, out ztype.Colorspace) ([]Operation, error) {
	if in == out {
		return nil, nil
	}
	if _, ok := csGraph[in]; !ok {
		return nil, fmt.Errorf("colorspace: %+v is not a valid colorspace", in)
	}
	if _, ok := csGraph[out]; !ok {
		return nil, fmt.Errorf("colorspace: %+v is not a valid colorspace", out)
	}

	type parentEdge struct {
		from ztype.Colorspace
		op   Operation
	}
	parents := map[ztype.Colorspace]parentEdge{}
	visited := map[ztype.Colorspace]bool{in: true}
	queue := []ztype.Colorspace{in}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		if v == out {
			var path []Operation
			for tail := v; tail != in; {
				pe := parents[tail]
				path = append([]Operation{pe.op}, path...)
				tail = pe.from
			}
			return path, nil
		}

		for _, e := range csGraph[v] {
			if !visited[e.to] {
				visited[e.to] = true
				parents[e.to] = parentEdge{from: v, op: e.op}
				queue = append(queue, e.to)
			}
		}
	}

	return nil, fmt.Errorf("colorspace: no conversion path from %+v to %+v", in, out)
}
