// Package layout - attraction kernels.
//
// Eight variants arise from LinLog × DissuadeHubs × PreventOverlapping;
// each handles weighted and unweighted edges. Dispatch picks one at
// construction (chooseAttraction) so the per-iteration path is branch-free
// beyond the edge loop itself.
//
// Common shape, per edge (n1, n2) with weight w:
//
//	di  = n2.pos − n1.pos, d2 = Σ di².  d2 == 0 ⇒ skip.
//	f   = Ka (· w) (· ln(1+|d|)/|d| for LinLog) (÷ mass[n1]+1 for DissuadeHubs)
//	      (÷ d' for PreventOverlapping, where d' = |d| − NodeSize, skipping
//	       the edge when d' ≤ 0: the nodes already overlap)
//	n1.speed += f·di, n2.speed −= f·di
package layout

import "github.com/katalvlaran/forcegraph/coord"

// chooseAttraction maps the three variant flags onto one kernel.
func chooseAttraction[T coord.Float](s *Settings[T]) kernel[T] {
	po := s.PreventOverlapping != nil
	switch {
	case !s.LinLog && !s.DissuadeHubs && !po:
		return applyAttraction[T]
	case !s.LinLog && s.DissuadeHubs && !po:
		return applyAttractionDH[T]
	case s.LinLog && !s.DissuadeHubs && !po:
		return applyAttractionLog[T]
	case s.LinLog && s.DissuadeHubs && !po:
		return applyAttractionLogDH[T]
	case !s.LinLog && !s.DissuadeHubs:
		return applyAttractionPO[T]
	case !s.LinLog:
		return applyAttractionDHPO[T]
	case !s.DissuadeHubs:
		return applyAttractionLogPO[T]
	default:
		return applyAttractionLogDHPO[T]
	}
}

// edgeBase returns Ka, scaled by the edge weight when weights are present.
func (l *Layout[T]) edgeBase(idx int) T {
	if l.weights == nil {
		return l.settings.Ka
	}

	return l.settings.Ka * l.weights[idx]
}

// applyEdge adds f·di to n1's speed and subtracts it from n2's.
func (l *Layout[T]) applyEdge(n1, n2 int, f T, di []T) {
	s1, s2 := l.speeds.Get2Mut(n1, n2)
	for k, d := range di {
		s := f * d
		s1[k] += s
		s2[k] -= s
	}
}

func applyAttraction[T coord.Float](l *Layout[T]) {
	di := l.di
	for idx, e := range l.edges {
		d2 := coord.DeltaSquaredNorm(di, l.points.Get(e.U), l.points.Get(e.V))
		if coord.IsZero(d2) {
			continue
		}
		l.applyEdge(e.U, e.V, l.edgeBase(idx), di)
	}
}

func applyAttractionDH[T coord.Float](l *Layout[T]) {
	di := l.di
	for idx, e := range l.edges {
		d2 := coord.DeltaSquaredNorm(di, l.points.Get(e.U), l.points.Get(e.V))
		if coord.IsZero(d2) {
			continue
		}
		l.applyEdge(e.U, e.V, l.edgeBase(idx)/(l.masses[e.U]+1), di)
	}
}

func applyAttractionLog[T coord.Float](l *Layout[T]) {
	di := l.di
	for idx, e := range l.edges {
		d2 := coord.DeltaSquaredNorm(di, l.points.Get(e.U), l.points.Get(e.V))
		if coord.IsZero(d2) {
			continue
		}
		d := coord.Sqrt(d2)
		l.applyEdge(e.U, e.V, l.edgeBase(idx)*coord.Log1p(d)/d, di)
	}
}

func applyAttractionLogDH[T coord.Float](l *Layout[T]) {
	di := l.di
	for idx, e := range l.edges {
		d2 := coord.DeltaSquaredNorm(di, l.points.Get(e.U), l.points.Get(e.V))
		if coord.IsZero(d2) {
			continue
		}
		d := coord.Sqrt(d2)
		l.applyEdge(e.U, e.V, l.edgeBase(idx)*coord.Log1p(d)/d/(l.masses[e.U]+1), di)
	}
}

func applyAttractionPO[T coord.Float](l *Layout[T]) {
	nodeSize := l.settings.PreventOverlapping.NodeSize
	di := l.di
	for idx, e := range l.edges {
		d2 := coord.DeltaSquaredNorm(di, l.points.Get(e.U), l.points.Get(e.V))
		if coord.IsZero(d2) {
			continue
		}
		dprime := coord.Sqrt(d2) - nodeSize
		if !coord.Positive(dprime) {
			continue // overlapping nodes do not attract
		}
		l.applyEdge(e.U, e.V, l.edgeBase(idx)/dprime, di)
	}
}

func applyAttractionDHPO[T coord.Float](l *Layout[T]) {
	nodeSize := l.settings.PreventOverlapping.NodeSize
	di := l.di
	for idx, e := range l.edges {
		d2 := coord.DeltaSquaredNorm(di, l.points.Get(e.U), l.points.Get(e.V))
		if coord.IsZero(d2) {
			continue
		}
		dprime := coord.Sqrt(d2) - nodeSize
		if !coord.Positive(dprime) {
			continue
		}
		l.applyEdge(e.U, e.V, l.edgeBase(idx)/(l.masses[e.U]+1)/dprime, di)
	}
}

func applyAttractionLogPO[T coord.Float](l *Layout[T]) {
	nodeSize := l.settings.PreventOverlapping.NodeSize
	di := l.di
	for idx, e := range l.edges {
		d2 := coord.DeltaSquaredNorm(di, l.points.Get(e.U), l.points.Get(e.V))
		if coord.IsZero(d2) {
			continue
		}
		d := coord.Sqrt(d2)
		dprime := d - nodeSize
		if !coord.Positive(dprime) {
			continue
		}
		l.applyEdge(e.U, e.V, l.edgeBase(idx)*coord.Log1p(d)/d/dprime, di)
	}
}

func applyAttractionLogDHPO[T coord.Float](l *Layout[T]) {
	nodeSize := l.settings.PreventOverlapping.NodeSize
	di := l.di
	for idx, e := range l.edges {
		d2 := coord.DeltaSquaredNorm(di, l.points.Get(e.U), l.points.Get(e.V))
		if coord.IsZero(d2) {
			continue
		}
		d := coord.Sqrt(d2)
		dprime := d - nodeSize
		if !coord.Positive(dprime) {
			continue
		}
		l.applyEdge(e.U, e.V, l.edgeBase(idx)*coord.Log1p(d)/d/(l.masses[e.U]+1)/dprime, di)
	}
}
