// Package layout - kernel dispatch.
package layout

// dispatch resolves the settings into the three kernel slots. It runs once
// in FromGraph; Iteration never branches on variants afterwards.
func (l *Layout[T]) dispatch(vectorized bool) error {
	l.attraction = chooseAttraction(&l.settings)
	l.gravity = chooseGravity(&l.settings)

	repulsion, err := l.chooseRepulsion(vectorized)
	if err != nil {
		return err
	}
	l.repulsion = repulsion

	return nil
}
