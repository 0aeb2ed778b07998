package motion

// Tuned gesture constants. Overridable per container via PagerConfig.
const (
	defaultCommitFraction = 0.25 // of container width
	defaultEdgeResistance = 0.3
)

// ResolveGesture decides which page a completed drag lands on. predictedX is
// the gesture recognizer's projected end translation, which already folds in
// release velocity; the decision keys off it alone. finalX is the raw
// translation at release, recorded by hosts alongside the prediction. The
// threshold is a quarter of the container width, and the returned page always
// stays within [0, pageCount−1]: out-of-range flicks simply fail both
// conditions and stay.
func ResolveGesture(finalX, predictedX, containerWidth float64, currentPage, pageCount int) (int, GestureOutcome) {
	return resolveWithThreshold(predictedX, containerWidth*defaultCommitFraction, currentPage, pageCount)
}

func resolveWithThreshold(predictedX, threshold float64, currentPage, pageCount int) (int, GestureOutcome) {
	switch {
	case predictedX < -threshold && currentPage < pageCount-1:
		return currentPage + 1, OutcomeAdvance
	case predictedX > threshold && currentPage > 0:
		return currentPage - 1, OutcomeRetreat
	default:
		return currentPage, OutcomeStay
	}
}
