package subsequence

// NumWindows returns the number of sliding-window positions for a series of
// n timestamps under the given window length and dilation. With phase
// invariance every timestamp anchors a window; otherwise the receptive
// field (length-1)*dilation must fit inside the series.
func NumWindows(n, length, dilation int, usePhase bool) int {
	if usePhase {
		return n
	}
	return n - (length-1)*dilation
}

// Windows generates all dilated sliding windows of the given length over a
// single series. The result has NumWindows rows of length columns. Each
// window owns its backing array, so callers may normalize windows in place.
func Windows(x []float64, length, dilation int, usePhase bool) [][]float64 {
	n := len(x)
	count := NumWindows(n, length, dilation, usePhase)
	out := make([][]float64, count)
	if usePhase {
		for i := range count {
			w := make([]float64, length)
			for j := range length {
				w[j] = x[(i+j*dilation)%n]
			}
			out[i] = w
		}
		return out
	}
	for i := range count {
		w := make([]float64, length)
		for j := range length {
			w[j] = x[i+j*dilation]
		}
		out[i] = w
	}
	return out
}

// WindowsMulti generates the sliding-window view of every channel of one
// sample. The result is indexed [channel][position][offset].
func WindowsMulti(x [][]float64, length, dilation int, usePhase bool) [][][]float64 {
	out := make([][][]float64, len(x))
	for ch := range x {
		out[ch] = Windows(x[ch], length, dilation, usePhase)
	}
	return out
}
