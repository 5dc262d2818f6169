package sweep

// CurveSink receives one emitted subcurve piece per call, in sweep
// order.
type CurveSink[C any] func(c C)

// PointSink receives one emitted point per call, in sweep order.
type PointSink[P any] func(p P)
