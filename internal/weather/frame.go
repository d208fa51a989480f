package weather

// FrameWrap is the largest frame value before the counter wraps.
// It is divisible by every step period in use, so timing stays even across the wrap.
const FrameWrap = 240

// Frame is the wrapping tick counter handed to passes.
type Frame struct {
	n uint64
}

// Next advances the counter and returns the new value in 1..FrameWrap.
func (f *Frame) Next() uint64 {
	if f.n >= FrameWrap {
		f.n = 1
	} else {
		f.n++
	}
	return f.n
}

// Value returns the last value handed out (0 before the first tick).
func (f *Frame) Value() uint64 {
	return f.n
}
