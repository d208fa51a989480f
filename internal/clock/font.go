package clock

// Block glyphs used to draw the clock.
const (
	DigitRune = '█'
	ColonRune = '▀'
)

// Layout of the big clock, in cells.
const (
	digitSize  = 5
	pairWidth  = digitSize + 1 + digitSize // two digits with a one-cell gap
	colonWidth = 3
	Height     = digitSize
)

// digits holds a 5x5 bitmap per decimal digit, row-major.
var digits = [10][digitSize * digitSize]uint8{
	{
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
	},
	{
		0, 0, 1, 1, 0,
		0, 0, 1, 1, 0,
		0, 0, 1, 1, 0,
		0, 0, 1, 1, 0,
		0, 0, 1, 1, 0,
	},
	{
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		1, 1, 1, 1, 1,
		1, 1, 0, 0, 0,
		1, 1, 1, 1, 1,
	},
	{
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		1, 1, 1, 1, 1,
	},
	{
		1, 1, 0, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
	},
	{
		1, 1, 1, 1, 1,
		1, 1, 0, 0, 0,
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		1, 1, 1, 1, 1,
	},
	{
		1, 1, 1, 1, 1,
		1, 1, 0, 0, 0,
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
	},
	{
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
	},
	{
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
	},
	{
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		1, 1, 1, 1, 1,
	},
}

// Width returns the clock width in cells.
func Width(showSeconds bool) int {
	if showSeconds {
		return 3*pairWidth + 2*colonWidth
	}
	return 2*pairWidth + colonWidth
}
