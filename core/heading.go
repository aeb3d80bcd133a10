package core

// Heading is the facing direction of the snake head
type Heading uint8

const (
	HeadingUp Heading = iota // Default
	HeadingDown
	HeadingLeft
	HeadingRight
)

var headingNames = [...]string{"up", "down", "left", "right"}

// String returns the lowercase heading name
func (h Heading) String() string {
	if int(h) < len(headingNames) {
		return headingNames[h]
	}
	return "unknown"
}

// Opposite returns the reverse heading
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	}
	return h
}

// IsOpposite reports whether the pair is Up/Down or Left/Right
func (h Heading) IsOpposite(other Heading) bool {
	return h != other && h.Opposite() == other
}

// Delta returns the unit cell offset of the heading, y grows upward
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, 1
	case HeadingDown:
		return 0, -1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	}
	return 0, 0
}

// ParseHeading resolves a heading name as produced by String
func ParseHeading(name string) (Heading, bool) {
	for i, n := range headingNames {
		if n == name {
			return Heading(i), true
		}
	}
	return HeadingUp, false
}
