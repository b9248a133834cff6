package cloudinary

import (
	"strconv"
)

// Gravity selects the focal point for cropping. Two gravities are equal when
// their tokens are equal, so plain == comparison is the intended equality.
type Gravity string

const (
	GravityCenter    Gravity = "center"
	GravityNorth     Gravity = "north"
	GravityWest      Gravity = "west"
	GravitySouth     Gravity = "south"
	GravityEast      Gravity = "east"
	GravityNorthEast Gravity = "north_east"
	GravityNorthWest Gravity = "north_west"
	GravitySouthWest Gravity = "south_west"
	GravitySouthEast Gravity = "south_east"
	GravityFace      Gravity = "face"
)

// GravityAuto lets the service pick the focal point, optionally guided by a
// detector or subject name ("faces", "classic", ...).
func GravityAuto(subject string) Gravity {
	if subject == "" {
		return "auto"
	}
	return Gravity("auto:" + subject)
}

func (g Gravity) String() string {
	if g == "" {
		return string(GravityCenter)
	}
	return string(g)
}

func (g Gravity) isDefault() bool {
	return g == "" || g == GravityCenter
}

// Quality is a named compression preset or an explicit 0-100 value.
// The empty Quality means "not requested".
type Quality string

const (
	QualityAuto Quality = "auto"
	QualityBest Quality = "auto:best"
	QualityGood Quality = "auto:good"
	QualityEco  Quality = "auto:eco"
	QualityLow  Quality = "auto:low"
)

// QualityValue requests an explicit quality. The value is not range checked.
func QualityValue(n int) Quality {
	return Quality(strconv.Itoa(n))
}

func (q Quality) String() string {
	return string(q)
}

// AspectRatio is consumed by the "ar_" parameter. The empty AspectRatio
// means "not requested".
type AspectRatio string

// Ratio builds an aspect ratio from integer width and height, e.g. 16:9.
func Ratio(width, height int) AspectRatio {
	return AspectRatio(strconv.Itoa(width) + ":" + strconv.Itoa(height))
}

// DecimalRatio builds an aspect ratio from a single width/height quotient.
func DecimalRatio(ratio float64) AspectRatio {
	return AspectRatio(formatFloat(ratio))
}

func (a AspectRatio) String() string {
	return string(a)
}

// Int returns a pointer to n, for optional integer fields.
func Int(n int) *int {
	return &n
}

// Float returns a pointer to v, for optional numeric fields.
func Float(v float64) *float64 {
	return &v
}

// FrameRate is a single frame rate or an inclusive range. The zero value
// means "not requested".
type FrameRate struct {
	Min int
	Max int
}

// FPS requests exactly n frames per second.
func FPS(n int) FrameRate {
	return FrameRate{Min: n, Max: n}
}

// FPSRange requests a frame rate between min and max inclusive.
func FPSRange(min, max int) FrameRate {
	return FrameRate{Min: min, Max: max}
}

// IsZero reports whether no frame rate was requested.
func (f FrameRate) IsZero() bool {
	return f.Min == 0 && f.Max == 0
}

func (f FrameRate) String() string {
	if f.Min == f.Max {
		return strconv.Itoa(f.Min)
	}
	return strconv.Itoa(f.Min) + "-" + strconv.Itoa(f.Max)
}
