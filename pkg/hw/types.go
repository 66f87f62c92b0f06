// Package hw defines the hardware contracts the controller is built on.
//
// Implementations live outside this package: pkg/sim provides a simulated
// car, real boards provide their own drivers.
package hw

// RangeSensor samples the distance to the nearest obstacle.
type RangeSensor interface {
	// DistanceCm reads the instantaneous, unsmoothed distance in centimeters.
	DistanceCm() float64
}

// Encoder measures the linear distance travelled by one wheel.
type Encoder interface {
	// Reset zeroes the travelled distance.
	Reset()
	// DistanceCm gets the distance travelled since last Reset.
	DistanceCm() float64
}

// Drive accepts logical speed/curvature commands.
type Drive interface {
	// GoStraight drives straight at a signed speed.
	GoStraight(speed float64)
	// Turn drives along an arc. Positive curvature turns left.
	Turn(speed, curvature float64)
	// Stop stops both wheels. Stopping a stopped drive has no effect.
	Stop()
}

// Indicator is a binary activity indicator, e.g. an LED.
type Indicator interface {
	SetActive(active bool)
}

// IndicatorFunc is the func form of Indicator.
type IndicatorFunc func(bool)

// SetActive implements Indicator.
func (f IndicatorFunc) SetActive(active bool) {
	f(active)
}

// NopIndicator is an Indicator doing nothing.
var NopIndicator Indicator = IndicatorFunc(func(bool) {})
