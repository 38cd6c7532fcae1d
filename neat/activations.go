package neat

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownActivation is returned when an activation name is not registered.
var ErrUnknownActivation = errors.New("unknown activation function")

// ActivationType defines the type for activation functions.
type ActivationType func(input float64, params ...float64) float64

// DefaultActivation is the squashing function applied to hidden nodes.
const DefaultActivation = "sigmoid"

// ActivationFunctions maps function names to the actual activation functions.
// This allows configuration to specify the hidden-node activation by name.
var ActivationFunctions = map[string]ActivationType{
	"sigmoid":  Sigmoid,
	"tanh":     Tanh,
	"relu":     ReLU,
	"identity": Identity,
	"clamped":  Clamped,
	"gaussian": Gaussian,
	"absolute": Absolute,
	"abs":      Absolute, // Alias for absolute
}

// GetActivation retrieves an activation function by name.
func GetActivation(name string) (ActivationType, error) {
	if fn, ok := ActivationFunctions[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownActivation, name)
}

// Sigmoid is the standard logistic function 1 / (1 + e^-x).
// Large negative inputs overflow math.Exp to +Inf, which yields 0 rather than NaN.
func Sigmoid(x float64, params ...float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Tanh activation function.
func Tanh(x float64, params ...float64) float64 {
	return math.Tanh(x)
}

// ReLU (Rectified Linear Unit) activation function.
func ReLU(x float64, params ...float64) float64 {
	return math.Max(0, x)
}

// Identity activation function (linear).
func Identity(x float64, params ...float64) float64 {
	return x
}

// Clamped activation function (clamps output between -1 and 1).
func Clamped(x float64, params ...float64) float64 {
	return clamp(x, -1.0, 1.0)
}

// Gaussian activation function.
func Gaussian(x float64, params ...float64) float64 {
	return math.Exp(-x * x / 2.0)
}

// Absolute value activation function.
func Absolute(x float64, params ...float64) float64 {
	return math.Abs(x)
}
