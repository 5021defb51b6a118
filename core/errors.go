package core

import "errors"

// ErrStringIsNotANumber signals that the provided string is not a number
var ErrStringIsNotANumber = errors.New("string is not a number")

// ErrInvalidRange signals that the lower bound is greater than the upper bound
var ErrInvalidRange = errors.New("invalid range")

// ErrNilMarshalizer signals that a nil marshalizer was provided
var ErrNilMarshalizer = errors.New("nil marshalizer")

// ErrEmptyFilePath signals that an empty file path was provided
var ErrEmptyFilePath = errors.New("empty file path")
