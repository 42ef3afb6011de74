package core

import "errors"

// ErrEmptyQuestion is returned for a blank question before any provider call.
var ErrEmptyQuestion = errors.New("question is empty")
