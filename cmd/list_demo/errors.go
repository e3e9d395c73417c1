package main

import "errors"

var ErrUnknownFormat = errors.New("unknown output format")
