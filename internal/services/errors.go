package services

import "errors"

var ErrIncorrectFormat = errors.New("request has incorrect format")
