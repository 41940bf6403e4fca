package model

import "errors"

// ErrInvalidArgument marks caller misuse: empty names, non-positive levels,
// negative damage and similar contract violations. Gameplay rejections
// (not enough gold, skill on cooldown) are never reported through it.
var ErrInvalidArgument = errors.New("invalid argument")
