package domain

import "errors"

var (
	ErrGenerationFailed = errors.New("level generation failed")
	ErrLoadFailure      = errors.New("load failure")
	ErrSaveFailure      = errors.New("save failure")
	ErrIllegalMove      = errors.New("illegal move")
	ErrNotOnStairs      = errors.New("player is not on a matching staircase")
	ErrOccupied         = errors.New("cell is occupied")
	ErrQuit             = errors.New("quit requested")
)
