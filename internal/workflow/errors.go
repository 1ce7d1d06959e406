package workflow

import "errors"

var (
	ErrClarifyFailed    = errors.New("clarify phase failed")
	ErrResearchFailed   = errors.New("research phase failed")
	ErrStrategyFailed   = errors.New("strategy phase failed")
	ErrExecutionFailed  = errors.New("execution phase failed")
	ErrProductionFailed = errors.New("production phase failed")
	ErrCritiqueFailed   = errors.New("critique phase failed")
	ErrRapidBatchFailed = errors.New("rapid batch phase failed")
	ErrParseFailed      = errors.New("prompt parse phase failed")
	ErrEditFailed       = errors.New("email edit failed")
)
