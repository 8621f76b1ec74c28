package domain

//region QuotaExceededError

// QuotaExceededError: the rate limiter rejected the attempt. Recoverable by
// waiting for the window to slide.
type QuotaExceededError struct {
	Msg string
}

func (e *QuotaExceededError) Error() string {
	return e.Msg
}

func (e *QuotaExceededError) Is(target error) bool {
	_, ok := target.(*QuotaExceededError)
	return ok
}

//endregion

//region EngineUnavailableError

// EngineUnavailableError: the engine executable is missing. Operator-fixable.
type EngineUnavailableError struct {
	Msg string
}

func (e *EngineUnavailableError) Error() string {
	return e.Msg
}

func (e *EngineUnavailableError) Is(target error) bool {
	_, ok := target.(*EngineUnavailableError)
	return ok
}

//endregion

//region EngineTimeoutError

// EngineTimeoutError: the engine exceeded its time budget and was killed.
type EngineTimeoutError struct {
	Msg string
}

func (e *EngineTimeoutError) Error() string {
	return e.Msg
}

func (e *EngineTimeoutError) Is(target error) bool {
	_, ok := target.(*EngineTimeoutError)
	return ok
}

//endregion

//region EngineFailedError

// EngineFailedError: non-zero exit or spawn failure. May be transient or a
// genuine engine-side rejection; the gateway cannot tell and does not retry.
type EngineFailedError struct {
	Msg string
}

func (e *EngineFailedError) Error() string {
	return e.Msg
}

func (e *EngineFailedError) Is(target error) bool {
	_, ok := target.(*EngineFailedError)
	return ok
}

//endregion
