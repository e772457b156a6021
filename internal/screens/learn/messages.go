package learn

// audioDoneMsg is sent when async audio playback finishes.
type audioDoneMsg struct {
	err error
}

// listenResultMsg carries the transcript of a pronunciation attempt.
type listenResultMsg struct {
	transcript string
	err        error
}

// persistDoneMsg confirms an async event append completed.
type persistDoneMsg struct {
	err error
}
