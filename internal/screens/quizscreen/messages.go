package quizscreen

import "time"

// timerTickMsg is sent every second to update the question countdown.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the answer feedback period ends.
type feedbackDoneMsg struct{}

// audioDoneMsg is sent when async audio playback finishes.
type audioDoneMsg struct {
	err error
}

// persistDoneMsg confirms the quiz event append completed.
type persistDoneMsg struct {
	err error
}
