package services

import (
	"regexp"
	"strings"

	"dronekids/groundcontrol/internal/constants"
)

// Per-type opening phrases for the debrief narration.
var missionPhrases = map[constants.MissionType]string{
	constants.MissionTypeCoin:     "반짝이는 코인을 모으는 비행이었어!",
	constants.MissionTypeObstacle: "장애물 사이를 요리조리 지나는 비행이었어!",
	constants.MissionTypePhoto:    "멋진 장면을 사진으로 담는 비행이었어!",
}

const (
	successPhrase = "정말 잘했어! 다음 미션도 기대할게!"
	failurePhrase = "아쉽지만 괜찮아. 다시 한 번 도전해보자!"
)

var (
	feedbackDisallowed = regexp.MustCompile(`[^\p{L}\p{N}\s.!?]`)
	feedbackWhitespace = regexp.MustCompile(`\s+`)
)

// ComposeFeedback builds the raw debrief line for a run.
func ComposeFeedback(missionType constants.MissionType, success bool) string {
	phrase, ok := missionPhrases[missionType]
	if !ok {
		phrase = ""
	}

	outcome := failurePhrase
	if success {
		outcome = successPhrase
	}

	return strings.TrimSpace(phrase + " " + outcome)
}

// SanitizeFeedback strips everything the speech synthesizer cannot read:
// only letters, digits, whitespace and ". ! ?" survive, and runs of
// whitespace collapse to a single space.
func SanitizeFeedback(text string) string {
	cleaned := feedbackDisallowed.ReplaceAllString(text, "")
	cleaned = feedbackWhitespace.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// FeedbackAudioURL picks the pre-recorded clip for a run outcome.
func FeedbackAudioURL(missionID int64, success bool) string {
	if success {
		return constants.AudioURLSuccess
	}
	if url, ok := constants.MissionFailureAudioURLs[missionID]; ok {
		return url
	}
	return constants.AudioURLFailure
}
