// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lingua/ent/pronunciationevent"
	"github.com/abhisek/lingua/ent/quizevent"
	"github.com/abhisek/lingua/ent/schema"
	"github.com/abhisek/lingua/ent/sessionevent"
	"github.com/abhisek/lingua/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	pronunciationeventMixin := schema.PronunciationEvent{}.Mixin()
	pronunciationeventMixinFields0 := pronunciationeventMixin[0].Fields()
	_ = pronunciationeventMixinFields0
	pronunciationeventFields := schema.PronunciationEvent{}.Fields()
	_ = pronunciationeventFields
	// pronunciationeventDescTimestamp is the schema descriptor for timestamp field.
	pronunciationeventDescTimestamp := pronunciationeventMixinFields0[1].Descriptor()
	// pronunciationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pronunciationevent.DefaultTimestamp = pronunciationeventDescTimestamp.Default.(func() time.Time)
	// pronunciationeventDescSessionID is the schema descriptor for session_id field.
	pronunciationeventDescSessionID := pronunciationeventFields[0].Descriptor()
	// pronunciationevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	pronunciationevent.SessionIDValidator = pronunciationeventDescSessionID.Validators[0].(func(string) error)
	// pronunciationeventDescLanguage is the schema descriptor for language field.
	pronunciationeventDescLanguage := pronunciationeventFields[1].Descriptor()
	// pronunciationevent.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	pronunciationevent.LanguageValidator = pronunciationeventDescLanguage.Validators[0].(func(string) error)
	// pronunciationeventDescWordID is the schema descriptor for word_id field.
	pronunciationeventDescWordID := pronunciationeventFields[2].Descriptor()
	// pronunciationevent.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	pronunciationevent.WordIDValidator = pronunciationeventDescWordID.Validators[0].(func(string) error)
	// pronunciationeventDescTier is the schema descriptor for tier field.
	pronunciationeventDescTier := pronunciationeventFields[4].Descriptor()
	// pronunciationevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	pronunciationevent.TierValidator = pronunciationeventDescTier.Validators[0].(func(string) error)
	// pronunciationeventDescPassed is the schema descriptor for passed field.
	pronunciationeventDescPassed := pronunciationeventFields[5].Descriptor()
	// pronunciationevent.DefaultPassed holds the default value on creation for the passed field.
	pronunciationevent.DefaultPassed = pronunciationeventDescPassed.Default.(bool)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescSessionID is the schema descriptor for session_id field.
	quizeventDescSessionID := quizeventFields[0].Descriptor()
	// quizevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizevent.SessionIDValidator = quizeventDescSessionID.Validators[0].(func(string) error)
	// quizeventDescQuizType is the schema descriptor for quiz_type field.
	quizeventDescQuizType := quizeventFields[1].Descriptor()
	// quizevent.QuizTypeValidator is a validator for the "quiz_type" field. It is called by the builders before save.
	quizevent.QuizTypeValidator = quizeventDescQuizType.Validators[0].(func(string) error)
	// quizeventDescLanguage is the schema descriptor for language field.
	quizeventDescLanguage := quizeventFields[2].Descriptor()
	// quizevent.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	quizevent.LanguageValidator = quizeventDescLanguage.Validators[0].(func(string) error)
	// quizeventDescCategory is the schema descriptor for category field.
	quizeventDescCategory := quizeventFields[3].Descriptor()
	// quizevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	quizevent.CategoryValidator = quizeventDescCategory.Validators[0].(func(string) error)
	// quizeventDescBonusXp is the schema descriptor for bonus_xp field.
	quizeventDescBonusXp := quizeventFields[7].Descriptor()
	// quizevent.DefaultBonusXp holds the default value on creation for the bonus_xp field.
	quizevent.DefaultBonusXp = quizeventDescBonusXp.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescLanguage is the schema descriptor for language field.
	sessioneventDescLanguage := sessioneventFields[2].Descriptor()
	// sessionevent.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	sessionevent.LanguageValidator = sessioneventDescLanguage.Validators[0].(func(string) error)
	// sessioneventDescWordsStudied is the schema descriptor for words_studied field.
	sessioneventDescWordsStudied := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultWordsStudied holds the default value on creation for the words_studied field.
	sessionevent.DefaultWordsStudied = sessioneventDescWordsStudied.Default.(int)
	// sessioneventDescAttempts is the schema descriptor for attempts field.
	sessioneventDescAttempts := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultAttempts holds the default value on creation for the attempts field.
	sessionevent.DefaultAttempts = sessioneventDescAttempts.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[0].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
