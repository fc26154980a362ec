// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeace-app/codeace/ent/attemptevent"
	"github.com/codeace-app/codeace/ent/reviewevent"
	"github.com/codeace-app/codeace/ent/schema"
	"github.com/codeace-app/codeace/ent/snippet"
	"github.com/codeace-app/codeace/ent/userrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescUID is the schema descriptor for uid field.
	attempteventDescUID := attempteventMixinFields0[0].Descriptor()
	// attemptevent.UIDValidator is a validator for the "uid" field. It is called by the builders before save.
	attemptevent.UIDValidator = attempteventDescUID.Validators[0].(func(string) error)
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescProblemID is the schema descriptor for problem_id field.
	attempteventDescProblemID := attempteventFields[0].Descriptor()
	// attemptevent.ProblemIDValidator is a validator for the "problem_id" field. It is called by the builders before save.
	attemptevent.ProblemIDValidator = attempteventDescProblemID.Validators[0].(func(string) error)
	// attempteventDescVerdict is the schema descriptor for verdict field.
	attempteventDescVerdict := attempteventFields[1].Descriptor()
	// attemptevent.VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	attemptevent.VerdictValidator = attempteventDescVerdict.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescUID is the schema descriptor for uid field.
	revieweventDescUID := revieweventMixinFields0[0].Descriptor()
	// reviewevent.UIDValidator is a validator for the "uid" field. It is called by the builders before save.
	reviewevent.UIDValidator = revieweventDescUID.Validators[0].(func(string) error)
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescProvider is the schema descriptor for provider field.
	revieweventDescProvider := revieweventFields[0].Descriptor()
	// reviewevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	reviewevent.ProviderValidator = revieweventDescProvider.Validators[0].(func(string) error)
	// revieweventDescModel is the schema descriptor for model field.
	revieweventDescModel := revieweventFields[1].Descriptor()
	// reviewevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	reviewevent.ModelValidator = revieweventDescModel.Validators[0].(func(string) error)
	snippetFields := schema.Snippet{}.Fields()
	_ = snippetFields
	// snippetDescSnippetID is the schema descriptor for snippet_id field.
	snippetDescSnippetID := snippetFields[0].Descriptor()
	// snippet.SnippetIDValidator is a validator for the "snippet_id" field. It is called by the builders before save.
	snippet.SnippetIDValidator = snippetDescSnippetID.Validators[0].(func(string) error)
	// snippetDescUID is the schema descriptor for uid field.
	snippetDescUID := snippetFields[1].Descriptor()
	// snippet.UIDValidator is a validator for the "uid" field. It is called by the builders before save.
	snippet.UIDValidator = snippetDescUID.Validators[0].(func(string) error)
	// snippetDescTitle is the schema descriptor for title field.
	snippetDescTitle := snippetFields[2].Descriptor()
	// snippet.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	snippet.TitleValidator = snippetDescTitle.Validators[0].(func(string) error)
	// snippetDescLanguage is the schema descriptor for language field.
	snippetDescLanguage := snippetFields[3].Descriptor()
	// snippet.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	snippet.LanguageValidator = snippetDescLanguage.Validators[0].(func(string) error)
	// snippetDescCreatedAt is the schema descriptor for created_at field.
	snippetDescCreatedAt := snippetFields[5].Descriptor()
	// snippet.DefaultCreatedAt holds the default value on creation for the created_at field.
	snippet.DefaultCreatedAt = snippetDescCreatedAt.Default.(func() time.Time)
	// snippetDescUpdatedAt is the schema descriptor for updated_at field.
	snippetDescUpdatedAt := snippetFields[6].Descriptor()
	// snippet.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	snippet.DefaultUpdatedAt = snippetDescUpdatedAt.Default.(func() time.Time)
	// snippet.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	snippet.UpdateDefaultUpdatedAt = snippetDescUpdatedAt.UpdateDefault.(func() time.Time)
	userrecordFields := schema.UserRecord{}.Fields()
	_ = userrecordFields
	// userrecordDescUID is the schema descriptor for uid field.
	userrecordDescUID := userrecordFields[0].Descriptor()
	// userrecord.UIDValidator is a validator for the "uid" field. It is called by the builders before save.
	userrecord.UIDValidator = userrecordDescUID.Validators[0].(func(string) error)
	// userrecordDescEmail is the schema descriptor for email field.
	userrecordDescEmail := userrecordFields[1].Descriptor()
	// userrecord.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	userrecord.EmailValidator = userrecordDescEmail.Validators[0].(func(string) error)
	// userrecordDescDisplayName is the schema descriptor for display_name field.
	userrecordDescDisplayName := userrecordFields[2].Descriptor()
	// userrecord.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	userrecord.DisplayNameValidator = userrecordDescDisplayName.Validators[0].(func(string) error)
	// userrecordDescCreatedAt is the schema descriptor for created_at field.
	userrecordDescCreatedAt := userrecordFields[5].Descriptor()
	// userrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	userrecord.DefaultCreatedAt = userrecordDescCreatedAt.Default.(func() time.Time)
	// userrecordDescLastLoginAt is the schema descriptor for last_login_at field.
	userrecordDescLastLoginAt := userrecordFields[6].Descriptor()
	// userrecord.DefaultLastLoginAt holds the default value on creation for the last_login_at field.
	userrecord.DefaultLastLoginAt = userrecordDescLastLoginAt.Default.(func() time.Time)
	// userrecordDescRevision is the schema descriptor for revision field.
	userrecordDescRevision := userrecordFields[7].Descriptor()
	// userrecord.DefaultRevision holds the default value on creation for the revision field.
	userrecord.DefaultRevision = userrecordDescRevision.Default.(int64)
	// userrecordDescTotalXp is the schema descriptor for total_xp field.
	userrecordDescTotalXp := userrecordFields[8].Descriptor()
	// userrecord.DefaultTotalXp holds the default value on creation for the total_xp field.
	userrecord.DefaultTotalXp = userrecordDescTotalXp.Default.(int)
}
