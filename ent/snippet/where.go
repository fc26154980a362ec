// Code generated by ent, DO NOT EDIT.

package snippet

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeace-app/codeace/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Snippet {
	return predicate.Snippet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Snippet {
	return predicate.Snippet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Snippet {
	return predicate.Snippet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Snippet {
	return predicate.Snippet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Snippet {
	return predicate.Snippet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Snippet {
	return predicate.Snippet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Snippet {
	return predicate.Snippet(sql.FieldLTE(FieldID, id))
}

// SnippetID applies equality check predicate on the "snippet_id" field. It's identical to SnippetIDEQ.
func SnippetID(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldSnippetID, v))
}

// UID applies equality check predicate on the "uid" field. It's identical to UIDEQ.
func UID(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldUID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldTitle, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldLanguage, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldCode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldUpdatedAt, v))
}

// SnippetIDEQ applies the EQ predicate on the "snippet_id" field.
func SnippetIDEQ(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldSnippetID, v))
}

// SnippetIDNEQ applies the NEQ predicate on the "snippet_id" field.
func SnippetIDNEQ(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldNEQ(FieldSnippetID, v))
}

// SnippetIDIn applies the In predicate on the "snippet_id" field.
func SnippetIDIn(vs ...string) predicate.Snippet {
	return predicate.Snippet(sql.FieldIn(FieldSnippetID, vs...))
}

// SnippetIDNotIn applies the NotIn predicate on the "snippet_id" field.
func SnippetIDNotIn(vs ...string) predicate.Snippet {
	return predicate.Snippet(sql.FieldNotIn(FieldSnippetID, vs...))
}

// SnippetIDGT applies the GT predicate on the "snippet_id" field.
func SnippetIDGT(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldGT(FieldSnippetID, v))
}

// SnippetIDGTE applies the GTE predicate on the "snippet_id" field.
func SnippetIDGTE(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldGTE(FieldSnippetID, v))
}

// SnippetIDLT applies the LT predicate on the "snippet_id" field.
func SnippetIDLT(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldLT(FieldSnippetID, v))
}

// SnippetIDLTE applies the LTE predicate on the "snippet_id" field.
func SnippetIDLTE(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldLTE(FieldSnippetID, v))
}

// SnippetIDContains applies the Contains predicate on the "snippet_id" field.
func SnippetIDContains(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldContains(FieldSnippetID, v))
}

// SnippetIDHasPrefix applies the HasPrefix predicate on the "snippet_id" field.
func SnippetIDHasPrefix(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldHasPrefix(FieldSnippetID, v))
}

// SnippetIDHasSuffix applies the HasSuffix predicate on the "snippet_id" field.
func SnippetIDHasSuffix(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldHasSuffix(FieldSnippetID, v))
}

// SnippetIDEqualFold applies the EqualFold predicate on the "snippet_id" field.
func SnippetIDEqualFold(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEqualFold(FieldSnippetID, v))
}

// SnippetIDContainsFold applies the ContainsFold predicate on the "snippet_id" field.
func SnippetIDContainsFold(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldContainsFold(FieldSnippetID, v))
}

// UIDEQ applies the EQ predicate on the "uid" field.
func UIDEQ(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldUID, v))
}

// UIDNEQ applies the NEQ predicate on the "uid" field.
func UIDNEQ(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldNEQ(FieldUID, v))
}

// UIDIn applies the In predicate on the "uid" field.
func UIDIn(vs ...string) predicate.Snippet {
	return predicate.Snippet(sql.FieldIn(FieldUID, vs...))
}

// UIDNotIn applies the NotIn predicate on the "uid" field.
func UIDNotIn(vs ...string) predicate.Snippet {
	return predicate.Snippet(sql.FieldNotIn(FieldUID, vs...))
}

// UIDGT applies the GT predicate on the "uid" field.
func UIDGT(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldGT(FieldUID, v))
}

// UIDGTE applies the GTE predicate on the "uid" field.
func UIDGTE(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldGTE(FieldUID, v))
}

// UIDLT applies the LT predicate on the "uid" field.
func UIDLT(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldLT(FieldUID, v))
}

// UIDLTE applies the LTE predicate on the "uid" field.
func UIDLTE(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldLTE(FieldUID, v))
}

// UIDContains applies the Contains predicate on the "uid" field.
func UIDContains(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldContains(FieldUID, v))
}

// UIDHasPrefix applies the HasPrefix predicate on the "uid" field.
func UIDHasPrefix(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldHasPrefix(FieldUID, v))
}

// UIDHasSuffix applies the HasSuffix predicate on the "uid" field.
func UIDHasSuffix(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldHasSuffix(FieldUID, v))
}

// UIDEqualFold applies the EqualFold predicate on the "uid" field.
func UIDEqualFold(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEqualFold(FieldUID, v))
}

// UIDContainsFold applies the ContainsFold predicate on the "uid" field.
func UIDContainsFold(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldContainsFold(FieldUID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Snippet {
	return predicate.Snippet(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Snippet {
	return predicate.Snippet(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldContainsFold(FieldTitle, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Snippet {
	return predicate.Snippet(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Snippet {
	return predicate.Snippet(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldContainsFold(FieldLanguage, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Snippet {
	return predicate.Snippet(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Snippet {
	return predicate.Snippet(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Snippet {
	return predicate.Snippet(sql.FieldContainsFold(FieldCode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Snippet {
	return predicate.Snippet(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Snippet) predicate.Snippet {
	return predicate.Snippet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Snippet) predicate.Snippet {
	return predicate.Snippet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Snippet) predicate.Snippet {
	return predicate.Snippet(sql.NotPredicates(p))
}
