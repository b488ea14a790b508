package services

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/testutil"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	"github.com/paulossjunior/dynamic-forms/pkg/errors"
	"github.com/paulossjunior/dynamic-forms/pkg/utils"
)

func newManager(t *testing.T) *ServiceManager {
	t.Helper()
	return NewServiceManager(testutil.NewSQLiteStore(t))
}

func createField(t *testing.T, sm *ServiceManager, key, fieldType string, options ...string) *models.FieldDefinition {
	t.Helper()
	field, err := sm.Fields.Create(context.Background(), CreateFieldRequest{
		EntityType: constants.EntityTypePerson,
		KeyName:    key,
		Label:      key,
		FieldType:  fieldType,
		Options:    options,
	})
	require.NoError(t, err)
	return field
}

func TestCreateForm_ResolvesTempIDs(t *testing.T) {
	ctx := context.Background()
	sm := newManager(t)
	name := createField(t, sm, "nickname", constants.FieldTypeText)
	color := createField(t, sm, "fav_color", constants.FieldTypeSelect, "red", "blue")
	age := createField(t, sm, "age", constants.FieldTypeNumber)

	form, err := sm.Forms.CreateForm(ctx, CreateFormRequest{
		Name: "Onboarding",
		Sections: []SectionInput{
			{TempID: "s2", Name: "Preferences", Order: 1},
			{TempID: "s1", Name: "About you", Order: 0},
		},
		Fields: []FieldInput{
			{FieldID: name.ID, SectionTempID: utils.Ptr("s1"), IsRequired: true},
			{FieldID: color.ID, SectionTempID: utils.Ptr("s2")},
			{FieldID: age.ID, SectionTempID: utils.Ptr("nope")},
		},
	})
	require.NoError(t, err)

	require.Len(t, form.Sections, 2)
	assert.Equal(t, "About you", form.Sections[0].Name)
	assert.Equal(t, "Preferences", form.Sections[1].Name)

	require.Len(t, form.Fields, 3)
	assert.Equal(t, form.Sections[0].ID, form.Fields[0].SectionID)
	assert.Equal(t, form.Sections[1].ID, form.Fields[1].SectionID)
	assert.Nil(t, form.Fields[2].SectionID, "unknown temp id leaves the association without a section")

	for i, assoc := range form.Fields {
		assert.Equal(t, i, assoc.Order)
		require.NotNil(t, assoc.Field)
	}
	assert.True(t, form.Fields[0].IsRequired)
	assert.Equal(t, []string{"red", "blue"}, form.Fields[1].Field.Options)
}

func TestCreateForm_RejectsSectionOfAnotherForm(t *testing.T) {
	ctx := context.Background()
	sm := newManager(t)
	f1 := createField(t, sm, "a", constants.FieldTypeText)
	f2 := createField(t, sm, "b", constants.FieldTypeText)

	first, err := sm.Forms.CreateForm(ctx, CreateFormRequest{
		Name:     "First",
		Sections: []SectionInput{{TempID: "x", Name: "Only"}},
		Fields:   []FieldInput{{FieldID: f1.ID, SectionTempID: utils.Ptr("x")}},
	})
	require.NoError(t, err)
	foreign := first.Sections[0].ID

	_, err = sm.Forms.CreateForm(ctx, CreateFormRequest{
		Name:     "Second",
		Sections: []SectionInput{{TempID: "x", Name: "Local"}},
		Fields:   []FieldInput{{FieldID: f2.ID, SectionID: foreign, SectionTempID: utils.Ptr("x")}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err), "got %v", err)

	forms, err := sm.Forms.ListForms(ctx)
	require.NoError(t, err)
	require.Len(t, forms, 1, "rejected form must leave no rows behind")
	assert.Equal(t, "First", forms[0].Name)
}

func TestCreateForm_UnknownDirectSectionID(t *testing.T) {
	ctx := context.Background()
	sm := newManager(t)
	f := createField(t, sm, "a", constants.FieldTypeText)

	_, err := sm.Forms.CreateForm(ctx, CreateFormRequest{
		Name:   "Lonely",
		Fields: []FieldInput{{FieldID: f.ID, SectionID: utils.Ptr(int64(999))}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err), "got %v", err)
}

func TestCreateForm_DuplicateNameWritesNothing(t *testing.T) {
	ctx := context.Background()
	sm := newManager(t)

	_, err := sm.Forms.CreateForm(ctx, CreateFormRequest{Name: "Intake", Sections: []SectionInput{{Name: "A"}}})
	require.NoError(t, err)

	_, err = sm.Forms.CreateForm(ctx, CreateFormRequest{Name: "Intake", Sections: []SectionInput{{Name: "B"}, {Name: "C", Order: 1}}})
	require.Error(t, err)
	assert.True(t, errors.IsConflict(err))

	forms, err := sm.Forms.ListForms(ctx)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	require.Len(t, forms[0].Sections, 1)
	assert.Equal(t, "A", forms[0].Sections[0].Name)
}

func TestCreateForm_MidSequenceFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	sm := newManager(t)

	_, err := sm.Forms.CreateForm(ctx, CreateFormRequest{
		Name:     "Broken",
		Sections: []SectionInput{{Name: "Kept?"}},
		Fields:   []FieldInput{{FieldID: 4242}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err), "got %v", err)

	forms, err := sm.Forms.ListForms(ctx)
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestCreateForm_InvalidInputRejectedUpFront(t *testing.T) {
	ctx := context.Background()
	sm := newManager(t)

	tests := []struct {
		name  string
		req   CreateFormRequest
		field string
	}{
		{"empty name", CreateFormRequest{Name: " "}, "name"},
		{"invalid section", CreateFormRequest{Name: "X", Sections: []SectionInput{{Name: "ok"}, {Name: "bad", Order: -1}}}, "order"},
		{"missing field id", CreateFormRequest{Name: "X", Fields: []FieldInput{{}}}, "field_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sm.Forms.CreateForm(ctx, tt.req)
			var verr *errors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	forms, err := sm.Forms.ListForms(ctx)
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestGetForm_RoundTrip(t *testing.T) {
	ctx := context.Background()
	sm := newManager(t)
	field := createField(t, sm, "email_opt_in", constants.FieldTypeCheckbox)

	created, err := sm.Forms.CreateForm(ctx, CreateFormRequest{
		Name:        "Newsletter",
		Description: utils.Ptr("Sign-up"),
		Sections:    []SectionInput{{TempID: "main", Name: "Main", Description: utils.Ptr("Everything")}},
		Fields:      []FieldInput{{FieldID: field.ID, SectionTempID: utils.Ptr("main")}},
	})
	require.NoError(t, err)

	got, err := sm.Forms.GetForm(ctx, created.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(created, got); diff != "" {
		t.Errorf("GetForm mismatch (-created +got):\n%s", diff)
	}

	_, err = sm.Forms.GetForm(ctx, created.ID+100)
	assert.True(t, errors.IsNotFound(err))
}

func TestDeleteForm(t *testing.T) {
	ctx := context.Background()
	sm := newManager(t)

	form, err := sm.Forms.CreateForm(ctx, CreateFormRequest{Name: "Tmp", Sections: []SectionInput{{Name: "S"}}})
	require.NoError(t, err)

	require.NoError(t, sm.Forms.DeleteForm(ctx, form.ID))
	assert.True(t, errors.IsNotFound(sm.Forms.DeleteForm(ctx, form.ID)))

	sections, err := sm.Sections.List.Execute(ctx, form.ID)
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestAssignFieldSection(t *testing.T) {
	ctx := context.Background()
	sm := newManager(t)
	field := createField(t, sm, "nick", constants.FieldTypeText)

	form, err := sm.Forms.CreateForm(ctx, CreateFormRequest{
		Name:     "Mine",
		Sections: []SectionInput{{Name: "A"}, {Name: "B", Order: 1}},
		Fields:   []FieldInput{{FieldID: field.ID}},
	})
	require.NoError(t, err)
	other, err := sm.Forms.CreateForm(ctx, CreateFormRequest{Name: "Other", Sections: []SectionInput{{Name: "Foreign"}}})
	require.NoError(t, err)

	target := form.Sections[1].IDValue()
	assoc, err := sm.Forms.AssignFieldSection(ctx, form.ID, field.ID, target)
	require.NoError(t, err)
	assert.Equal(t, target, *assoc.SectionID)

	reloaded, err := sm.Forms.GetForm(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, target, *reloaded.Fields[0].SectionID)

	_, err = sm.Forms.AssignFieldSection(ctx, form.ID, field.ID, other.Sections[0].IDValue())
	assert.True(t, errors.IsValidation(err))

	_, err = sm.Forms.AssignFieldSection(ctx, form.ID, field.ID+50, target)
	assert.True(t, errors.IsNotFound(err))

	_, err = sm.Forms.AssignFieldSection(ctx, form.ID, field.ID, 9999)
	assert.True(t, errors.IsNotFound(err))
}
