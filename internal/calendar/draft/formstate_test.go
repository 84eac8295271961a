package draft

import (
	"testing"

	companydomain "github.com/smallbiznis/bizconf/internal/company/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetCompanyDoesNotDirty(t *testing.T) {
	f := NewFormState()
	f.SetCompany(&companydomain.Company{ID: "cmp-1", CompanyName: "Acme"})

	assert.False(t, f.IsDirty())
	assert.True(t, f.CanDeactivate())
	require.NotNil(t, f.Company())
	assert.Equal(t, "Acme", f.Company().CompanyName)
}

func TestUserEditsDirtyTheForm(t *testing.T) {
	f := NewFormState()

	f.UpdateCompany(&companydomain.Company{ID: "cmp-1"})
	assert.True(t, f.IsDirty())
	assert.False(t, f.CanDeactivate())

	f = NewFormState()
	f.SetLogoPreview("data:image/png;base64,xxxx")
	assert.True(t, f.IsDirty())
	assert.Equal(t, "data:image/png;base64,xxxx", f.LogoPreview())

	f = NewFormState()
	f.MarkDirty()
	assert.True(t, f.IsDirty())
}

func TestCompanyReturnsCopy(t *testing.T) {
	f := NewFormState()
	f.SetCompany(&companydomain.Company{ID: "cmp-1", CompanyName: "Acme"})

	got := f.Company()
	got.CompanyName = "Changed"
	assert.Equal(t, "Acme", f.Company().CompanyName)
}

func TestLoadLifecycleClearsFlags(t *testing.T) {
	f := NewFormState()
	f.MarkDirty()

	f.BeginLoad()
	assert.True(t, f.IsLoading())

	f.EndLoad(true)
	assert.False(t, f.IsLoading())
	assert.False(t, f.IsDirty(), "a successful load resets the form")

	// A failed load clears the loading flag but keeps the edits.
	f.MarkDirty()
	f.BeginLoad()
	f.EndLoad(false)
	assert.False(t, f.IsLoading())
	assert.True(t, f.IsDirty())
}

func TestSaveLifecycleClearsFlags(t *testing.T) {
	f := NewFormState()
	f.MarkDirty()

	f.BeginSave()
	assert.True(t, f.IsSaving())

	f.EndSave(false)
	assert.False(t, f.IsSaving(), "the saving flag never survives a failure")
	assert.True(t, f.IsDirty())

	f.BeginSave()
	f.EndSave(true)
	assert.False(t, f.IsSaving())
	assert.False(t, f.IsDirty())
	assert.True(t, f.CanDeactivate())
}

func TestSnapshotReflectsFlags(t *testing.T) {
	f := NewFormState()
	f.MarkDirty()
	f.BeginSave()

	snap := f.Snapshot()
	assert.True(t, snap.IsDirty)
	assert.True(t, snap.IsSaving)
	assert.False(t, snap.IsLoading)
	assert.False(t, snap.CanDeactivate)
}

func TestManagerSessionsArePerCompany(t *testing.T) {
	m := NewManager(zap.NewNop())

	first := m.Open("cmp-1")
	again := m.Open("cmp-1")
	assert.Same(t, first, again, "reopening returns the existing session")

	other := m.Open("cmp-2")
	assert.NotSame(t, first, other)

	got, err := m.Get("cmp-1")
	require.NoError(t, err)
	assert.Same(t, first, got)

	m.Close("cmp-1")
	_, err = m.Get("cmp-1")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = m.Get("never-opened")
	assert.ErrorIs(t, err, ErrNoSession)
}
