package draft

import (
	"sync"

	companydomain "github.com/smallbiznis/bizconf/internal/company/domain"
)

// FormState is the shared blackboard for one editing session. Tabbed
// editors read and mutate it; the route-leave guard asks CanDeactivate.
// Updates are last-write-wins, no merge logic.
type FormState struct {
	mu sync.Mutex

	company     *companydomain.Company
	logoPreview string
	dirty       bool
	loading     bool
	saving      bool
}

func NewFormState() *FormState {
	return &FormState{}
}

func (f *FormState) Company() *companydomain.Company {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.company == nil {
		return nil
	}
	copied := *f.company
	return &copied
}

// SetCompany replaces the working copy without touching the dirty flag.
// Loading a record never counts as a user edit.
func (f *FormState) SetCompany(company *companydomain.Company) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.company = company
}

func (f *FormState) UpdateCompany(company *companydomain.Company) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.company = company
	f.dirty = true
}

func (f *FormState) LogoPreview() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logoPreview
}

func (f *FormState) SetLogoPreview(dataURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoPreview = dataURL
	f.dirty = true
}

func (f *FormState) MarkDirty() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirty = true
}

func (f *FormState) IsDirty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dirty
}

func (f *FormState) IsLoading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *FormState) IsSaving() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saving
}

// CanDeactivate reports whether the route-leave guard may let the user
// navigate away without a confirm prompt.
func (f *FormState) CanDeactivate() bool {
	return !f.IsDirty()
}

// BeginLoad flags the session as loading. EndLoad always clears both
// the loading and dirty flags, success or not; a failed load must never
// leave the flag stuck.
func (f *FormState) BeginLoad() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = true
}

func (f *FormState) EndLoad(ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if ok {
		f.dirty = false
	}
}

func (f *FormState) BeginSave() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saving = true
}

func (f *FormState) EndSave(ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saving = false
	if ok {
		f.dirty = false
	}
}

// Snapshot is a point-in-time view of the session flags.
type Snapshot struct {
	IsDirty       bool `json:"isDirty"`
	IsLoading     bool `json:"isLoading"`
	IsSaving      bool `json:"isSaving"`
	CanDeactivate bool `json:"canDeactivate"`
}

func (f *FormState) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		IsDirty:       f.dirty,
		IsLoading:     f.loading,
		IsSaving:      f.saving,
		CanDeactivate: !f.dirty,
	}
}
