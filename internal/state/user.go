package state

import "github.com/miloscript/monify/internal/model"

// UserSlice owns the user's own company identity and the shared
// project-field schema.
type UserSlice struct {
	Company       model.Company
	ProjectFields []model.ProjectField
}

// SetCompany replaces the user's company data.
func (s UserSlice) SetCompany(c model.Company) UserSlice {
	s.Company = c
	return s
}

// UpsertProjectField inserts or replaces a field descriptor. Existing
// project entries keep the index they were stored under; a renamed
// descriptor only changes future display labels.
func (s UserSlice) UpsertProjectField(f model.ProjectField) UserSlice {
	s.ProjectFields = UpsertByID(s.ProjectFields, f)
	return s
}

// RemoveProjectField drops a field descriptor. Values already entered on
// projects stay untouched.
func (s UserSlice) RemoveProjectField(id string) UserSlice {
	s.ProjectFields = RemoveByID(s.ProjectFields, id)
	return s
}
