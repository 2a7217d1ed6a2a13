package state

import "github.com/miloscript/monify/internal/model"

// ClientsSlice owns the client list, including each client's projects.
type ClientsSlice struct {
	Clients []model.Client
}

// UpsertClient inserts or replaces a client by id.
func (s ClientsSlice) UpsertClient(c model.Client) ClientsSlice {
	s.Clients = UpsertByID(s.Clients, c)
	return s
}

// RemoveClient drops a client and, with it, its projects.
func (s ClientsSlice) RemoveClient(id string) ClientsSlice {
	s.Clients = RemoveByID(s.Clients, id)
	return s
}

// UpsertProject inserts or replaces p inside the client named by p.ClientID,
// leaving sibling projects untouched. An unknown client leaves the slice
// unchanged.
func (s ClientsSlice) UpsertProject(p model.Project) ClientsSlice {
	for i := range s.Clients {
		if s.Clients[i].ID != p.ClientID {
			continue
		}
		c := s.Clients[i]
		c.Projects = UpsertByID(c.Projects, p)
		s.Clients = UpsertByID(s.Clients, c)
		return s
	}
	return s
}

// RemoveProject drops a project from its client. Unknown client or project
// ids are no-ops.
func (s ClientsSlice) RemoveProject(clientID, projectID string) ClientsSlice {
	for i := range s.Clients {
		if s.Clients[i].ID != clientID {
			continue
		}
		c := s.Clients[i]
		c.Projects = RemoveByID(c.Projects, projectID)
		s.Clients = UpsertByID(s.Clients, c)
		return s
	}
	return s
}

// SetProjectFieldValue records a project's value for a shared field,
// replacing an earlier value for the same field id. Unknown client or
// project ids leave the slice unchanged.
func (s ClientsSlice) SetProjectFieldValue(clientID, projectID string, value model.AdditionalField) ClientsSlice {
	for i := range s.Clients {
		if s.Clients[i].ID != clientID {
			continue
		}
		c := s.Clients[i]
		for j := range c.Projects {
			if c.Projects[j].ID != projectID {
				continue
			}
			p := c.Projects[j]
			p.AdditionalFields = setFieldValue(p.AdditionalFields, value)
			c.Projects = UpsertByID(c.Projects, p)
			s.Clients = UpsertByID(s.Clients, c)
			return s
		}
		return s
	}
	return s
}

// setFieldValue replaces the entry for value.FieldID in place, or appends.
// AdditionalField carries no id of its own, so the plain upsert does not
// apply here.
func setFieldValue(fields []model.AdditionalField, value model.AdditionalField) []model.AdditionalField {
	out := make([]model.AdditionalField, len(fields))
	copy(out, fields)
	for i := range out {
		if out[i].FieldID == value.FieldID {
			out[i] = value
			return out
		}
	}
	return append(out, value)
}
