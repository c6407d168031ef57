package models

// DataVersion is the current time-data document format. Version 1 (or a
// document without a version field) predates stable session ids.
const DataVersion = 2

// TimeData is the persisted aggregate: the full project and session
// collections. It is loaded once at startup, held in memory and written
// back whole on every mutation.
type TimeData struct {
	Version  int       `json:"version"`
	Projects []Project `json:"projects"`
	Sessions []Session `json:"sessions"`
}

func NewTimeData() *TimeData {
	return &TimeData{
		Version:  DataVersion,
		Projects: DefaultProjects(),
		Sessions: []Session{},
	}
}

// Clone returns a deep copy so no caller holds a reference into the
// store's collections.
func (d *TimeData) Clone() *TimeData {
	c := &TimeData{
		Version:  d.Version,
		Projects: make([]Project, len(d.Projects)),
		Sessions: make([]Session, len(d.Sessions)),
	}
	copy(c.Projects, d.Projects)
	copy(c.Sessions, d.Sessions)
	return c
}
