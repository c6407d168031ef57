package models

import "strconv"

// DefaultIcon is used when a project has no icon assigned.
const DefaultIcon = "folder"

// Project is a named bucket with a display color and icon that
// sessions are tracked against.
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

func (p Project) IconOrDefault() string {
	if p.Icon == "" {
		return DefaultIcon
	}
	return p.Icon
}

// ProjectUpdate names exactly the mutable fields of a project.
// Nil fields are left untouched.
type ProjectUpdate struct {
	Name  *string
	Color *string
	Icon  *string
}

func (u ProjectUpdate) Apply(p *Project) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Color != nil {
		p.Color = *u.Color
	}
	if u.Icon != nil {
		p.Icon = *u.Icon
	}
}

// DefaultProjects returns the seed set written on first run.
func DefaultProjects() []Project {
	return []Project{
		{ID: "work", Name: "Work", Color: "#5f8eed", Icon: "briefcase"},
		{ID: "personal", Name: "Personal", Color: "#50c878", Icon: "home"},
	}
}

// ContrastColor picks a readable foreground for a #rrggbb background.
func ContrastColor(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return "#ffffff"
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return "#ffffff"
	}
	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	if luminance > 0.5 {
		return "#2e2e2e"
	}
	return "#ffffff"
}
