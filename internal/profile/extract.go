package profile

import (
	"github.com/dgallion1/profilex/internal/textrole"
)

// builder folds classified lines into person records. A nil current record
// means the builder is still awaiting the first (or next) name; a record is
// emitted exactly once, at closure.
type builder struct {
	people  []Record
	current *Record
}

func (b *builder) feed(line textrole.Classified) {
	switch line.Role {
	case textrole.RoleName:
		b.onName(line.Text)
	case textrole.RoleLocation:
		// First location wins; locations before any name are dropped.
		if b.current != nil && b.current.Location == "" {
			b.current.Location = line.Text
		}
	case textrole.RoleJobTitle:
		// Adjacent-duplicate suppression only: the same title at two
		// different employers is a legitimate non-adjacent repeat.
		if b.current == nil {
			return
		}
		if n := len(b.current.Titles); n > 0 && b.current.Titles[n-1] == line.Text {
			return
		}
		b.current.Titles = append(b.current.Titles, line.Text)
	default:
		// Section headers, employer metadata, education lines and noise
		// inform classification context but carry no record data.
	}
}

func (b *builder) onName(name string) {
	if b.current != nil {
		// The common "name printed twice as a header" pattern collapses
		// into one record.
		if b.current.Name == name {
			return
		}
		b.people = append(b.people, *b.current)
	}
	b.current = &Record{Name: name, Titles: []string{}}
}

func (b *builder) finish() []Record {
	if b.current != nil {
		b.people = append(b.people, *b.current)
		b.current = nil
	}
	if b.people == nil {
		b.people = []Record{}
	}
	return b.people
}

// Extract parses raw profile text into structured records. It is
// deterministic and total: any input string, including the empty string,
// yields a Result and never an error. Each call is independent; no state
// survives between invocations.
func Extract(rawText string) Result {
	var b builder
	for _, line := range textrole.Classify(rawText) {
		b.feed(line)
	}
	people := b.finish()

	names := make([]string, 0, len(people))
	locations := []string{}
	titles := []string{}
	seenName := map[string]bool{}
	seenLoc := map[string]bool{}
	seenTitle := map[string]bool{}
	for _, p := range people {
		if !seenName[p.Name] {
			seenName[p.Name] = true
			names = append(names, p.Name)
		}
		if p.Location != "" && !seenLoc[p.Location] {
			seenLoc[p.Location] = true
			locations = append(locations, p.Location)
		}
		for _, t := range p.Titles {
			if !seenTitle[t] {
				seenTitle[t] = true
				titles = append(titles, t)
			}
		}
	}

	return Result{
		Names:     names,
		Locations: locations,
		Titles:    titles,
		People:    people,
	}
}
