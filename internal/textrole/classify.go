package textrole

import "strings"

// Role is the classification tag assigned to one input line.
type Role string

const (
	RoleName            Role = "name"
	RoleLocation        Role = "location"
	RoleSectionHeader   Role = "section_header"
	RoleJobTitle        Role = "job_title"
	RoleEmployerMeta    Role = "employer_meta"
	RoleEducationOrCert Role = "education_or_cert"
	RoleOther           Role = "other"
)

// State is the classifier's carried lookback: the previous line's role and
// whether the cursor is inside an education/certification section. It is
// passed explicitly between line evaluations; there is no other state.
type State struct {
	Previous    Role
	InEducation bool
}

// Classified pairs a non-blank, trimmed line with its assigned role and its
// zero-based position among the non-blank lines.
type Classified struct {
	Text string
	Pos  int
	Role Role
}

// titleContext reports whether the previous role makes an otherwise
// unrecognized line a plausible job title. Resumes list experience as bare
// title lines, so job title is the default inside experience context.
func titleContext(st State) bool {
	switch st.Previous {
	case RoleName, RoleLocation, RoleJobTitle, RoleEmployerMeta:
		return true
	case RoleSectionHeader:
		return !st.InEducation
	}
	return false
}

// ClassifyLine assigns a role to one line given the carried state and
// returns the state for the next line. Rules are evaluated in fixed
// priority order, first match wins: the lexically distinctive shapes
// (section headers, employer metadata) go before the looser name/title
// heuristics.
func ClassifyLine(text string, st State) (Role, State) {
	role := RoleOther
	switch {
	case IsSectionHeader(text):
		role = RoleSectionHeader
		st.InEducation = IsEducationSection(text)
	case IsNoiseLine(text):
		role = RoleOther
	case IsEmployerMeta(text):
		role = RoleEmployerMeta
	case IsEducationOrCert(text):
		role = RoleEducationOrCert
	case st.InEducation && !IsPlausibleName(text):
		// Education sections swallow everything until the next section
		// header, except a line shaped like a name: that is the next
		// person's header, and with no lookahead it must be taken now.
		role = RoleEducationOrCert
	case IsLocationLine(text):
		role = RoleLocation
	case IsPlausibleName(text):
		// A new person's header also ends any education context left
		// over from the previous person.
		role = RoleName
		st.InEducation = false
	case titleContext(st):
		role = RoleJobTitle
	}
	st.Previous = role
	return role, st
}

// Classify splits raw text into non-blank trimmed lines and classifies each
// in a single forward pass. Blank lines never appear in the output; position
// numbering reflects only non-blank lines.
func Classify(rawText string) []Classified {
	var out []Classified
	var st State
	pos := 0
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		var role Role
		role, st = ClassifyLine(line, st)
		out = append(out, Classified{Text: line, Pos: pos, Role: role})
		pos++
	}
	return out
}
