// Package textrole classifies lines of loosely formatted profile text into
// roles (name, location, section header, job title, employer metadata,
// education, other). Classification is purely lexical plus one line of
// carried lookback state; no rule looks ahead.
package textrole

import (
	"regexp"
	"strings"
)

// sectionVocabulary maps a normalized section header to whether it opens an
// education/certification block.
var sectionVocabulary = map[string]bool{
	"experience":                  false,
	"work experience":             false,
	"relevant work experience":    false,
	"work history":                false,
	"employment history":          false,
	"professional experience":     false,
	"summary":                     false,
	"skills":                      false,
	"education":                   true,
	"certifications":              true,
	"licenses":                    true,
	"licenses and certifications": true,
}

var (
	// Employer lines end with a year range ("2021 - Present", "2018 - 2021")
	// or a comma-separated single year/"Present" token.
	yearRangeSuffix  = regexp.MustCompile(`(?i)\d{4}\s*[-–]\s*(present|\d{4})\s*$`)
	singleYearSuffix = regexp.MustCompile(`(?i),\s*(\d{4}|present)\s*$`)

	anyDigit = regexp.MustCompile(`\d`)

	// A name word is capitalized, with hyphens/apostrophes allowed inside.
	nameWord = regexp.MustCompile(`^[A-Z][A-Za-z'’-]*$`)

	// Noise lines carry profile metadata, never person data.
	noisePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^recently updated:`),
		regexp.MustCompile(`(?i)^active\s`),
		regexp.MustCompile(`^\+\d+ more$`),
		regexp.MustCompile(`(?i)^contacted via`),
		regexp.MustCompile(`(?i)^military\s*\(`),
	}
)

// educationKeywords flag degree and coursework lines by substring match.
var educationKeywords = []string{
	"bachelor", "master", "associate degree", "associate's", "diploma", "certificate",
	"certification", "b.s.", "b.a.", "m.s.", "m.a.", "bsn", "msn",
	"m.b.a.", "mba", "phd", "ph.d.", "some college", "high school",
	"university", "college", "institute", "academy",
	"cosmetologist", "licensed practitioner nurse",
}

// certVocabulary lists short license/certification lines that are not titles.
var certVocabulary = map[string]bool{
	"rn": true, "lpn": true, "lvn": true, "cna": true, "bls": true,
	"acls": true, "nihss": true, "aed": true, "cpr": true, "ccrn": true,
	"cpi": true, "cnor": true, "tncc": true, "enpc": true, "wcc": true,
	"chha": true, "arnp": true, "apn": true, "aprn": true, "shrm": true,
	"iv certification": true, "driver's license": true, "compact license": true,
	"graduate nurse": true, "paramedic license": true, "first aid certification": true,
}

// credentialSuffixes are tokens that may trail a name after a comma
// ("Jane Doe, RN, BSN") and must be stripped before the name shape check.
var credentialSuffixes = map[string]bool{
	"rn": true, "lpn": true, "lvn": true, "cna": true, "bsn": true,
	"msn": true, "mba": true, "phd": true, "md": true, "do": true,
	"np": true, "crnp": true, "dnp": true, "shrm-cp": true,
}

// stateCodes keeps two-letter US postal abbreviations from being rejected as
// credentials in the location rule ("Baltimore, MD" vs "Jane Doe, RN").
var stateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true, "PR": true,
}

// titleKeywords mark occupational lines so a bare job title ("Senior Software
// Engineer") is never mistaken for a person's name. This lexical check is
// what lets the classifier run without lookahead.
var titleKeywords = map[string]bool{
	"engineer": true, "developer": true, "programmer": true, "architect": true,
	"manager": true, "director": true, "supervisor": true, "coordinator": true,
	"administrator": true, "analyst": true, "consultant": true, "specialist": true,
	"technician": true, "nurse": true, "therapist": true, "assistant": true,
	"associate": true, "representative": true, "recruiter": true, "accountant": true,
	"designer": true, "scientist": true, "officer": true, "president": true,
	"intern": true, "clerk": true, "operator": true, "driver": true,
	"senior": true, "junior": true, "lead": true, "principal": true,
	"staff": true, "chief": true, "vp": true, "cto": true, "ceo": true,
}

// normalizeHeader lowercases and strips trailing punctuation from a
// candidate section header.
func normalizeHeader(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimRight(s, ":;.")
	return strings.Join(strings.Fields(s), " ")
}

// IsSectionHeader reports whether the line names a known resume section,
// alone or with trailing punctuation.
func IsSectionHeader(text string) bool {
	_, ok := sectionVocabulary[normalizeHeader(text)]
	return ok
}

// IsEducationSection reports whether a section header opens an
// education/certification block.
func IsEducationSection(text string) bool {
	return sectionVocabulary[normalizeHeader(text)]
}

// IsNoiseLine reports whether the line is profile metadata with no person
// data ("Recently updated: …", "+3 more").
func IsNoiseLine(text string) bool {
	s := strings.TrimSpace(text)
	for _, pat := range noisePatterns {
		if pat.MatchString(s) {
			return true
		}
	}
	return false
}

// IsEmployerMeta reports whether the line pairs an employer with a date
// range ("Google, 2021 - Present") or is a standalone year range. These
// lines confirm the preceding line was a job title but carry no record data.
func IsEmployerMeta(text string) bool {
	s := strings.TrimSpace(text)
	if s == "" {
		return false
	}
	if yearRangeSuffix.MatchString(s) {
		return true
	}
	return strings.Contains(s, ",") && singleYearSuffix.MatchString(s)
}

// IsLocationLine reports whether the line has "City, ST" or "City, Region"
// shape: exactly one comma, no digits, a small number of words on each side.
// A lone credential token on the right ("Jane Doe, RN") disqualifies the
// line unless it doubles as a state code.
func IsLocationLine(text string) bool {
	s := strings.TrimSpace(text)
	if strings.Count(s, ",") != 1 || anyDigit.MatchString(s) {
		return false
	}
	city, region, _ := strings.Cut(s, ",")
	cityWords := strings.Fields(city)
	regionWords := strings.Fields(region)
	if len(cityWords) == 0 || len(cityWords) > 4 {
		return false
	}
	if len(regionWords) == 0 || len(regionWords) > 3 {
		return false
	}
	if len(regionWords) == 1 {
		w := regionWords[0]
		if credentialSuffixes[strings.ToLower(w)] && !stateCodes[strings.ToUpper(w)] {
			return false
		}
	}
	return true
}

// IsEducationOrCert reports whether the line is a degree, coursework, or
// license/certification item by vocabulary alone. Lines inside an education
// section are forced to this role by the classifier regardless of shape.
func IsEducationOrCert(text string) bool {
	s := strings.TrimSpace(text)
	lower := strings.ToLower(s)
	if certVocabulary[lower] {
		return true
	}
	for _, kw := range educationKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// StripCredentialSuffixes removes trailing comma-separated credential tokens
// from a candidate name line ("Jane Doe, RN, BSN" -> "Jane Doe").
func StripCredentialSuffixes(text string) string {
	s := strings.TrimSpace(text)
	for {
		idx := strings.LastIndex(s, ",")
		if idx < 0 {
			return s
		}
		suffix := strings.ToLower(strings.TrimSpace(s[idx+1:]))
		if !credentialSuffixes[suffix] {
			return s
		}
		s = strings.TrimSpace(s[:idx])
	}
}

// IsPlausibleName reports whether the line looks like a person's name:
// 1-4 capitalized words after credential suffixes are stripped, no digits,
// no trailing punctuation, no section vocabulary, and no occupational
// keyword anywhere in the line.
func IsPlausibleName(text string) bool {
	s := strings.TrimSpace(text)
	if s == "" || anyDigit.MatchString(s) {
		return false
	}
	if strings.ContainsAny(string(s[len(s)-1]), ".,;:!?-") {
		return false
	}
	if IsSectionHeader(s) {
		return false
	}
	s = StripCredentialSuffixes(s)
	words := strings.Fields(s)
	if len(words) < 1 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if titleKeywords[strings.ToLower(strings.Trim(w, "()"))] {
			return false
		}
		if !nameWord.MatchString(strings.Trim(w, "()")) {
			return false
		}
	}
	return true
}
