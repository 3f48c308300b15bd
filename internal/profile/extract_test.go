package profile

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtract_EmptyInput(t *testing.T) {
	res := Extract("")
	if len(res.People) != 0 {
		t.Errorf("expected no people, got %d", len(res.People))
	}
	if res.Names == nil || res.Locations == nil || res.Titles == nil || res.People == nil {
		t.Error("expected empty, non-nil slices for empty input")
	}
}

func TestExtract_BlankLinesOnly(t *testing.T) {
	res := Extract("\n\n   \n\t\n")
	if len(res.People) != 0 {
		t.Errorf("expected no people for blank input, got %d", len(res.People))
	}
}

func TestExtract_DuplicateNameHeaderCollapses(t *testing.T) {
	res := Extract("Jane Doe\nJane Doe\nBoston, MA")
	if len(res.People) != 1 {
		t.Fatalf("expected 1 person, got %d", len(res.People))
	}
	p := res.People[0]
	if p.Name != "Jane Doe" {
		t.Errorf("expected name %q, got %q", "Jane Doe", p.Name)
	}
	if p.Location != "Boston, MA" {
		t.Errorf("expected location %q, got %q", "Boston, MA", p.Location)
	}
	if len(p.Titles) != 0 {
		t.Errorf("expected no titles, got %v", p.Titles)
	}
}

func TestExtract_TitlesAccumulateInOrder(t *testing.T) {
	input := "John Smith\nJohn Smith\nPittsburgh, PA\nRelevant Work Experience\n" +
		"Senior Software Engineer\nGoogle, 2021 - Present\nSoftware Engineer\n" +
		"Microsoft, 2018 - 2021\nEducation\nB.S. Computer Science"
	res := Extract(input)
	if len(res.People) != 1 {
		t.Fatalf("expected 1 person, got %d: %+v", len(res.People), res.People)
	}
	p := res.People[0]
	if p.Location != "Pittsburgh, PA" {
		t.Errorf("expected location %q, got %q", "Pittsburgh, PA", p.Location)
	}
	want := []string{"Senior Software Engineer", "Software Engineer"}
	if !reflect.DeepEqual(p.Titles, want) {
		t.Errorf("expected titles %v, got %v", want, p.Titles)
	}
}

func TestExtract_TwoPeopleNoBleed(t *testing.T) {
	input := "Alice Wu\nAlice Wu\nSeattle, WA\nEngineer\nBob Lee\nBob Lee\nAustin, TX\nManager"
	res := Extract(input)
	if len(res.People) != 2 {
		t.Fatalf("expected 2 people, got %d: %+v", len(res.People), res.People)
	}
	alice, bob := res.People[0], res.People[1]
	if alice.Name != "Alice Wu" || alice.Location != "Seattle, WA" {
		t.Errorf("unexpected first record: %+v", alice)
	}
	if !reflect.DeepEqual(alice.Titles, []string{"Engineer"}) {
		t.Errorf("expected Alice's titles [Engineer], got %v", alice.Titles)
	}
	if bob.Name != "Bob Lee" || bob.Location != "Austin, TX" {
		t.Errorf("unexpected second record: %+v", bob)
	}
	if !reflect.DeepEqual(bob.Titles, []string{"Manager"}) {
		t.Errorf("expected Bob's titles [Manager], got %v", bob.Titles)
	}
}

func TestExtract_MissingLocation(t *testing.T) {
	res := Extract("Carlos Diaz\nStaff Engineer")
	if len(res.People) != 1 {
		t.Fatalf("expected 1 person, got %d", len(res.People))
	}
	if res.People[0].Location != "" {
		t.Errorf("expected empty location, got %q", res.People[0].Location)
	}
	if len(res.Locations) != 0 {
		t.Errorf("expected no location projection entries, got %v", res.Locations)
	}
}

func TestExtract_FirstLocationWins(t *testing.T) {
	res := Extract("Jane Doe\nBoston, MA\nDenver, CO")
	if len(res.People) != 1 {
		t.Fatalf("expected 1 person, got %d", len(res.People))
	}
	if res.People[0].Location != "Boston, MA" {
		t.Errorf("expected first location to win, got %q", res.People[0].Location)
	}
}

func TestExtract_AdjacentDuplicateTitleSuppressed(t *testing.T) {
	res := Extract("Jane Doe\nCharge Nurse\nCharge Nurse")
	if len(res.People) != 1 {
		t.Fatalf("expected 1 person, got %d", len(res.People))
	}
	if !reflect.DeepEqual(res.People[0].Titles, []string{"Charge Nurse"}) {
		t.Errorf("expected adjacent duplicate suppressed, got %v", res.People[0].Titles)
	}
}

func TestExtract_NonAdjacentRepeatKept(t *testing.T) {
	// The same title at two different employers is a real repeat.
	input := "Jane Doe\nCharge Nurse\nMercy Hospital, 2020 - 2022\nStaff Nurse\nCity Clinic, 2018 - 2020\nCharge Nurse\nCounty Hospital, 2015 - 2018"
	res := Extract(input)
	if len(res.People) != 1 {
		t.Fatalf("expected 1 person, got %d", len(res.People))
	}
	want := []string{"Charge Nurse", "Staff Nurse", "Charge Nurse"}
	if !reflect.DeepEqual(res.People[0].Titles, want) {
		t.Errorf("expected titles %v, got %v", want, res.People[0].Titles)
	}
	// The projection still deduplicates.
	if len(res.Titles) != 2 {
		t.Errorf("expected 2 unique titles in projection, got %v", res.Titles)
	}
}

func TestExtract_OrphanLinesBeforeFirstName(t *testing.T) {
	// Locations and titles before any name open no record.
	res := Extract("Boston, MA\nRegistered Nurse\nJane Doe\nDenver, CO")
	if len(res.People) != 1 {
		t.Fatalf("expected 1 person, got %d: %+v", len(res.People), res.People)
	}
	if res.People[0].Name != "Jane Doe" {
		t.Errorf("expected %q, got %q", "Jane Doe", res.People[0].Name)
	}
	if res.People[0].Location != "Denver, CO" {
		t.Errorf("expected location %q, got %q", "Denver, CO", res.People[0].Location)
	}
}

func TestExtract_EveryNameIsATrimmedInputLine(t *testing.T) {
	input := "  Jane Doe  \nBoston, MA\nBob Lee\nAustin, TX"
	lines := map[string]bool{}
	for _, l := range strings.Split(input, "\n") {
		lines[strings.TrimSpace(l)] = true
	}
	res := Extract(input)
	if len(res.People) == 0 {
		t.Fatal("expected people")
	}
	for _, p := range res.People {
		if strings.TrimSpace(p.Name) == "" {
			t.Errorf("record with empty name emitted: %+v", p)
		}
		if !lines[p.Name] {
			t.Errorf("name %q is not a trimmed input line", p.Name)
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	input := "Alice Wu\nSeattle, WA\nEngineer\nBob Lee\nAustin, TX\nManager"
	r1 := Extract(input)
	r2 := Extract(input)
	if !reflect.DeepEqual(r1, r2) {
		t.Error("expected identical results for repeated extraction of the same input")
	}
}

func TestExtract_NoStateLeaksBetweenCalls(t *testing.T) {
	// An education section left open in one input must not affect the next.
	Extract("Jane Doe\nEducation\nB.S. Biology")
	res := Extract("Mia Chen\nSales Associate")
	if len(res.People) != 1 {
		t.Fatalf("expected 1 person, got %d", len(res.People))
	}
	if !reflect.DeepEqual(res.People[0].Titles, []string{"Sales Associate"}) {
		t.Errorf("expected title recorded, got %v", res.People[0].Titles)
	}
}

func TestExtract_ProjectionsDeduplicateFirstSeen(t *testing.T) {
	input := "Jane Doe\nBoston, MA\nNurse Manager\nBob Lee\nBoston, MA\nNurse Manager"
	res := Extract(input)
	if !reflect.DeepEqual(res.Names, []string{"Jane Doe", "Bob Lee"}) {
		t.Errorf("unexpected names projection: %v", res.Names)
	}
	if !reflect.DeepEqual(res.Locations, []string{"Boston, MA"}) {
		t.Errorf("unexpected locations projection: %v", res.Locations)
	}
	if !reflect.DeepEqual(res.Titles, []string{"Nurse Manager"}) {
		t.Errorf("unexpected titles projection: %v", res.Titles)
	}
}

func TestExtract_EducationLinesProduceNoTitles(t *testing.T) {
	input := "Jane Doe\nRegistered Nurse\nEducation\nBachelor of Science in Nursing\nLicenses and certifications\nBLS\nACLS"
	res := Extract(input)
	if len(res.People) != 1 {
		t.Fatalf("expected 1 person, got %d", len(res.People))
	}
	if !reflect.DeepEqual(res.People[0].Titles, []string{"Registered Nurse"}) {
		t.Errorf("expected only the real title, got %v", res.People[0].Titles)
	}
}
