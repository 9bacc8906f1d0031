package catalog

import (
	"testing"

	"github.com/careermitra/careermitra-backend/internal/domain"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	cat, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, rec := range cat.Records() {
		if rec.Career == "" {
			t.Fatal("catalog record with empty career name")
		}
		if len(rec.Interests) == 0 {
			t.Fatalf("career %q has no interests", rec.Career)
		}
		if len(rec.RequiredSkills) == 0 {
			t.Fatalf("career %q has no required skills", rec.Career)
		}
	}
}

func TestFindExactName(t *testing.T) {
	t.Parallel()
	cat, err := New([]domain.CareerRecord{
		{Career: "Software Engineer", Interests: []string{"Programming"}, RequiredSkills: []string{"Python"}},
		{Career: "Data Scientist", Interests: []string{"Data"}, RequiredSkills: []string{"SQL"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec, ok := cat.Find("Data Scientist")
	if !ok {
		t.Fatal("Find(Data Scientist): not found")
	}
	if rec.Career != "Data Scientist" {
		t.Fatalf("Find: got=%q want=%q", rec.Career, "Data Scientist")
	}

	// lookup is exact and case-sensitive
	if _, ok := cat.Find("data scientist"); ok {
		t.Fatal("Find(data scientist): matched despite case mismatch")
	}
	if _, ok := cat.Find("Astronaut"); ok {
		t.Fatal("Find(Astronaut): matched unknown career")
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	t.Parallel()
	_, err := New([]domain.CareerRecord{
		{Career: "Software Engineer"},
		{Career: "Software Engineer"},
	})
	if err == nil {
		t.Fatal("New accepted duplicate career names")
	}
}

func TestNewRejectsEmptyName(t *testing.T) {
	t.Parallel()
	_, err := New([]domain.CareerRecord{{Career: "   "}})
	if err == nil {
		t.Fatal("New accepted a blank career name")
	}
}
