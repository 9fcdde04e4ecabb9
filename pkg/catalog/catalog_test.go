package catalog

import (
	"testing"

	"github.com/planwerk/shiftboard-api/pkg/models"
)

func testCatalog() *Catalog {
	return New(
		[]models.Location{{ID: "loc-1", Name: "Werk Nord"}},
		[]models.Department{{ID: "dept-1", Name: "Produktion", LocationID: "loc-1"}},
		[]models.Team{{ID: "team-1", Name: "Linie A", DepartmentID: "dept-1"}},
		[]models.Equipment{{ID: "eq-1", Name: "Stapler 04", Kind: "forklift"}},
		[]models.ShiftType{
			{ID: "shift-late", Name: "Spätschicht", RequiredSkills: []string{"Grundqualifikation"}, WorkerQuota: 3},
			{ID: "shift-early", Name: "Frühschicht", RequiredSkills: []string{"Grundqualifikation", "Maschinenbedienung"}, WorkerQuota: 4},
		},
	)
}

func TestShiftTypeLookup(t *testing.T) {
	c := testCatalog()

	st, ok := c.ShiftTypeByID("shift-early")
	if !ok || st.Name != "Frühschicht" {
		t.Fatalf("expected Frühschicht, got %+v (%v)", st, ok)
	}
	if len(st.RequiredSkills) != 2 {
		t.Errorf("expected 2 required skills, got %v", st.RequiredSkills)
	}

	if _, ok := c.ShiftTypeByID("no-such-shift"); ok {
		t.Errorf("unknown shift type must not resolve")
	}
}

func TestShiftTypesOrderedByID(t *testing.T) {
	c := testCatalog()

	all := c.ShiftTypes()
	if len(all) != 2 {
		t.Fatalf("expected 2 shift types, got %d", len(all))
	}
	if all[0].ID != "shift-early" || all[1].ID != "shift-late" {
		t.Errorf("expected id order, got %s, %s", all[0].ID, all[1].ID)
	}
}

func TestReferenceLookups(t *testing.T) {
	c := testCatalog()

	if loc, ok := c.LocationByID("loc-1"); !ok || loc.Name != "Werk Nord" {
		t.Errorf("location lookup failed: %+v (%v)", loc, ok)
	}
	if dept, ok := c.DepartmentByID("dept-1"); !ok || dept.LocationID != "loc-1" {
		t.Errorf("department lookup failed: %+v (%v)", dept, ok)
	}
	if team, ok := c.TeamByID("team-1"); !ok || team.DepartmentID != "dept-1" {
		t.Errorf("team lookup failed: %+v (%v)", team, ok)
	}
	if eq, ok := c.EquipmentByID("eq-1"); !ok || eq.Kind != "forklift" {
		t.Errorf("equipment lookup failed: %+v (%v)", eq, ok)
	}
	if _, ok := c.LocationByID("loc-99"); ok {
		t.Errorf("unknown location must not resolve")
	}
}
