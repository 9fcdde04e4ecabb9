package directory

import (
	"testing"

	"github.com/planwerk/shiftboard-api/pkg/models"
)

func testRoster() []models.Employee {
	return []models.Employee{
		{
			ID: "emp-1", Name: "Anna Berger", EmployeeNumber: "P-1001", Email: "anna.berger@example.com",
			Skills: []string{"Grundqualifikation", "Maschinenbedienung"}, Availability: true,
			LocationID: "loc-1", DepartmentID: "dept-1", TeamID: "team-1",
			Role: "operator", ContractType: "full_time", PerformanceRating: 5,
		},
		{
			ID: "emp-2", Name: "Ben Hoffmann", EmployeeNumber: "P-1002", Email: "ben.hoffmann@example.com",
			Skills: []string{"Grundqualifikation"}, Availability: true,
			LocationID: "loc-1", DepartmentID: "dept-2", TeamID: "team-2",
			Role: "operator", ContractType: "part_time", PerformanceRating: 3,
		},
		{
			ID: "emp-3", Name: "Clara Vogel", EmployeeNumber: "P-1003", Email: "clara.vogel@example.com",
			Skills: []string{"Grundqualifikation", "Nachtwache"}, Availability: false,
			LocationID: "loc-2", DepartmentID: "dept-3", TeamID: "team-3",
			Role: "lead", ContractType: "full_time", PerformanceRating: 4,
		},
	}
}

func ids(employees []*models.Employee) []string {
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterPassThroughDefaults(t *testing.T) {
	d := New(testRoster())

	got := Filter(d.All(), models.FilterOptions{})
	if len(got) != 3 {
		t.Fatalf("zero-valued options must return the full roster, got %d", len(got))
	}
	for i, e := range got {
		if e.ID != d.All()[i].ID {
			t.Errorf("pass-through must preserve order")
		}
	}
}

func TestFilterSingleDimensions(t *testing.T) {
	d := New(testRoster())
	available := true

	cases := []struct {
		name string
		opts models.FilterOptions
		want []string
	}{
		{"location", models.FilterOptions{Locations: []string{"loc-1"}}, []string{"emp-1", "emp-2"}},
		{"department", models.FilterOptions{Departments: []string{"dept-3"}}, []string{"emp-3"}},
		{"team", models.FilterOptions{Teams: []string{"team-2"}}, []string{"emp-2"}},
		{"skill", models.FilterOptions{Skills: []string{"Nachtwache"}}, []string{"emp-3"}},
		{"role", models.FilterOptions{Roles: []string{"lead"}}, []string{"emp-3"}},
		{"contract", models.FilterOptions{ContractTypes: []string{"part_time"}}, []string{"emp-2"}},
		{"availability", models.FilterOptions{Availability: &available}, []string{"emp-1", "emp-2"}},
		{"rating range", models.FilterOptions{MinRating: 4, MaxRating: 5}, []string{"emp-1", "emp-3"}},
		{"search name", models.FilterOptions{Search: "vogel"}, []string{"emp-3"}},
		{"search number", models.FilterOptions{Search: "p-1002"}, []string{"emp-2"}},
		{"search email", models.FilterOptions{Search: "anna.berger@"}, []string{"emp-1"}},
	}

	for _, tc := range cases {
		got := ids(Filter(d.All(), tc.opts))
		if len(got) != len(tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
				break
			}
		}
	}
}

func TestFilterDimensionsCombineWithAnd(t *testing.T) {
	d := New(testRoster())

	got := Filter(d.All(), models.FilterOptions{
		Locations: []string{"loc-1"},
		Skills:    []string{"Maschinenbedienung"},
	})
	if len(got) != 1 || got[0].ID != "emp-1" {
		t.Errorf("expected only emp-1, got %v", ids(got))
	}
}

func TestFilterConstraintOnlyShrinks(t *testing.T) {
	d := New(testRoster())

	base := Filter(d.All(), models.FilterOptions{Locations: []string{"loc-1"}})
	narrowed := Filter(d.All(), models.FilterOptions{Locations: []string{"loc-1"}, Roles: []string{"lead"}})
	if len(narrowed) > len(base) {
		t.Errorf("adding a constraint must not grow the result: %d > %d", len(narrowed), len(base))
	}
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	d := New(testRoster())

	got := Filter(d.All(), models.FilterOptions{Search: "zzz-no-such-person"})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %v", got)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	d := New(testRoster())

	lower := Filter(d.All(), models.FilterOptions{Search: "hoffmann"})
	upper := Filter(d.All(), models.FilterOptions{Search: "HOFFMANN"})
	if len(lower) != 1 || len(upper) != 1 || lower[0].ID != upper[0].ID {
		t.Errorf("search must ignore case: %v vs %v", ids(lower), ids(upper))
	}
}

func TestOrganizationalLookups(t *testing.T) {
	d := New(testRoster())

	if loc, ok := d.LocationOf("emp-3"); !ok || loc != "loc-2" {
		t.Errorf("expected loc-2, got %q (%v)", loc, ok)
	}
	if dept, ok := d.DepartmentOf("emp-2"); !ok || dept != "dept-2" {
		t.Errorf("expected dept-2, got %q (%v)", dept, ok)
	}
	if _, ok := d.LocationOf("ghost"); ok {
		t.Errorf("unknown employee must not resolve")
	}

	if e, ok := d.ByID("emp-1"); !ok || e.Name != "Anna Berger" {
		t.Errorf("ByID lookup failed")
	}
	if d.Len() != 3 {
		t.Errorf("expected roster size 3, got %d", d.Len())
	}
}
