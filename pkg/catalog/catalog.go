package catalog

import (
	"sort"

	"github.com/planwerk/shiftboard-api/pkg/models"
)

// Catalog is the read-only lookup source for organizational reference data
// and shift type definitions. It is built once at session start and shared
// freely; nothing here is mutated afterwards.
type Catalog struct {
	locations   map[string]*models.Location
	departments map[string]*models.Department
	teams       map[string]*models.Team
	equipment   map[string]*models.Equipment
	shiftTypes  map[string]*models.ShiftType
}

// New builds a Catalog from reference slices.
func New(locations []models.Location, departments []models.Department, teams []models.Team, equipment []models.Equipment, shiftTypes []models.ShiftType) *Catalog {
	c := &Catalog{
		locations:   make(map[string]*models.Location, len(locations)),
		departments: make(map[string]*models.Department, len(departments)),
		teams:       make(map[string]*models.Team, len(teams)),
		equipment:   make(map[string]*models.Equipment, len(equipment)),
		shiftTypes:  make(map[string]*models.ShiftType, len(shiftTypes)),
	}
	for i := range locations {
		c.locations[locations[i].ID] = &locations[i]
	}
	for i := range departments {
		c.departments[departments[i].ID] = &departments[i]
	}
	for i := range teams {
		c.teams[teams[i].ID] = &teams[i]
	}
	for i := range equipment {
		c.equipment[equipment[i].ID] = &equipment[i]
	}
	for i := range shiftTypes {
		c.shiftTypes[shiftTypes[i].ID] = &shiftTypes[i]
	}
	return c
}

// ShiftTypeByID returns the catalog-backed shift type definition.
func (c *Catalog) ShiftTypeByID(id string) (*models.ShiftType, bool) {
	st, ok := c.shiftTypes[id]
	return st, ok
}

// ShiftTypes returns all shift type definitions ordered by id.
func (c *Catalog) ShiftTypes() []*models.ShiftType {
	out := make([]*models.ShiftType, 0, len(c.shiftTypes))
	for _, st := range c.shiftTypes {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LocationByID returns a location reference entry.
func (c *Catalog) LocationByID(id string) (*models.Location, bool) {
	l, ok := c.locations[id]
	return l, ok
}

// DepartmentByID returns a department reference entry.
func (c *Catalog) DepartmentByID(id string) (*models.Department, bool) {
	d, ok := c.departments[id]
	return d, ok
}

// TeamByID returns a team reference entry.
func (c *Catalog) TeamByID(id string) (*models.Team, bool) {
	t, ok := c.teams[id]
	return t, ok
}

// EquipmentByID returns an equipment reference entry.
func (c *Catalog) EquipmentByID(id string) (*models.Equipment, bool) {
	e, ok := c.equipment[id]
	return e, ok
}
