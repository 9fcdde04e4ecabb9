package database

import (
	"gorm.io/gorm"
)

// SeedDemoData populates the reference tables with a small demo organization
// when they are empty. Safe to call on every startup.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Location{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	locations := []Location{
		{ID: "loc-1", Name: "Werk Nord", Address: "Industriestr. 12"},
		{ID: "loc-2", Name: "Werk Süd", Address: "Hafenweg 3"},
	}
	departments := []Department{
		{ID: "dept-1", Name: "Produktion", LocationID: "loc-1"},
		{ID: "dept-2", Name: "Logistik", LocationID: "loc-1"},
		{ID: "dept-3", Name: "Produktion", LocationID: "loc-2"},
	}
	teams := []Team{
		{ID: "team-1", Name: "Linie A", DepartmentID: "dept-1"},
		{ID: "team-2", Name: "Linie B", DepartmentID: "dept-1"},
		{ID: "team-3", Name: "Versand", DepartmentID: "dept-2"},
	}
	equipment := []Equipment{
		{ID: "eq-1", Name: "Stapler 04", Kind: "forklift"},
		{ID: "eq-2", Name: "Presse 2", Kind: "press"},
	}
	shiftTypes := []ShiftType{
		{ID: "shift-early", Name: "Frühschicht", StartTime: "06:00", EndTime: "14:00",
			RequiredSkills: "Grundqualifikation|Maschinenbedienung", WorkerQuota: 4, Priority: 1},
		{ID: "shift-late", Name: "Spätschicht", StartTime: "14:00", EndTime: "22:00",
			RequiredSkills: "Grundqualifikation", WorkerQuota: 3, Priority: 2},
		{ID: "shift-night", Name: "Nachtschicht", StartTime: "22:00", EndTime: "06:00",
			RequiredSkills: "Grundqualifikation|Nachtwache", WorkerQuota: 2, Priority: 3, EquipmentIDs: "eq-1"},
	}
	employees := []Employee{
		{ID: "emp-1", Name: "Anna Berger", EmployeeNumber: "P-1001", Email: "anna.berger@example.com",
			Skills: "Grundqualifikation|Maschinenbedienung", Availability: true,
			LocationID: "loc-1", DepartmentID: "dept-1", TeamID: "team-1",
			Role: "operator", ContractType: "full_time", PerformanceRating: 5, CostPerHour: 28.5},
		{ID: "emp-2", Name: "Ben Hoffmann", EmployeeNumber: "P-1002", Email: "ben.hoffmann@example.com",
			Skills: "Grundqualifikation", Availability: true,
			LocationID: "loc-1", DepartmentID: "dept-1", TeamID: "team-1",
			Role: "operator", ContractType: "part_time", PerformanceRating: 3, CostPerHour: 24.0},
		{ID: "emp-3", Name: "Clara Vogel", EmployeeNumber: "P-1003", Email: "clara.vogel@example.com",
			Skills: "Grundqualifikation|Maschinenbedienung|Nachtwache", Availability: true,
			LocationID: "loc-1", DepartmentID: "dept-1", TeamID: "team-2",
			Role: "lead", ContractType: "full_time", PerformanceRating: 4, CostPerHour: 32.0},
		{ID: "emp-4", Name: "David Krüger", EmployeeNumber: "P-1004", Email: "david.krueger@example.com",
			Skills: "Grundqualifikation|Nachtwache", Availability: false,
			LocationID: "loc-2", DepartmentID: "dept-3", TeamID: "team-3",
			Role: "operator", ContractType: "full_time", PerformanceRating: 4, CostPerHour: 26.0},
	}

	if err := db.Create(&locations).Error; err != nil {
		return err
	}
	if err := db.Create(&departments).Error; err != nil {
		return err
	}
	if err := db.Create(&teams).Error; err != nil {
		return err
	}
	if err := db.Create(&equipment).Error; err != nil {
		return err
	}
	if err := db.Create(&shiftTypes).Error; err != nil {
		return err
	}
	if err := db.Create(&employees).Error; err != nil {
		return err
	}
	return nil
}
