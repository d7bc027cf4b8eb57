package booking

import "github.com/dtcdev/invaccess/internal/domain"

// TimeSlots are the bookable half-hour slots from 08:00 to 17:00.
// The 12:00 and 12:30 slots are excluded for lunch.
var TimeSlots = []string{
	"08:00", "08:30",
	"09:00", "09:30",
	"10:00", "10:30",
	"11:00", "11:30",
	"13:00", "13:30",
	"14:00", "14:30",
	"15:00", "15:30",
	"16:00", "16:30",
	"17:00",
}

// PurposeOption describes one choice on the purpose step.
type PurposeOption struct {
	Value       domain.Purpose `json:"value"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
}

var Purposes = []PurposeOption{
	{Value: domain.PurposeRetrieval, Label: "Equipment Retrieval", Description: "Borrow items for temporary use"},
	{Value: domain.PurposeReturn, Label: "Equipment Return", Description: "Return previously borrowed items"},
	{Value: domain.PurposeInspection, Label: "Equipment Inspection", Description: "Inspect items before borrowing"},
	{Value: domain.PurposeMaintenance, Label: "Maintenance Check", Description: "Report or check item condition"},
}

var Departments = []string{
	"IT Department",
	"Marketing",
	"Human Resources",
	"Finance",
	"Operations",
	"Research & Development",
	"Quality Assurance",
	"Customer Service",
	"Administration",
}

// Categories filter the item-selection catalog. "all" disables the
// filter.
var Categories = []string{"all", "Electronics", "Equipment", "Furniture"}
