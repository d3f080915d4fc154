package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID       string
	FullName string
	IDNumber string
	City     *string

	// Lookup table foreign keys. All nullable; a nil id resolves to the
	// "undefined" sentinel in analytics.
	ProjectID          *string
	BranchID           *string
	RoleID             *string
	CompanyID          *string
	SeniorityID        *string
	LeavingReasonID    *string
	PerformanceLevelID *string

	Cost                        *decimal.Decimal // monthly all-in employer cost
	RealMarketSalary            *decimal.Decimal
	ProfessionalExperienceYears float64
	StartDate                   time.Time
	BirthDate                   *time.Time

	// Risk scores, each 0-5 when present.
	UnitCriticality      *int
	AttritionRisk        *int
	CompanyAttritionRisk *int

	IsOurSourcing   bool
	IsRevolvingDoor bool

	// Left employees are flagged, never deleted. Active dashboards exclude
	// them; the leaving-reason chart runs over them exclusively.
	IsLeft   bool
	LeftDate *time.Time

	AttritionRiskReason       *string
	RetentionPlan             *string
	CompanyRetentionPlan      *string
	CommanderSummaryAndStatus *string
	ReplacementNeeded         ReplacementNeeded

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReplacementNeeded string

const (
	ReplacementYes       ReplacementNeeded = "yes"
	ReplacementNo        ReplacementNeeded = "no"
	ReplacementUndecided ReplacementNeeded = "undecided"
)

// ScoreMin and ScoreMax bound the criticality and attrition risk ratings.
const (
	ScoreMin = 0
	ScoreMax = 5
)
