package employee

import (
	"github.com/talentwatch/retention-backend-go/internal/pkg/validator"
)

// EmployeeResponse carries one employee row with raw foreign keys. Analytics
// drill-down rows (with resolved names) live in the analytics domain.
type EmployeeResponse struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	IDNumber string  `json:"id_number"`
	City     *string `json:"city,omitempty"`

	ProjectID          *string `json:"project_id,omitempty"`
	BranchID           *string `json:"branch_id,omitempty"`
	RoleID             *string `json:"role_id,omitempty"`
	CompanyID          *string `json:"company_id,omitempty"`
	SeniorityID        *string `json:"seniority_id,omitempty"`
	LeavingReasonID    *string `json:"leaving_reason_id,omitempty"`
	PerformanceLevelID *string `json:"performance_level_id,omitempty"`

	Cost                        *float64 `json:"cost,omitempty"`
	RealMarketSalary            *float64 `json:"real_market_salary,omitempty"`
	ProfessionalExperienceYears float64  `json:"professional_experience_years"`
	StartDate                   string   `json:"start_date"`
	BirthDate                   *string  `json:"birth_date,omitempty"`

	UnitCriticality      *int `json:"unit_criticality,omitempty"`
	AttritionRisk        *int `json:"attrition_risk,omitempty"`
	CompanyAttritionRisk *int `json:"company_attrition_risk,omitempty"`

	IsOurSourcing   bool    `json:"is_our_sourcing"`
	IsRevolvingDoor bool    `json:"is_revolving_door"`
	IsLeft          bool    `json:"is_left"`
	LeftDate        *string `json:"left_date,omitempty"`

	AttritionRiskReason       *string `json:"attrition_risk_reason,omitempty"`
	RetentionPlan             *string `json:"retention_plan,omitempty"`
	CompanyRetentionPlan      *string `json:"company_retention_plan,omitempty"`
	CommanderSummaryAndStatus *string `json:"commander_summary_and_status,omitempty"`
	ReplacementNeeded         string  `json:"replacement_needed,omitempty"`
}

type CreateEmployeeRequest struct {
	FullName string  `json:"full_name"`
	IDNumber string  `json:"id_number"`
	City     *string `json:"city,omitempty"`

	ProjectID          *string `json:"project_id,omitempty"`
	BranchID           *string `json:"branch_id,omitempty"`
	RoleID             *string `json:"role_id,omitempty"`
	CompanyID          *string `json:"company_id,omitempty"`
	SeniorityID        *string `json:"seniority_id,omitempty"`
	PerformanceLevelID *string `json:"performance_level_id,omitempty"`

	Cost                        *float64 `json:"cost,omitempty"`
	RealMarketSalary            *float64 `json:"real_market_salary,omitempty"`
	ProfessionalExperienceYears float64  `json:"professional_experience_years"`
	StartDate                   string   `json:"start_date"`
	BirthDate                   *string  `json:"birth_date,omitempty"`

	UnitCriticality      *int `json:"unit_criticality,omitempty"`
	AttritionRisk        *int `json:"attrition_risk,omitempty"`
	CompanyAttritionRisk *int `json:"company_attrition_risk,omitempty"`

	IsOurSourcing   bool `json:"is_our_sourcing"`
	IsRevolvingDoor bool `json:"is_revolving_door"`

	AttritionRiskReason       *string `json:"attrition_risk_reason,omitempty"`
	RetentionPlan             *string `json:"retention_plan,omitempty"`
	CompanyRetentionPlan      *string `json:"company_retention_plan,omitempty"`
	CommanderSummaryAndStatus *string `json:"commander_summary_and_status,omitempty"`
	ReplacementNeeded         *string `json:"replacement_needed,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if validator.IsEmpty(r.IDNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "id_number",
			Message: "id_number is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birth_date",
				Message: "birth_date must be in YYYY-MM-DD format",
			})
		}
	}

	errs = append(errs, validateScore("unit_criticality", r.UnitCriticality)...)
	errs = append(errs, validateScore("attrition_risk", r.AttritionRisk)...)
	errs = append(errs, validateScore("company_attrition_risk", r.CompanyAttritionRisk)...)

	if r.ReplacementNeeded != nil && !validator.IsInSlice(*r.ReplacementNeeded, []string{
		string(ReplacementYes), string(ReplacementNo), string(ReplacementUndecided),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "replacement_needed",
			Message: "replacement_needed must be yes, no or undecided",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is a partial update; nil fields are left untouched.
type UpdateEmployeeRequest struct {
	ID       string  `json:"-"` // from URL
	FullName *string `json:"full_name,omitempty"`
	IDNumber *string `json:"id_number,omitempty"`
	City     *string `json:"city,omitempty"`

	ProjectID          *string `json:"project_id,omitempty"`
	BranchID           *string `json:"branch_id,omitempty"`
	RoleID             *string `json:"role_id,omitempty"`
	CompanyID          *string `json:"company_id,omitempty"`
	SeniorityID        *string `json:"seniority_id,omitempty"`
	PerformanceLevelID *string `json:"performance_level_id,omitempty"`

	Cost                        *float64 `json:"cost,omitempty"`
	RealMarketSalary            *float64 `json:"real_market_salary,omitempty"`
	ProfessionalExperienceYears *float64 `json:"professional_experience_years,omitempty"`
	StartDate                   *string  `json:"start_date,omitempty"`
	BirthDate                   *string  `json:"birth_date,omitempty"`

	UnitCriticality      *int `json:"unit_criticality,omitempty"`
	AttritionRisk        *int `json:"attrition_risk,omitempty"`
	CompanyAttritionRisk *int `json:"company_attrition_risk,omitempty"`

	IsOurSourcing   *bool `json:"is_our_sourcing,omitempty"`
	IsRevolvingDoor *bool `json:"is_revolving_door,omitempty"`

	AttritionRiskReason       *string `json:"attrition_risk_reason,omitempty"`
	RetentionPlan             *string `json:"retention_plan,omitempty"`
	CompanyRetentionPlan      *string `json:"company_retention_plan,omitempty"`
	CommanderSummaryAndStatus *string `json:"commander_summary_and_status,omitempty"`
	ReplacementNeeded         *string `json:"replacement_needed,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birth_date",
				Message: "birth_date must be in YYYY-MM-DD format",
			})
		}
	}

	errs = append(errs, validateScore("unit_criticality", r.UnitCriticality)...)
	errs = append(errs, validateScore("attrition_risk", r.AttritionRisk)...)
	errs = append(errs, validateScore("company_attrition_risk", r.CompanyAttritionRisk)...)

	if r.ReplacementNeeded != nil && !validator.IsInSlice(*r.ReplacementNeeded, []string{
		string(ReplacementYes), string(ReplacementNo), string(ReplacementUndecided),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "replacement_needed",
			Message: "replacement_needed must be yes, no or undecided",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MarkAsLeftRequest flags an employee as left without deleting the record.
type MarkAsLeftRequest struct {
	ID              string  `json:"-"` // from URL
	LeftDate        string  `json:"left_date"`
	LeavingReasonID *string `json:"leaving_reason_id,omitempty"`
}

func (r *MarkAsLeftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.LeftDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "left_date",
			Message: "left_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.LeftDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "left_date",
			Message: "left_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateScore(field string, score *int) validator.ValidationErrors {
	if score == nil {
		return nil
	}
	if *score < ScoreMin || *score > ScoreMax {
		return validator.ValidationErrors{{
			Field:   field,
			Message: "must be between 0 and 5",
		}}
	}
	return nil
}
