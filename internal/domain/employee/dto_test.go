package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentwatch/retention-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		FullName:  "Avi Cohen",
		IDNumber:  "123456789",
		StartDate: "2023-03-15",
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateEmployeeRequestMissingFields(t *testing.T) {
	req := CreateEmployeeRequest{}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "full_name")
	assert.Contains(t, m, "id_number")
	assert.Contains(t, m, "start_date")
}

func TestCreateEmployeeRequestScoreBounds(t *testing.T) {
	for _, score := range []int{-1, 6} {
		req := validCreateRequest()
		req.UnitCriticality = &score

		err := req.Validate()
		require.Error(t, err, "score %d", score)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "unit_criticality")
	}

	for _, score := range []int{ScoreMin, ScoreMax} {
		req := validCreateRequest()
		req.UnitCriticality = &score
		assert.NoError(t, req.Validate(), "score %d", score)
	}
}

func TestCreateEmployeeRequestReplacementNeeded(t *testing.T) {
	bad := "maybe"
	req := validCreateRequest()
	req.ReplacementNeeded = &bad
	assert.Error(t, req.Validate())

	good := string(ReplacementUndecided)
	req.ReplacementNeeded = &good
	assert.NoError(t, req.Validate())
}

func TestCreateEmployeeRequestBadDate(t *testing.T) {
	req := validCreateRequest()
	req.StartDate = "15/03/2023"
	assert.Error(t, req.Validate())
}

func TestUpdateEmployeeRequestPartial(t *testing.T) {
	// No fields besides the id is a valid no-op update.
	req := UpdateEmployeeRequest{ID: "e1"}
	assert.NoError(t, req.Validate())

	req.ID = ""
	assert.Error(t, req.Validate())
}

func TestUpdateEmployeeRequestEmptyNameRejected(t *testing.T) {
	empty := "  "
	req := UpdateEmployeeRequest{ID: "e1", FullName: &empty}
	assert.Error(t, req.Validate())
}

func TestMarkAsLeftRequestValidate(t *testing.T) {
	req := MarkAsLeftRequest{ID: "e1", LeftDate: "2024-06-30"}
	assert.NoError(t, req.Validate())

	req.LeftDate = "yesterday"
	assert.Error(t, req.Validate())

	req = MarkAsLeftRequest{ID: "e1"}
	assert.Error(t, req.Validate())
}
