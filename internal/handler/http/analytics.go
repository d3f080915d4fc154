package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/talentwatch/retention-backend-go/internal/domain/analytics"
	"github.com/talentwatch/retention-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetTrends(w http.ResponseWriter, r *http.Request)
	DrillDown(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

// splitList parses a comma-separated query value into a slice, dropping empty
// entries so "?project_ids=" means no filter rather than a filter on "".
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func splitBoolList(raw string) []bool {
	values := splitList(raw)
	if values == nil {
		return nil
	}
	out := make([]bool, 0, len(values))
	for _, v := range values {
		out = append(out, v == "true")
	}
	return out
}

func criteriaFromQuery(r *http.Request) analytics.Criteria {
	q := r.URL.Query()
	return analytics.Criteria{
		ProjectIDs:     splitList(q.Get("project_ids")),
		BranchIDs:      splitList(q.Get("branch_ids")),
		RoleIDs:        splitList(q.Get("role_ids")),
		CompanyIDs:     splitList(q.Get("company_ids")),
		SeniorityIDs:   splitList(q.Get("seniority_ids")),
		Criticalities:  splitList(q.Get("criticalities")),
		AttritionRisks: splitList(q.Get("attrition_risks")),
		OurSourcing:    splitBoolList(q.Get("our_sourcing")),
		RevolvingDoor:  splitBoolList(q.Get("revolving_door")),
		Search:         q.Get("search"),
		StartDateFrom:  q.Get("start_date_from"),
		StartDateTo:    q.Get("start_date_to"),
	}
}

// GetDashboard implements AnalyticsHandler
func (h *analyticsHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.GetDashboard(r.Context(), criteriaFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTrends implements AnalyticsHandler
func (h *analyticsHandlerImpl) GetTrends(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.GetTrends(r.Context(), criteriaFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DrillDown implements AnalyticsHandler
func (h *analyticsHandlerImpl) DrillDown(w http.ResponseWriter, r *http.Request) {
	var req analytics.DrillDownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.analyticsService.DrillDown(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
