package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"fintrack/internal/insights"
	"fintrack/internal/services"
)

type mockInsightService struct {
	getSpendingReportFn func(userID string) (*services.SpendingReport, error)
}

func (m *mockInsightService) GetSpendingReport(userID string) (*services.SpendingReport, error) {
	if m.getSpendingReportFn != nil {
		return m.getSpendingReportFn(userID)
	}
	return &services.SpendingReport{}, nil
}

func setupInsightRouter(handler *InsightHandler) *gin.Engine {
	r := gin.New()
	r.GET("/insights", injectUserID(testUserID), handler.GetInsights)
	return r
}

func TestInsightHandler_Get(t *testing.T) {
	t.Run("returns 200 with report", func(t *testing.T) {
		overspend := insights.CategoryInsight{
			Category:    "Food",
			Limit:       200,
			Spent:       250,
			Utilization: 100,
			Status:      insights.StatusOverspent,
			Difference:  50,
		}
		svc := &mockInsightService{
			getSpendingReportFn: func(_ string) (*services.SpendingReport, error) {
				return &services.SpendingReport{
					Insights:         []insights.CategoryInsight{overspend},
					LargestOverspend: &overspend,
				}, nil
			},
		}
		handler := NewInsightHandler(svc)
		r := setupInsightRouter(handler)

		rec := doRequest(r, "GET", "/insights", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		list := result["insights"].([]interface{})
		if len(list) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(list))
		}
		entry := list[0].(map[string]interface{})
		if entry["status"] != "Overspent" {
			t.Errorf("expected status Overspent, got %v", entry["status"])
		}
		worst := result["largest_overspend"].(map[string]interface{})
		if worst["category"] != "Food" {
			t.Errorf("expected largest overspend Food, got %v", worst["category"])
		}
	})

	t.Run("omits largest overspend when nothing overspent", func(t *testing.T) {
		svc := &mockInsightService{
			getSpendingReportFn: func(_ string) (*services.SpendingReport, error) {
				return &services.SpendingReport{Insights: []insights.CategoryInsight{}}, nil
			},
		}
		handler := NewInsightHandler(svc)
		r := setupInsightRouter(handler)

		rec := doRequest(r, "GET", "/insights", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if _, present := result["largest_overspend"]; present {
			t.Error("largest_overspend should be omitted when nil")
		}
	})

	t.Run("returns 401 without auth context", func(t *testing.T) {
		handler := NewInsightHandler(&mockInsightService{})
		r := gin.New()
		r.GET("/insights", handler.GetInsights)

		rec := doRequest(r, "GET", "/insights", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
