package handler_test

import (
	"net/http"
	"testing"

	"github.com/bitfantasy/ecomatch/internal/match/testutil"
)

func analysisPayload(id, demandID string) map[string]interface{} {
	return map[string]interface{}{
		"id":            id,
		"demandId":      demandID,
		"clarity":       4,
		"complexity":    "medium",
		"productForm":   "SaaS平台",
		"estimatedDays": 90,
		"analyst":       "李娜",
		"coreFunctions": "订单协同、库存同步",
		"conclusion":    "可行，建议分期交付",
		"status":        "done",
	}
}

func TestAnalysisCreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	w := testutil.DoRequest(router, "POST", "/api/analyses", analysisPayload("a1", "d1"))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	created := testutil.ParseObject(t, w)
	if created["demandId"] != "d1" || created["productForm"] != "SaaS平台" {
		t.Errorf("Unexpected analysis: %v", created)
	}
	// 历史遗留：created_at保持下划线命名
	if created["created_at"] == nil || created["created_at"] == "" {
		t.Error("Expected snake_case created_at on the wire")
	}
	if _, ok := created["createdAt"]; ok {
		t.Error("createdAt must not appear, analysis keeps created_at")
	}

	// 同一需求允许多次分析
	w2 := testutil.DoRequest(router, "POST", "/api/analyses", analysisPayload("a2", "d1"))
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected 200 for second analysis, got %d: %s", w2.Code, w2.Body.String())
	}

	items := testutil.ParseArray(t, testutil.DoRequest(router, "GET", "/api/analyses", nil))
	if len(items) != 2 {
		t.Fatalf("Expected 2 analyses, got %d", len(items))
	}
}

func TestDemandAnalysesList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	testutil.DoRequest(router, "POST", "/api/analyses", analysisPayload("a1", "d1"))
	testutil.DoRequest(router, "POST", "/api/analyses", analysisPayload("a2", "d1"))
	testutil.DoRequest(router, "POST", "/api/analyses", analysisPayload("a3", "d2"))

	items := testutil.ParseArray(t, testutil.DoRequest(router, "GET", "/api/demands/d1/analyses", nil))
	if len(items) != 2 {
		t.Fatalf("Expected 2 analyses for d1, got %d", len(items))
	}
	if items[0]["id"] != "a1" || items[1]["id"] != "a2" {
		t.Errorf("Expected insertion order a1,a2, got %v,%v", items[0]["id"], items[1]["id"])
	}

	empty := testutil.ParseArray(t, testutil.DoRequest(router, "GET", "/api/demands/nope/analyses", nil))
	if len(empty) != 0 {
		t.Errorf("Expected empty list for unknown demand, got %v", empty)
	}
}

func TestAnalysisUpdateKeepsDemandID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	testutil.DoRequest(router, "POST", "/api/analyses", analysisPayload("a1", "d1"))

	payload := analysisPayload("a1", "d9")
	payload["conclusion"] = "复杂度上调，需补充调研"
	payload["complexity"] = "high"
	w := testutil.DoRequest(router, "PUT", "/api/analyses/a1", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	updated := testutil.ParseObject(t, w)
	if updated["complexity"] != "high" {
		t.Errorf("Update not applied: %v", updated)
	}
	// demand_id创建后不可变，请求里的d9被忽略
	if updated["demandId"] != "d1" {
		t.Errorf("demandId must be immutable, got %v", updated["demandId"])
	}
}

func TestAnalysisUpdateNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	w := testutil.DoRequest(router, "PUT", "/api/analyses/nope", analysisPayload("nope", "d1"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseObject(t, w)
	if resp["detail"] != "Not found" {
		t.Errorf("Expected detail 'Not found', got %v", resp["detail"])
	}
}

func TestAnalysisCreateDuplicateID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	testutil.DoRequest(router, "POST", "/api/analyses", analysisPayload("a1", "d1"))
	w := testutil.DoRequest(router, "POST", "/api/analyses", analysisPayload("a1", "d2"))
	if w.Code != http.StatusConflict {
		t.Fatalf("Expected 409 on duplicate id, got %d: %s", w.Code, w.Body.String())
	}
}
