package handler_test

import (
	"net/http"
	"testing"

	"github.com/bitfantasy/ecomatch/internal/match/testutil"
)

func partnerPayload(id, companyName string) map[string]interface{} {
	return map[string]interface{}{
		"id":                id,
		"companyName":       companyName,
		"companySize":       "50-100人",
		"industries":        []string{"manufacturing", "retail"},
		"skills":            []string{"Java", "Vue"},
		"projectTypes":      []string{"web"},
		"historyCount":      6,
		"qualityScore":      4,
		"availableStaff":    12,
		"schedule":          "10月起可投入",
		"cooperationStatus": "active",
		"contact":           "陈明",
		"phone":             "13800000000",
		"notes":             "擅长制造业数字化",
	}
}

func TestPartnerCreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	w := testutil.DoRequest(router, "POST", "/api/partners", partnerPayload("p1", "云程科技"))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	created := testutil.ParseObject(t, w)
	if created["companyName"] != "云程科技" || created["qualityScore"] != float64(4) {
		t.Errorf("Unexpected partner: %v", created)
	}
	// 内部时间戳不外露
	if _, ok := created["createdAt"]; ok {
		t.Error("Partner createdAt must not leak to the wire")
	}
	if _, ok := created["updatedAt"]; ok {
		t.Error("Partner updatedAt must not leak to the wire")
	}

	testutil.DoRequest(router, "POST", "/api/partners", partnerPayload("p2", "华启软件"))

	items := testutil.ParseArray(t, testutil.DoRequest(router, "GET", "/api/partners", nil))
	if len(items) != 2 {
		t.Fatalf("Expected 2 partners, got %d", len(items))
	}
	// 插入序
	if items[0]["id"] != "p1" || items[1]["id"] != "p2" {
		t.Errorf("Expected insertion order p1,p2, got %v %v", items[0]["id"], items[1]["id"])
	}
	skills := items[0]["skills"].([]interface{})
	if len(skills) != 2 || skills[0] != "Java" {
		t.Errorf("Expected skills [Java Vue], got %v", items[0]["skills"])
	}
}

func TestPartnerGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	testutil.DoRequest(router, "POST", "/api/partners", partnerPayload("p1", "云程科技"))

	w := testutil.DoRequest(router, "GET", "/api/partners/p1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	got := testutil.ParseObject(t, w)
	if got["id"] != "p1" || got["companyName"] != "云程科技" {
		t.Errorf("Unexpected partner: %v", got)
	}

	w2 := testutil.DoRequest(router, "GET", "/api/partners/nope", nil)
	if w2.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w2.Code)
	}
	if resp := testutil.ParseObject(t, w2); resp["detail"] != "Partner not found" {
		t.Errorf("Expected detail 'Partner not found', got %v", resp["detail"])
	}
}

func TestPartnerCreateDuplicateID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	testutil.DoRequest(router, "POST", "/api/partners", partnerPayload("p1", "云程科技"))
	w := testutil.DoRequest(router, "POST", "/api/partners", partnerPayload("p1", "另一家"))
	if w.Code != http.StatusConflict {
		t.Fatalf("Expected 409 on duplicate id, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPartnerUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	testutil.DoRequest(router, "POST", "/api/partners", partnerPayload("p1", "云程科技"))

	payload := partnerPayload("p1", "云程科技")
	payload["availableStaff"] = 3
	payload["cooperationStatus"] = "paused"
	w := testutil.DoRequest(router, "PUT", "/api/partners/p1", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	updated := testutil.ParseObject(t, w)
	if updated["availableStaff"] != float64(3) || updated["cooperationStatus"] != "paused" {
		t.Errorf("Update not applied: %v", updated)
	}
}

func TestPartnerUpdateNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	w := testutil.DoRequest(router, "PUT", "/api/partners/nope", partnerPayload("nope", "幽灵公司"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseObject(t, w)
	if resp["detail"] != "Partner not found" {
		t.Errorf("Expected detail 'Partner not found', got %v", resp["detail"])
	}
}
