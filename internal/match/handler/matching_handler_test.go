package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bitfantasy/ecomatch/internal/match/testutil"
)

func matchingPayload(id, groupID string, rank int) map[string]interface{} {
	return map[string]interface{}{
		"id":            id,
		"groupId":       groupID,
		"demandId":      "d1",
		"partnerId":     "p1",
		"rank":          rank,
		"techScore":     32,
		"industryScore": 18,
		"scaleScore":    15,
		"scheduleScore": 12,
		"totalScore":    77,
		"reason":        "行业经验匹配，排期可用",
		"status":        "pending",
	}
}

func TestMatchingCreateAndGroupFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	for _, m := range []struct {
		id   string
		rank int
	}{{"m2", 2}, {"m1", 1}, {"m3", 3}} {
		w := testutil.DoRequest(router, "POST", "/api/matchings", matchingPayload(m.id, "g1", m.rank))
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
	}
	testutil.DoRequest(router, "POST", "/api/matchings", matchingPayload("m9", "g2", 1))

	w := testutil.DoRequest(router, "GET", "/api/matchings?group_id=g1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	items := testutil.ParseArray(t, w)
	if len(items) != 3 {
		t.Fatalf("Expected 3 matchings in g1, got %d", len(items))
	}
	// 组内按rank升序
	for i, want := range []string{"m1", "m2", "m3"} {
		if items[i]["id"] != want {
			t.Errorf("Expected rank order m1,m2,m3 at %d, got %v", i, items[i]["id"])
		}
	}

	all := testutil.ParseArray(t, testutil.DoRequest(router, "GET", "/api/matchings", nil))
	if len(all) != 4 {
		t.Fatalf("Expected 4 matchings total, got %d", len(all))
	}
	// 全量列表按插入序，与rank无关
	for i, want := range []string{"m2", "m1", "m3", "m9"} {
		if all[i]["id"] != want {
			t.Errorf("Expected insertion order at %d to be %s, got %v", i, want, all[i]["id"])
		}
	}
}

func TestMatchingGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	testutil.DoRequest(router, "POST", "/api/matchings", matchingPayload("m1", "g1", 1))

	w := testutil.DoRequest(router, "GET", "/api/matchings/m1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	got := testutil.ParseObject(t, w)
	if got["id"] != "m1" || got["groupId"] != "g1" || got["totalScore"] != float64(77) {
		t.Errorf("Unexpected matching: %v", got)
	}

	w2 := testutil.DoRequest(router, "GET", "/api/matchings/nope", nil)
	if w2.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w2.Code)
	}
	if resp := testutil.ParseObject(t, w2); resp["detail"] != "Matching not found" {
		t.Errorf("Expected detail 'Matching not found', got %v", resp["detail"])
	}
}

func TestDemandMatchingsList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	testutil.DoRequest(router, "POST", "/api/matchings", matchingPayload("m2", "g1", 2))
	testutil.DoRequest(router, "POST", "/api/matchings", matchingPayload("m1", "g1", 1))
	other := matchingPayload("m9", "g2", 1)
	other["demandId"] = "d2"
	testutil.DoRequest(router, "POST", "/api/matchings", other)

	items := testutil.ParseArray(t, testutil.DoRequest(router, "GET", "/api/demands/d1/matchings", nil))
	if len(items) != 2 {
		t.Fatalf("Expected 2 matchings for d1, got %d", len(items))
	}
	// 批次内按rank升序
	if items[0]["id"] != "m1" || items[1]["id"] != "m2" {
		t.Errorf("Expected rank order m1,m2, got %v,%v", items[0]["id"], items[1]["id"])
	}

	empty := testutil.ParseArray(t, testutil.DoRequest(router, "GET", "/api/demands/nope/matchings", nil))
	if len(empty) != 0 {
		t.Errorf("Expected empty list for unknown demand, got %v", empty)
	}
}

func TestMatchingCreateDefaultsMatchDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	w := testutil.DoRequest(router, "POST", "/api/matchings", matchingPayload("m1", "g1", 1))
	created := testutil.ParseObject(t, w)
	if created["matchDate"] == nil || created["matchDate"] == "" {
		t.Error("Expected server-filled matchDate")
	}
	// 评审四元组未设置时序列化为显式null
	if !strings.Contains(w.Body.String(), `"productScore":null`) {
		t.Errorf("Expected explicit null productScore, body: %s", w.Body.String())
	}
}

func TestMatchingReviewQuadrupleOnUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	testutil.DoRequest(router, "POST", "/api/matchings", matchingPayload("m1", "g1", 1))

	// 半填充的四元组拒绝：有分数但缺评审人与时间
	w := testutil.DoRequest(router, "PUT", "/api/matchings/m1", map[string]interface{}{
		"status":       "product_reviewed",
		"productScore": 8,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422 for partial quadruple, got %d: %s", w.Code, w.Body.String())
	}

	// 完整四元组接受，comment可省略
	w2 := testutil.DoRequest(router, "PUT", "/api/matchings/m1", map[string]interface{}{
		"status":           "product_reviewed",
		"productScore":     8,
		"productScoreBy":   "王强",
		"productScoreTime": "2026-08-01T10:00:00.000000Z",
	})
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected 200 for full quadruple, got %d: %s", w2.Code, w2.Body.String())
	}
	updated := testutil.ParseObject(t, w2)
	if updated["productScore"] != float64(8) || updated["productScoreBy"] != "王强" {
		t.Errorf("Quadruple not applied: %v", updated)
	}
	if updated["status"] != "product_reviewed" {
		t.Errorf("Expected status product_reviewed, got %v", updated["status"])
	}

	// 整体清空：不带四元组字段的更新把两个阶段都清掉
	w3 := testutil.DoRequest(router, "PUT", "/api/matchings/m1", map[string]interface{}{
		"status": "pending",
	})
	if w3.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w3.Code, w3.Body.String())
	}
	cleared := testutil.ParseObject(t, w3)
	if cleared["productScore"] != nil || cleared["productScoreBy"] != nil {
		t.Errorf("Expected cleared quadruple, got %v", cleared)
	}

	// 只给comment没有score同样是半填充
	w4 := testutil.DoRequest(router, "PUT", "/api/matchings/m1", map[string]interface{}{
		"status":          "pending",
		"presalesComment": "需要复核",
	})
	if w4.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422 for comment-only quadruple, got %d: %s", w4.Code, w4.Body.String())
	}
}

func TestMatchingUpdateImmutableFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	testutil.DoRequest(router, "POST", "/api/matchings", matchingPayload("m1", "g1", 1))

	w := testutil.DoRequest(router, "PUT", "/api/matchings/m1", map[string]interface{}{
		"status":          "rejected",
		"cooperationMode": "分包",
		"reason":          "客户倾向本地团队",
		"risks":           "交付周期偏紧",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	updated := testutil.ParseObject(t, w)
	// 打分与归属字段创建后不可变
	if updated["techScore"] != float64(32) || updated["totalScore"] != float64(77) {
		t.Errorf("Scores must be immutable, got %v", updated)
	}
	if updated["groupId"] != "g1" || updated["demandId"] != "d1" || updated["partnerId"] != "p1" {
		t.Errorf("Identity fields must be immutable, got %v", updated)
	}
	if updated["cooperationMode"] != "分包" || updated["risks"] != "交付周期偏紧" {
		t.Errorf("Mutable text fields not applied: %v", updated)
	}
}

func TestMatchingUpdateNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	w := testutil.DoRequest(router, "PUT", "/api/matchings/nope", map[string]interface{}{
		"status": "pending",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseObject(t, w)
	if resp["detail"] != "Matching not found" {
		t.Errorf("Expected detail 'Matching not found', got %v", resp["detail"])
	}
}

func TestMatchingDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	testutil.SeedMatching(t, db, "m1", "d1", "p1", "g1", 1)

	w := testutil.DoRequest(router, "DELETE", "/api/matchings/m1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	items := testutil.ParseArray(t, testutil.DoRequest(router, "GET", "/api/matchings", nil))
	if len(items) != 0 {
		t.Errorf("Expected empty list after delete, got %v", items)
	}

	w2 := testutil.DoRequest(router, "DELETE", "/api/matchings/m1", nil)
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected idempotent delete to return 200, got %d", w2.Code)
	}
}

func TestMatchingExport(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter(db)

	testutil.SeedDemand(t, db, "d1", "宏达制造", "供应链协同平台")
	testutil.SeedPartner(t, db, "p1", "云程科技")
	testutil.SeedMatching(t, db, "m1", "d1", "p1", "g1", 1)

	w := testutil.DoRequest(router, "GET", "/api/matchings/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Expected xlsx content type, got %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "matchings-") {
		t.Errorf("Expected dated attachment filename, got %s", cd)
	}
	if w.Body.Len() == 0 {
		t.Error("Expected non-empty xlsx body")
	}
}
