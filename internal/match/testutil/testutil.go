package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"github.com/bitfantasy/ecomatch/internal/match/handler"
	"github.com/bitfantasy/ecomatch/internal/match/repository"
	"github.com/bitfantasy/ecomatch/internal/match/service"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// SetupTestDB 创建内存sqlite测试库，每个测试独立一份
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:ecomatch_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.Demand{},
		&entity.Analysis{},
		&entity.Partner{},
		&entity.Matching{},
		&entity.Activity{},
	); err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	return db
}

// SetupRouter 创建测试路由，注册全部API路由
func SetupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil)
	h := handler.NewHandlers(services)

	api := r.Group("/api")
	{
		api.GET("/store", h.Store.GetStore)

		api.GET("/demands", h.Demand.ListDemands)
		api.POST("/demands", h.Demand.CreateDemand)
		api.GET("/demands/:id", h.Demand.GetDemand)
		api.PUT("/demands/:id", h.Demand.UpdateDemand)
		api.DELETE("/demands/:id", h.Demand.DeleteDemand)
		api.GET("/demands/:id/analyses", h.Analysis.ListDemandAnalyses)
		api.GET("/demands/:id/matchings", h.Matching.ListDemandMatchings)

		api.GET("/analyses", h.Analysis.ListAnalyses)
		api.POST("/analyses", h.Analysis.CreateAnalysis)
		api.PUT("/analyses/:id", h.Analysis.UpdateAnalysis)

		api.GET("/partners", h.Partner.ListPartners)
		api.POST("/partners", h.Partner.CreatePartner)
		api.GET("/partners/:id", h.Partner.GetPartner)
		api.PUT("/partners/:id", h.Partner.UpdatePartner)

		api.GET("/matchings", h.Matching.ListMatchings)
		api.POST("/matchings", h.Matching.CreateMatching)
		api.GET("/matchings/export", h.Matching.ExportMatchings)
		api.GET("/matchings/:id", h.Matching.GetMatching)
		api.PUT("/matchings/:id", h.Matching.UpdateMatching)
		api.DELETE("/matchings/:id", h.Matching.DeleteMatching)

		api.GET("/activities", h.Activity.ListActivities)
		api.POST("/activities", h.Activity.CreateActivity)
	}

	return r
}

// DoRequest 对测试路由发起一次HTTP请求
func DoRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseObject 解析JSON对象响应
func ParseObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response object: %v (body: %s)", err, w.Body.String())
	}
	return result
}

// ParseArray 解析JSON数组响应
func ParseArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response array: %v (body: %s)", err, w.Body.String())
	}
	return result
}

// SeedDemand 插入一条测试需求
func SeedDemand(t *testing.T, db *gorm.DB, id, customerName, projectName string) *entity.Demand {
	t.Helper()
	now := entity.NowISO()
	demand := &entity.Demand{
		ID:           id,
		CustomerName: customerName,
		ProjectName:  projectName,
		Status:       entity.DemandStatusNew,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(demand).Error; err != nil {
		t.Fatalf("Failed to seed demand: %v", err)
	}
	return demand
}

// SeedPartner 插入一条测试伙伴
func SeedPartner(t *testing.T, db *gorm.DB, id, companyName string) *entity.Partner {
	t.Helper()
	now := entity.NowISO()
	partner := &entity.Partner{
		ID:          id,
		CompanyName: companyName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Create(partner).Error; err != nil {
		t.Fatalf("Failed to seed partner: %v", err)
	}
	return partner
}

// SeedMatching 插入一条测试撮合记录
func SeedMatching(t *testing.T, db *gorm.DB, id, demandID, partnerID, groupID string, rank int) *entity.Matching {
	t.Helper()
	matching := &entity.Matching{
		ID:        id,
		DemandID:  demandID,
		PartnerID: partnerID,
		GroupID:   groupID,
		Rank:      rank,
		Status:    entity.MatchingStatusPending,
		MatchDate: entity.NowISO(),
	}
	if err := db.Create(matching).Error; err != nil {
		t.Fatalf("Failed to seed matching: %v", err)
	}
	return matching
}
