package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"riderservice/entity"
	"riderservice/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func auditTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Rider{}, &entity.Log{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestAuditMiddleware_PersistsEntryBeforeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := auditTestDB(t)
	logs := repository.NewLogRepository(db)

	var rowsAtHandler int64
	r := gin.New()
	r.Use(AuditMiddleware(logs))
	r.GET("/v1/riders", func(c *gin.Context) {
		db.Model(&entity.Log{}).Count(&rowsAtHandler)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/riders", nil))

	if rowsAtHandler != 1 {
		t.Errorf("expected the audit row persisted before the handler ran, saw %d", rowsAtHandler)
	}
	rows, err := logs.Recent(1)
	if err != nil || len(rows) != 1 {
		t.Fatalf("reading audit rows: %v (%d rows)", err, len(rows))
	}
	if rows[0].Level != "INFO" || !strings.Contains(rows[0].Message, "GET") ||
		!strings.Contains(rows[0].Message, "/v1/riders") {
		t.Errorf("unexpected audit entry: %+v", rows[0])
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header on the response")
	}
}

func TestAuditMiddleware_WriteFailureNeverAbortsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := auditTestDB(t)
	logs := repository.NewLogRepository(db)

	// sabotage the audit table so every append fails
	if err := db.Migrator().DropTable(&entity.Log{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	r := gin.New()
	r.Use(AuditMiddleware(logs))
	r.GET("/v1/riders", func(c *gin.Context) { c.JSON(http.StatusOK, []any{}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/riders", nil))

	if w.Code != http.StatusOK {
		t.Errorf("audit failure must not fail the request, got %d", w.Code)
	}
}
