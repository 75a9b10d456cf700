package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dto "todo-api.com/todo-api/internal/data_models"
	model "todo-api.com/todo-api/internal/models"
	"todo-api.com/todo-api/internal/ratelimit"
	repository "todo-api.com/todo-api/internal/repositories"
	"todo-api.com/todo-api/internal/services"
)

func setupAPI(t *testing.T) (*echo.Echo, *repository.ToDoRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.ToDoItem{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	repo := repository.NewToDoRepository(db)
	service := services.NewToDoService(repo)

	e := echo.New()
	Register(e, NewHandler(repo, service), ratelimit.NewMemoryLimiter(10000, time.Minute))

	return e, repo
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAddAndGetToDoItem(t *testing.T) {
	e, _ := setupAPI(t)

	expiry := time.Now().UTC().Add(72 * time.Hour).Format(time.RFC3339)
	rec := doJSON(e, http.MethodPost, "/api/todoitems",
		fmt.Sprintf(`{"title":"Buy milk","expiry":%q}`, expiry))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created dto.ToDoItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected an assigned id")
	}
	if created.CompletionPercentage != 0 || created.IsDone || created.IsExpired {
		t.Errorf("unexpected fresh item state: %+v", created)
	}

	location := rec.Header().Get(echo.HeaderLocation)
	want := fmt.Sprintf("/api/todoitems/%d", created.ID)
	if location != want {
		t.Errorf("expected location %q, got %q", want, location)
	}

	rec = doJSON(e, http.MethodGet, location, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var fetched dto.ToDoItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if fetched.Title != "Buy milk" {
		t.Errorf("expected title %q, got %q", "Buy milk", fetched.Title)
	}
}

func TestAddToDoItem_RejectsInvalidTitle(t *testing.T) {
	e, _ := setupAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/todoitems", `{"title":"ab"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for short title, got %d", rec.Code)
	}
}

func TestGetToDoItem_NotFound(t *testing.T) {
	e, _ := setupAPI(t)

	rec := doJSON(e, http.MethodGet, "/api/todoitems/9999", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestGetAllToDoItems_Defaults(t *testing.T) {
	e, repo := setupAPI(t)

	for i := 0; i < 12; i++ {
		repo.Add(model.NewToDoItem(fmt.Sprintf("task %02d", i), nil, nil))
	}
	if _, err := repo.Commit(context.Background()); err != nil {
		t.Fatalf("failed to seed items: %v", err)
	}

	rec := doJSON(e, http.MethodGet, "/api/todoitems", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var page dto.PaginatedToDoItemsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if page.PageSize != 10 || len(page.Data) != 10 {
		t.Errorf("expected default page size 10, got size %d len %d", page.PageSize, len(page.Data))
	}
	if page.TotalCount != 12 || page.TotalPages != 2 {
		t.Errorf("expected total 12 over 2 pages, got %d over %d", page.TotalCount, page.TotalPages)
	}
}

func TestGetAllToDoItems_ExpiredFilter(t *testing.T) {
	e, repo := setupAPI(t)

	past := time.Now().UTC().Add(-24 * time.Hour)
	expired := model.NewToDoItem("already expired", nil, &past)
	repo.Add(expired)
	repo.Add(model.NewToDoItem("still fresh", nil, nil))
	if _, err := repo.Commit(context.Background()); err != nil {
		t.Fatalf("failed to seed items: %v", err)
	}

	rec := doJSON(e, http.MethodGet, "/api/todoitems?expired=false", "")
	var page dto.PaginatedToDoItemsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if page.TotalCount != 1 {
		t.Errorf("expected expired item filtered out, got %d items", page.TotalCount)
	}

	rec = doJSON(e, http.MethodGet, "/api/todoitems?expired=true", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if page.TotalCount != 2 {
		t.Errorf("expected both items with expired=true, got %d", page.TotalCount)
	}
}

func TestGetIncomingToDoItems(t *testing.T) {
	e, repo := setupAPI(t)

	year, month, day := time.Now().Local().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	tonight := today.Add(23 * time.Hour)
	nextWeek := today.AddDate(0, 0, 7)

	repo.Add(model.NewToDoItem("due tonight", nil, &tonight))
	repo.Add(model.NewToDoItem("due next week", nil, &nextWeek))
	repo.Add(model.NewToDoItem("no deadline", nil, nil))
	if _, err := repo.Commit(context.Background()); err != nil {
		t.Fatalf("failed to seed items: %v", err)
	}

	rec := doJSON(e, http.MethodGet, "/api/todoitems/incoming?start_date="+today.Format("2006-01-02"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var items []dto.ToDoItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items) != 1 || items[0].Title != "due tonight" {
		t.Errorf("expected only today's item, got %+v", items)
	}

	rec = doJSON(e, http.MethodGet, "/api/todoitems/incoming", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without start date, got %d", rec.Code)
	}
}

func TestUpdateToDoItem(t *testing.T) {
	e, repo := setupAPI(t)

	item := model.NewToDoItem("before update", nil, nil)
	repo.Add(item)
	if _, err := repo.Commit(context.Background()); err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}

	body := fmt.Sprintf(`{"id":%d,"title":"after update","completion_percentage":60}`, item.ID)
	rec := doJSON(e, http.MethodPut, "/api/todoitems", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated dto.ToDoItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if updated.Title != "after update" || updated.CompletionPercentage != 60 {
		t.Errorf("unexpected updated item: %+v", updated)
	}

	rec = doJSON(e, http.MethodPut, "/api/todoitems", `{"id":9999,"title":"missing item"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing item, got %d", rec.Code)
	}
}

func TestMarkToDoItemAsDone(t *testing.T) {
	e, repo := setupAPI(t)

	item := model.NewToDoItem("nearly there", nil, nil)
	item.CompletionPercentage = 99
	repo.Add(item)
	if _, err := repo.Commit(context.Background()); err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}

	rec := doJSON(e, http.MethodPatch, fmt.Sprintf("/api/todoitems/%d/done", item.ID), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, fmt.Sprintf("/api/todoitems/%d", item.ID), "")
	var fetched dto.ToDoItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if fetched.CompletionPercentage != 100 || !fetched.IsDone {
		t.Errorf("expected done item, got %+v", fetched)
	}

	rec = doJSON(e, http.MethodPatch, "/api/todoitems/9999/done", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing item, got %d", rec.Code)
	}
}

func TestSetToDoItemCompletionPercentage(t *testing.T) {
	e, repo := setupAPI(t)

	item := model.NewToDoItem("stepwise", nil, nil)
	repo.Add(item)
	if _, err := repo.Commit(context.Background()); err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}

	rec := doJSON(e, http.MethodPatch,
		fmt.Sprintf("/api/todoitems/%d/percentage", item.ID), `{"percentage":75}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPatch,
		fmt.Sprintf("/api/todoitems/%d/percentage", item.ID), `{"percentage":101}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for out-of-range percentage, got %d", rec.Code)
	}
}

func TestDeleteToDoItem(t *testing.T) {
	e, repo := setupAPI(t)

	rec := doJSON(e, http.MethodDelete, "/api/todoitems/4242", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", rec.Code)
	}

	item := model.NewToDoItem("short lived", nil, nil)
	repo.Add(item)
	if _, err := repo.Commit(context.Background()); err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}

	target := fmt.Sprintf("/api/todoitems/%d", item.ID)
	rec = doJSON(e, http.MethodDelete, target, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, target, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}
