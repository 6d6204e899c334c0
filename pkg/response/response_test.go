package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "relationship-os/pkg/errors"
	"relationship-os/pkg/response"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestOK(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.OK(c, gin.H{"hello": "world"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("expected error_code 0, got %d", resp.ErrorCode)
	}
	if resp.Message != response.MessageSuccess {
		t.Errorf("expected message %q, got %q", response.MessageSuccess, resp.Message)
	}
}

func TestError_HTTPError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.Error(c, pkgErrors.NewHTTPError(404, "person not found"))
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "person not found" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestError_PlainError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.Error(c, pkgErrors.NewHTTPError(400, "invalid payload"))
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestInternalError_HidesDetails(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.InternalError(c, pkgErrors.ErrInternalServerError)
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != response.DefaultErrorMessage {
		t.Errorf("internal error must not leak details, got %q", resp.Message)
	}
}
