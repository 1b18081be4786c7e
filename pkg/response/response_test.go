package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "task-management/pkg/errors"
	"task-management/pkg/response"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	t.Run("OK wraps a task list", func(t *testing.T) {
		c, w := newContext()
		response.OK(c, map[string]any{"tasks": []string{}, "count": 0})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decode(t, w)
		if body["error_code"] != float64(0) || body["message"] != response.MessageSuccess {
			t.Errorf("unexpected envelope: %v", body)
		}
		data, ok := body["data"].(map[string]any)
		if !ok || data["count"] != float64(0) {
			t.Errorf("unexpected data: %v", body["data"])
		}
	})

	t.Run("Created answers 201 with the new task", func(t *testing.T) {
		c, w := newContext()
		response.Created(c, map[string]any{"task": map[string]any{"id": 7}})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		task := decode(t, w)["data"].(map[string]any)["task"].(map[string]any)
		if task["id"] != float64(7) {
			t.Errorf("unexpected task: %v", task)
		}
	})

	t.Run("OK without data omits the field", func(t *testing.T) {
		c, w := newContext()
		response.OK(c, nil)

		if _, ok := decode(t, w)["data"]; ok {
			t.Errorf("expected no data field, got %s", w.Body.String())
		}
	})
}

func TestErrorEnvelope(t *testing.T) {
	unreachable := "An error occurred while connecting to the server. Please ensure the backend server is running at http://localhost:8081/api/tasks"
	upstream := "An error occurred while connecting to the server. Server returned code 500. Error: boom"

	cases := []struct {
		name   string
		err    error
		status int
		code   int
		msg    string
	}{
		{"Task API unreachable", pkgErrors.NewHTTPError(http.StatusServiceUnavailable, unreachable), http.StatusServiceUnavailable, http.StatusServiceUnavailable, unreachable},
		{"Task API server error", pkgErrors.NewHTTPError(http.StatusBadGateway, upstream), http.StatusBadGateway, http.StatusBadGateway, upstream},
		{"Wrapped HTTP error", fmt.Errorf("process request: %w", pkgErrors.NewBadRequestError("invalid task id")), http.StatusBadRequest, http.StatusBadRequest, "invalid task id"},
		{"Rate limited", pkgErrors.ErrTooManyRequests, http.StatusTooManyRequests, http.StatusTooManyRequests, "Too many requests"},
		{"Hidden internal error", pkgErrors.ErrInternalServerError, http.StatusInternalServerError, http.StatusInternalServerError, response.DefaultErrorMessage},
		{"Plain binding error", errors.New("Key: 'createReq.Title' Error:Field validation for 'Title' failed on the 'required' tag"), http.StatusBadRequest, response.ValidationErrorCode, "Key: 'createReq.Title' Error:Field validation for 'Title' failed on the 'required' tag"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := newContext()
			response.Error(c, tc.err, nil)

			if w.Code != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, w.Code)
			}
			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if resp.ErrorCode != tc.code || resp.Message != tc.msg {
				t.Errorf("unexpected envelope: %+v", resp)
			}
		})
	}

	t.Run("Plain error keeps data and defaults it to an object", func(t *testing.T) {
		c, w := newContext()
		response.Error(c, errors.New("invalid status"), map[string]any{"field": "status"})
		data := decode(t, w)["data"].(map[string]any)
		if data["field"] != "status" {
			t.Errorf("unexpected data: %v", data)
		}

		c, w = newContext()
		response.Error(c, errors.New("invalid status"), nil)
		if _, ok := decode(t, w)["data"].(map[string]any); !ok {
			t.Errorf("expected an object for nil data, got %s", w.Body.String())
		}
	})

	t.Run("InternalError never leaks the cause", func(t *testing.T) {
		c, w := newContext()
		response.InternalError(c, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decode(t, w)
		if body["message"] != response.DefaultErrorMessage || body["error_code"] != float64(response.InternalServerErrorCode) {
			t.Errorf("unexpected envelope: %v", body)
		}
	})
}
