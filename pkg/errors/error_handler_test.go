package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, map[string]string) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: HandleError})
	app.Get("/direct", func(c *fiber.Ctx) error { return HandleError(c, err) })
	app.Get("/returned", func(c *fiber.Ctx) error { return err })

	var (
		status int
		body   map[string]string
	)
	for _, path := range []string{"/direct", "/returned"} {
		resp, testErr := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, testErr)
		raw, readErr := io.ReadAll(resp.Body)
		require.NoError(t, readErr)

		var got map[string]string
		require.NoError(t, json.Unmarshal(raw, &got), string(raw))
		if body != nil {
			assert.Equal(t, status, resp.StatusCode, "direct and returned errors differ")
			assert.Equal(t, body, got)
		}
		status, body = resp.StatusCode, got
	}
	return status, body
}

func TestHandleErrorAppErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
		msg    string
	}{
		{ErrNotFound("reel %s not found", "abc"), 404, CodeNotFound, "reel abc not found"},
		{ErrBadRequest("missing video part"), 400, CodeBadRequest, "missing video part"},
		{ErrConflict("in use"), 409, CodeConflict, "in use"},
		{ErrInternal("could not save video", stderrors.New("db down")), 500, CodeInternal, "could not save video"},
		{fmt.Errorf("wrapped: %w", ErrNotFound("gone")), 404, CodeNotFound, "gone"},
		{&AppError{Code: CodeConflict}, 409, CodeConflict, "Resource is in use"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, body := respond(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body["error"])
			assert.Equal(t, tt.msg, body["message"])
		})
	}
}

func TestHandleErrorHidesCause(t *testing.T) {
	_, body := respond(t, ErrInternal("could not save video", stderrors.New("password=hunter2")))
	assert.NotContains(t, body["message"], "hunter2")
}

func TestHandleErrorFiberAndPlainErrors(t *testing.T) {
	status, body := respond(t, fiber.ErrNotFound)
	assert.Equal(t, 404, status)
	assert.Equal(t, CodeNotFound, body["error"])

	status, body = respond(t, fiber.ErrRequestEntityTooLarge)
	assert.Equal(t, 413, status)
	assert.Equal(t, CodeBadRequest, body["error"])

	status, body = respond(t, stderrors.New("boom"))
	assert.Equal(t, 500, status)
	assert.Equal(t, CodeInternal, body["error"])
	assert.Equal(t, "Internal server error", body["message"])
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := ErrInternal("write failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "not_found: nope", ErrNotFound("nope").Error())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, 404, StatusFor(CodeNotFound))
	assert.Equal(t, 400, StatusFor(CodeBadRequest))
	assert.Equal(t, 409, StatusFor(CodeConflict))
	assert.Equal(t, 500, StatusFor(CodeInternal))
	assert.Equal(t, 500, StatusFor("teapot"))
}
