package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"
)

func TestCrashClient(t *testing.T) {
	defer gock.Off()
	interceptClient(t)

	gock.New("http://localhost:3000").
		Post("/api/crash").
		Reply(http.StatusInternalServerError).
		SetHeader("Content-Type", "application/json; charset=utf-8").
		BodyString(`{"error":"down","message":"expected"}`)

	resp, err := Crash(http.MethodPost, `{"any":"thing"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.ContentType)

	errMsg, err := getJSONElement(resp.Body, "$.error")
	assert.NoError(t, err)
	assert.Equal(t, "down", errMsg)
	assert.True(t, gock.IsDone())
}

func TestWaitForHealthy(t *testing.T) {
	defer gock.Off()
	interceptClient(t)

	gock.New("http://localhost:3000").Get("/health").Times(2).Reply(http.StatusServiceUnavailable)
	gock.New("http://localhost:3000").Get("/health").Reply(http.StatusOK).JSON(map[string]string{"status": "OK"})

	assert.NoError(t, WaitForHealthy())
	assert.True(t, gock.IsDone())
}

func TestGetJSONElement(t *testing.T) {
	value, err := getJSONElement(`{"error":"a","nested":{"message":"b"}}`, "$.nested.message")
	assert.NoError(t, err)
	assert.Equal(t, "b", value)

	_, err = getJSONElement("not json", "$.error")
	assert.Error(t, err)
}

func interceptClient(t *testing.T) {
	transport := client.Transport
	gock.InterceptClient(client)
	t.Cleanup(func() { client.Transport = transport })
}
