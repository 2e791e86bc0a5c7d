package integration

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	"github.com/oliveagle/jsonpath"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// Note: change this when the service listens somewhere other than the default api host
	endpoint       = "http://localhost:3000/"
	crashPath      = "api/crash"
	healthPath     = "health"
	MaxElapsedTime = 30 * time.Second
)

var client = &http.Client{
	Timeout:   10 * time.Second,
	Transport: otelhttp.NewTransport(http.DefaultTransport),
}

func init() {
	// Treats "\n" as new lines, see https://github.com/sirupsen/logrus/issues/608
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableQuote: true,
		ForceColors:  true,
	})
}

// Response is what the suite keeps of a round trip.
type Response struct {
	StatusCode  int
	ContentType string
	Body        string
}

// WaitForHealthy polls the health route until the service answers with a 200.
func WaitForHealthy() error {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 50 * time.Millisecond
	expBackoff.MaxElapsedTime = MaxElapsedTime

	err := backoff.Retry(func() error {
		resp, err := do(http.MethodGet, endpoint+healthPath, "")
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			return errors.Errorf("health check returned %d", resp.StatusCode)
		}
		return nil
	}, expBackoff)
	if err != nil {
		return errors.Wrap(err, "error after retrying")
	}
	return nil
}

// Crash calls the crash route with the given method and body.
func Crash(method, body string) (*Response, error) {
	logrus.Printf("\n\nCall the crash route with %s", method)
	return do(method, endpoint+crashPath, body)
}

func do(method, url, body string) (*Response, error) {
	logrus.Printf("\nPerforming %s request to:  %s\n", method, url)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, errors.Wrap(err, "building http req")
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s url: %s", method, url)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "parsing body")
	}

	logrus.Infof("Received:  (%d) %s", resp.StatusCode, string(respBody))
	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(respBody),
	}, nil
}

func getJSONElement(jsonString string, jsonPath string) (string, error) {
	jsonMap := make(map[string]any)
	if err := json.Unmarshal([]byte(jsonString), &jsonMap); err != nil {
		return "", errors.Wrap(err, "unmarshalling json string")
	}

	element, err := jsonpath.JsonPathLookup(jsonMap, jsonPath)
	if err != nil {
		return "", errors.Wrap(err, "finding element in json string")
	}

	if element == nil {
		return "<nil>", nil
	}
	return fmt.Sprintf("%v", element), nil
}
