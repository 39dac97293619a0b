package main

import (
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

func newClient(apiURL string) *resty.Client {
	return resty.New().
		SetBaseURL(apiURL).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)
}

func get(apiURL, path string, out io.Writer) error {
	resp, err := newClient(apiURL).R().Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	_, err = fmt.Fprintln(out, resp.String())
	return err
}

var analyticsPaths = map[string]string{
	"summary":      "",
	"daily":        "/daily",
	"distribution": "/distribution",
	"heatmap":      "/heatmap",
	"peak-hours":   "/peak-hours",
	"reviews":      "/reviews",
}

func runAnalytics(apiURL, userID, report string, out io.Writer) error {
	suffix, ok := analyticsPaths[report]
	if !ok {
		return fmt.Errorf("unknown analytics report: %s", report)
	}
	return get(apiURL, fmt.Sprintf("/api/users/%s/analytics%s", userID, suffix), out)
}

func runSchedule(apiURL, userID, date string, out io.Writer) error {
	return get(apiURL, fmt.Sprintf("/api/users/%s/schedule/%s", userID, date), out)
}

func runGetPrefs(apiURL, userID string, out io.Writer) error {
	return get(apiURL, fmt.Sprintf("/api/users/%s/notification-prefs", userID), out)
}

func runSetPrefs(apiURL, userID string, enabled bool, lead int, out io.Writer) error {
	resp, err := newClient(apiURL).R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{"enabled": enabled, "leadMinutes": lead}).
		Put(fmt.Sprintf("/api/users/%s/notification-prefs", userID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	_, err = fmt.Fprintln(out, resp.String())
	return err
}

func runHealth(apiURL string, out io.Writer) error {
	return get(apiURL, "/api/health", out)
}
