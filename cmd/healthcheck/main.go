package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"
)

// healthcheck probes the site's /healthz endpoint and exits 0 when it answers
// 200. Intended as a container HEALTHCHECK command; it honors the same PORT
// variable as the server.
func main() {
	os.Exit(check())
}

func check() int {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	client := &http.Client{Timeout: 2 * time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://127.0.0.1:%s/healthz", port), nil)
	if err != nil {
		return 1
	}

	resp, err := client.Do(req)
	if err != nil {
		return 1
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 1
	}

	return 0
}
