package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"weather-widget/view"
)

// statePayload mirrors GET /api/state
type statePayload struct {
	Seq   uint64     `json:"seq"`
	Panel view.Panel `json:"panel"`
}

func main() {
	baseURL := flag.String("server", "http://localhost:8080", "Base URL of a running widget")
	wait := flag.Duration("wait", 15*time.Second, "How long to wait for the lookup to settle")
	flag.Parse()

	city := strings.Join(flag.Args(), " ")
	client := &http.Client{Timeout: 10 * time.Second}

	// Submit the lookup
	body, _ := json.Marshal(map[string]string{"city": city})
	resp, err := client.Post(*baseURL+"/api/lookup", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error submitting lookup: %v\n", err)
		os.Exit(1)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		fmt.Printf("Unexpected status from /api/lookup: %s\n", resp.Status)
		os.Exit(1)
	}
	fmt.Printf("Looking up %q...\n", city)

	// Poll until the panel is no longer loading
	deadline := time.Now().Add(*wait)
	for {
		state, err := fetchState(client, *baseURL)
		if err != nil {
			fmt.Printf("Error fetching state: %v\n", err)
			os.Exit(1)
		}
		if !state.Panel.Loading {
			fmt.Print(state.Panel.Text())
			return
		}
		if time.Now().After(deadline) {
			fmt.Println("Gave up waiting for the lookup to finish")
			os.Exit(1)
		}
		time.Sleep(250 * time.Millisecond)
	}
}

func fetchState(client *http.Client, baseURL string) (statePayload, error) {
	resp, err := client.Get(baseURL + "/api/state")
	if err != nil {
		return statePayload{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return statePayload{}, err
	}
	var state statePayload
	if err := json.Unmarshal(raw, &state); err != nil {
		return statePayload{}, fmt.Errorf("failed to parse state: %w", err)
	}
	return state, nil
}
