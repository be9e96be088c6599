// Package runner drives scripted scenarios against a running API over
// HTTP, the way a console or play client would.
package runner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mhollis/fable-engine/pkg/session"
)

// ScriptCase is one end-to-end scenario: a command script plus the
// transcript lines it must produce. Commands that are expected to fail
// are listed in WantErrors by line index.
type ScriptCase struct {
	Name       string
	Script     []string
	WantOutput []string
	WantErrors map[int]string // line index -> expected error substring
}

type commandRequest struct {
	Command string `json:"command"`
}

type commandResponse struct {
	Output  []string          `json:"output,omitempty"`
	Session *session.Snapshot `json:"session"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Runner executes script cases against one API base URL.
type Runner struct {
	BaseURL string
	Client  *http.Client
	Logger  func(format string, args ...interface{})
}

func NewRunner(baseURL string) *Runner {
	return &Runner{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
		Logger:  func(format string, args ...interface{}) {},
	}
}

// CreateSession starts a fresh session and returns its snapshot.
func (r *Runner) CreateSession() (*session.Snapshot, error) {
	resp, err := r.Client.Post(r.BaseURL+"/v1/sessions", "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session: unexpected status %s", resp.Status)
	}
	var snap session.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &snap, nil
}

// DeleteSession removes the session when a case is done.
func (r *Runner) DeleteSession(snap *session.Snapshot) error {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/sessions/%s", r.BaseURL, snap.ID), nil)
	if err != nil {
		return err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete session: unexpected status %s", resp.Status)
	}
	return nil
}

// RunCommand posts one script line. A non-200 response is returned as an
// error carrying the API's message.
func (r *Runner) RunCommand(snap *session.Snapshot, command string) ([]string, error) {
	body, err := json.Marshal(commandRequest{Command: command})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/sessions/%s/commands", r.BaseURL, snap.ID)
	resp, err := r.Client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("post command: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s", errResp.Error)
		}
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var cmdResp commandResponse
	if err := json.Unmarshal(data, &cmdResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return cmdResp.Output, nil
}

// RunCase runs one scenario in its own session and returns the transcript
// and the per-line errors encountered. A failed line never aborts the run.
func (r *Runner) RunCase(c ScriptCase) (transcript []string, lineErrors map[int]error, err error) {
	snap, err := r.CreateSession()
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if derr := r.DeleteSession(snap); derr != nil {
			r.Logger("cleanup failed for %s: %v", c.Name, derr)
		}
	}()

	lineErrors = make(map[int]error)
	for i, line := range c.Script {
		output, cerr := r.RunCommand(snap, line)
		if cerr != nil {
			r.Logger("[%s] line %d failed: %v", c.Name, i, cerr)
			lineErrors[i] = cerr
			continue
		}
		transcript = append(transcript, output...)
	}
	return transcript, lineErrors, nil
}
