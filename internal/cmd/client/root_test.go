package client

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLogSendCommand(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok", "seqs": []uint64{42}})
	}))
	defer srv.Close()

	cmd := NewLogCommand(func() string { return srv.URL })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"send", "--level", "INFO", "--service", "svc", "--message", "hello", "--token", "sekret"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if gotAuth != "Bearer sekret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if !strings.Contains(out.String(), "42") {
		t.Errorf("output = %q, want the assigned seq", out.String())
	}
}

func TestLogQueryCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("level"); got != "ERROR" {
			t.Errorf("level param = %q", got)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{"seq": 1, "level": "ERROR", "service": "svc", "message": "boom", "hash": "ab"}})
	}))
	defer srv.Close()

	cmd := NewLogCommand(func() string { return srv.URL })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"query", "--level", "ERROR"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "boom") {
		t.Errorf("output = %q", out.String())
	}
}

func TestExportCommandStdout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Export-Version", "20240101T000000Z")
		_, _ = w.Write([]byte("timestamp,level,service,message,hash\n"))
	}))
	defer srv.Close()

	cmd := NewExportCommand(func() string { return srv.URL })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "csv"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "timestamp,level,service,message,hash") {
		t.Errorf("output = %q", out.String())
	}
}

func TestStatsCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/stats" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ingested": 2, "last_seq": 2, "entries": 2})
	}))
	defer srv.Close()

	cmd := NewStatsCommand(func() string { return srv.URL })
	var out bytes.Buffer
	cmd.SetOut(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "last_seq") {
		t.Errorf("output = %q", out.String())
	}
}
