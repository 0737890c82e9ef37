package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientGenerate(t *testing.T) {
	var gotPath string
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "1. Revisar o caminho crítico"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Model: "llama3"})

	got, err := client.Generate(context.Background(), "analise o cronograma")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "1. Revisar o caminho crítico" {
		t.Fatalf("unexpected content: %q", got)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotBody.Model != "llama3" || len(gotBody.Messages) != 1 || gotBody.Messages[0].Content != "analise o cronograma" {
		t.Fatalf("unexpected request body: %+v", gotBody)
	}
}

func TestClientGenerateErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Model: "missing"})

	if _, err := client.Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected an error for non-200 status")
	}
}

func TestClientGenerateEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Model: "llama3"})

	if _, err := client.Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected an error for empty choices")
	}
}

func TestStaticGenerator(t *testing.T) {
	got, err := Static{Response: "ok"}.Generate(context.Background(), "qualquer prompt")
	if err != nil || got != "ok" {
		t.Fatalf("static: got %q, %v", got, err)
	}
}
