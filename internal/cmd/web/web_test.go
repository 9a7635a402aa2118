package web

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Addr != "localhost:8081" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.ChatAPIKey != "" {
		t.Errorf("ChatAPIKey = %q, want empty", cfg.ChatAPIKey)
	}
	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %q", cfg.ChatModel)
	}
	if cfg.ReplyTimeout != 60*time.Second {
		t.Errorf("ReplyTimeout = %v", cfg.ReplyTimeout)
	}
}

func TestParseConfigChatFromEnv(t *testing.T) {
	t.Setenv("BOYAL_WEB_CHAT_API_KEY", "sk-test")
	t.Setenv("BOYAL_WEB_CHAT_MODEL", "gpt-4o")
	t.Setenv("BOYAL_WEB_CHAT_REPLY_TIMEOUT", "90s")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.ChatAPIKey != "sk-test" {
		t.Errorf("ChatAPIKey = %q", cfg.ChatAPIKey)
	}
	if cfg.ChatModel != "gpt-4o" {
		t.Errorf("ChatModel = %q", cfg.ChatModel)
	}
	if cfg.ReplyTimeout != 90*time.Second {
		t.Errorf("ReplyTimeout = %v", cfg.ReplyTimeout)
	}
}

func TestParseConfigFlagsBeatEnv(t *testing.T) {
	t.Setenv("BOYAL_WEB_API_BASE_URL", "http://env:8080")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-api-base-url", "http://flag:8080"})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.APIBaseURL != "http://flag:8080" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
}
