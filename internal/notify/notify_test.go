package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestWebhookPostsFields(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	hook := NewWebhook(time.Second)
	fields := map[string]string{"full_name": "Asha", "source": "StylenSurface Website"}
	if err := hook.Notify(context.Background(), srv.URL, fields); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if got["full_name"] != "Asha" || got["source"] != "StylenSurface Website" {
		t.Fatalf("unexpected payload: %#v", got)
	}
}

func TestWebhookRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhook(time.Second).Notify(context.Background(), srv.URL, map[string]string{"a": "b"})
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestNotifyRequiresDestination(t *testing.T) {
	if err := NewWebhook(0).Notify(context.Background(), " ", nil); !errors.Is(err, ErrNoDestination) {
		t.Fatalf("expected ErrNoDestination, got %v", err)
	}

	mailer, err := NewMailer(MailConfig{Host: "localhost", From: "site@example.com"})
	if err != nil {
		t.Fatalf("new mailer: %v", err)
	}
	if err := mailer.Notify(context.Background(), "", nil); !errors.Is(err, ErrNoDestination) {
		t.Fatalf("expected ErrNoDestination, got %v", err)
	}
}

func TestMailConfigValidate(t *testing.T) {
	cfg := MailConfig{Host: "smtp.example.com", From: "a@example.com"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "587" {
		t.Fatalf("expected default port 587, got %s", cfg.Port)
	}
	if (&MailConfig{}).Enabled() {
		t.Fatal("empty config should be disabled")
	}
	if _, err := NewMailer(MailConfig{Host: "smtp.example.com"}); err == nil {
		t.Fatal("expected missing from to fail")
	}
}

func TestMailerFormatsBodyWithoutMarkup(t *testing.T) {
	mailer, err := NewMailer(MailConfig{Host: "localhost", From: "site@example.com"})
	if err != nil {
		t.Fatalf("new mailer: %v", err)
	}

	body := mailer.formatBody(map[string]string{
		"requirement": "<b>Cork</b> sheets",
		"full_name":   "Asha",
	})
	want := "full_name: Asha\r\nrequirement: Cork sheets\r\n"
	if body != want {
		t.Fatalf("unexpected body %q", body)
	}

	msg := buildMessage("site@example.com", "admin@example.com", "New Lead:\r\nBcc: x", body)
	if strings.Contains(msg, "\r\nBcc:") {
		t.Fatal("subject must not inject headers")
	}
}

func TestMailerBodyKeepsPlainTextCharacters(t *testing.T) {
	mailer, err := NewMailer(MailConfig{Host: "localhost", From: "site@example.com"})
	if err != nil {
		t.Fatalf("new mailer: %v", err)
	}

	body := mailer.formatBody(map[string]string{"requirement": "Tom & Jerry's 8'x4' <5mm"})
	want := "requirement: Tom & Jerry's 8'x4' <5mm\r\n"
	if body != want {
		t.Fatalf("expected %q, got %q", want, body)
	}
	if got := mailer.plain(`O'Brien & Sons <script>alert(1)</script>`); got != "O'Brien & Sons " {
		t.Fatalf("unexpected plain text %q", got)
	}
}

func TestMailerGivesUpOnSilentServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	held := make(chan net.Conn, 1)
	go func() {
		// Accept and never send the SMTP greeting.
		if conn, err := ln.Accept(); err == nil {
			held <- conn
		}
	}()
	defer func() {
		select {
		case conn := <-held:
			conn.Close()
		default:
		}
	}()

	host, port, _ := net.SplitHostPort(ln.Addr().String())
	mailer, err := NewMailer(MailConfig{Host: host, Port: port, From: "site@example.com"})
	if err != nil {
		t.Fatalf("new mailer: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	if err := mailer.Notify(ctx, "admin@example.com", map[string]string{"full_name": "Asha"}); err == nil {
		t.Fatal("expected silent server to fail the send")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("send should stop at the context deadline, took %s", elapsed)
	}
}
