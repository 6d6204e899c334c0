package syncin

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http/httptest"
	"testing"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Secret: "s3cret"})
	payload := []byte(`{"source":"macbook-agent"}`)

	t.Run("Valid", func(t *testing.T) {
		if err := v.ValidateSignature(payload, sign("s3cret", payload)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		if err := v.ValidateSignature(payload, sign("other", payload)); err == nil {
			t.Error("expected verification failure")
		}
	})

	t.Run("Tampered Payload", func(t *testing.T) {
		sig := sign("s3cret", payload)
		if err := v.ValidateSignature([]byte(`{"source":"evil"}`), sig); err == nil {
			t.Error("expected verification failure")
		}
	})

	t.Run("Bad Format", func(t *testing.T) {
		if err := v.ValidateSignature(payload, "md5=abc"); err == nil {
			t.Error("expected format error")
		}
		if err := v.ValidateSignature(payload, "sha256=nothex"); err == nil {
			t.Error("expected hex error")
		}
	})

	t.Run("No Secret Configured", func(t *testing.T) {
		empty := NewSecurityValidator(SecurityConfig{})
		if err := empty.ValidateSignature(payload, sign("", payload)); err == nil {
			t.Error("expected error when secret unset")
		}
	})
}

func TestValidateIPAddress(t *testing.T) {
	tests := []struct {
		name       string
		allowedIPs []string
		remoteAddr string
		forwarded  string
		wantErr    bool
	}{
		{"No Restriction", nil, "203.0.113.9:1234", "", false},
		{"Exact Match", []string{"192.168.1.10"}, "192.168.1.10:5000", "", false},
		{"CIDR Match", []string{"10.0.0.0/8"}, "10.1.2.3:5000", "", false},
		{"Not Whitelisted", []string{"192.168.1.10"}, "203.0.113.9:1234", "", true},
		{"Forwarded For", []string{"192.168.1.10"}, "127.0.0.1:80", "192.168.1.10, 10.0.0.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSecurityValidator(SecurityConfig{AllowedIPs: tt.allowedIPs})
			r := httptest.NewRequest("POST", "/api/v1/sync/push", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			err := v.ValidateIPAddress(r)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckRateLimit(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 10})

	// burst of 1 at 10/min: first passes, immediate second is limited
	if err := v.CheckRateLimit("agent-a"); err != nil {
		t.Fatalf("first request must pass: %v", err)
	}
	if err := v.CheckRateLimit("agent-a"); err == nil {
		t.Error("expected rate limit on immediate second request")
	}

	// independent source has its own budget
	if err := v.CheckRateLimit("agent-b"); err != nil {
		t.Errorf("separate source must not share the limit: %v", err)
	}
}
