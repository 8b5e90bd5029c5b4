package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mfrancor/characters-api/logger"
)

// fakeVerifier returns a fixed result and counts invocations.
type fakeVerifier struct {
	subject string
	err     error
	calls   int
}

func (f *fakeVerifier) Verify(string) (string, error) {
	f.calls++
	return f.subject, f.err
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func newGuardedRouter(t *testing.T, verifier TokenVerifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	guard := NewGuard(verifier, logger.NewDefault("test"))
	engine.GET("/protected", guard.Run(), func(c *gin.Context) {
		subject, _ := SubjectID(c)
		c.JSON(http.StatusOK, gin.H{"subject": subject})
	})
	return engine
}

func doProtected(t *testing.T, engine *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestGuardRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		wantMessage   string
		wantVerify    int
	}{
		{"missing header", "", "no authorization", 0},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "Invalid credentials", 0},
		{"scheme only prefix", "Bear", "Invalid credentials", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &fakeVerifier{subject: "u1"}
			engine := newGuardedRouter(t, verifier)

			rec := doProtected(t, engine, tt.authorization)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			var envelope errorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if envelope.Success {
				t.Error("success = true, want false")
			}
			if envelope.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", envelope.Message, tt.wantMessage)
			}
			if envelope.Status != http.StatusUnauthorized {
				t.Errorf("envelope status = %d, want 401", envelope.Status)
			}
			// The verifier must never run for requests failing header checks.
			if verifier.calls != tt.wantVerify {
				t.Errorf("verifier calls = %d, want %d", verifier.calls, tt.wantVerify)
			}
		})
	}
}

func TestGuardSchemeIsCaseInsensitive(t *testing.T) {
	for _, scheme := range []string{"Bearer", "bearer", "BEARER"} {
		t.Run(scheme, func(t *testing.T) {
			verifier := &fakeVerifier{subject: "u1"}
			engine := newGuardedRouter(t, verifier)

			rec := doProtected(t, engine, scheme+" some-token")

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
			}
			var body struct {
				Subject string `json:"subject"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if body.Subject != "u1" {
				t.Errorf("subject = %q, want %q", body.Subject, "u1")
			}
			if verifier.calls != 1 {
				t.Errorf("verifier calls = %d, want 1", verifier.calls)
			}
		})
	}
}

func TestGuardWithRealCodec(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	issued := time.Now()
	codec.now = func() time.Time { return issued }

	token, err := codec.Sign("u1")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	engine := newGuardedRouter(t, codec)

	t.Run("valid token", func(t *testing.T) {
		rec := doProtected(t, engine, "Bearer "+token)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
		}
	})

	t.Run("expired token", func(t *testing.T) {
		codec.now = func() time.Time { return issued.Add(2 * time.Hour) }
		rec := doProtected(t, engine, "Bearer "+token)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		var envelope errorEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if envelope.Message != "Expired token" {
			t.Errorf("message = %q, want %q", envelope.Message, "Expired token")
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		codec.now = func() time.Time { return issued }
		rec := doProtected(t, engine, "Bearer "+tamper(token))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		var envelope errorEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if envelope.Message != "Invalid token" {
			t.Errorf("message = %q, want %q", envelope.Message, "Invalid token")
		}
	})
}
