package grpcweb_test

import (
	"bytes"
	"encoding/binary"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"

	"civicconnect-api/internal/auth"
	"civicconnect-api/internal/grpcweb"
	"civicconnect-api/internal/handler"
	"civicconnect-api/internal/middleware"
	"civicconnect-api/internal/rpc"
	"civicconnect-api/internal/session"
	"civicconnect-api/internal/store"
)

const secret = "test-secret"

func newServer(t *testing.T, rl *middleware.RateLimiter) (http.Handler, *session.Manager) {
	t.Helper()
	admin, err := auth.NewAdmin("admin", "password123")
	if err != nil {
		t.Fatalf("admin: %v", err)
	}
	st := store.New()
	sess := session.New("2025-06-15")
	h := handler.New(st, sess, admin, secret)
	if rl == nil {
		rl = middleware.NewRateLimiter(5, 10)
	}
	s := grpcweb.New(h, sess, secret, rl, zap.NewNop())
	return s.Handler(), sess
}

// frame wraps a protobuf payload in the grpc-web length-prefixed framing.
func frame(payload []byte) []byte {
	out := make([]byte, 5+len(payload))
	binary.BigEndian.PutUint32(out[1:5], uint32(len(payload)))
	copy(out[5:], payload)
	return out
}

func call(t *testing.T, h http.Handler, method, token string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, grpcweb.ServicePath+method, bytes.NewReader(frame(payload)))
	req.Header.Set("Content-Type", "application/grpc-web+proto")
	req.RemoteAddr = "192.0.2.10:54321"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// splitFrames separates the data frame (if any) from the trailer frame and
// extracts the grpc-status the trailer carries.
func splitFrames(t *testing.T, body []byte) (data []byte, grpcStatus codes.Code) {
	t.Helper()
	grpcStatus = codes.Code(1 << 30) // sentinel: no trailer seen
	for len(body) >= 5 {
		flag := body[0]
		n := binary.BigEndian.Uint32(body[1:5])
		if int(n)+5 > len(body) {
			t.Fatalf("truncated frame: want %d bytes, have %d", n, len(body)-5)
		}
		payload := body[5 : 5+n]
		body = body[5+n:]

		if flag&0x80 == 0 {
			data = payload
			continue
		}
		for _, line := range strings.Split(string(payload), "\r\n") {
			if v, ok := strings.CutPrefix(line, "grpc-status:"); ok {
				code, err := strconv.Atoi(v)
				if err != nil {
					t.Fatalf("bad grpc-status %q", v)
				}
				grpcStatus = codes.Code(code)
			}
		}
	}
	if grpcStatus == codes.Code(1<<30) {
		t.Fatal("no trailer frame in response")
	}
	return data, grpcStatus
}

func login(t *testing.T, h http.Handler) string {
	t.Helper()
	w := call(t, h, "Login", "", (&rpc.LoginRequest{Username: "admin", Password: "password123"}).Marshal())
	data, code := splitFrames(t, w.Body.Bytes())
	if code != codes.OK {
		t.Fatalf("login grpc-status %v", code)
	}
	resp := &rpc.LoginResponse{}
	if err := resp.Unmarshal(data); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login response without token")
	}
	return resp.Token
}

func TestLoginOverWire(t *testing.T) {
	h, sess := newServer(t, nil)

	tok := login(t, h)
	if tok == "" || !sess.Active() {
		t.Fatal("login did not open the session")
	}
}

func TestLoginBadCredentialsOverWire(t *testing.T) {
	h, _ := newServer(t, nil)

	w := call(t, h, "Login", "", (&rpc.LoginRequest{Username: "admin", Password: "nope"}).Marshal())
	_, code := splitFrames(t, w.Body.Bytes())
	if code != codes.Unauthenticated {
		t.Errorf("grpc-status %v, want Unauthenticated", code)
	}
}

func TestProtectedMethodsRequireToken(t *testing.T) {
	h, _ := newServer(t, nil)

	w := call(t, h, "ListDay", "", (&rpc.ListDayRequest{Date: "2025-06-15"}).Marshal())
	_, code := splitFrames(t, w.Body.Bytes())
	if code != codes.Unauthenticated {
		t.Errorf("grpc-status %v, want Unauthenticated", code)
	}

	w = call(t, h, "ListDay", "garbage-token", (&rpc.ListDayRequest{Date: "2025-06-15"}).Marshal())
	if _, code := splitFrames(t, w.Body.Bytes()); code != codes.Unauthenticated {
		t.Errorf("grpc-status %v, want Unauthenticated for a bad token", code)
	}
}

func TestCreateAndListOverWire(t *testing.T) {
	h, _ := newServer(t, nil)
	tok := login(t, h)

	w := call(t, h, "CreateAppointment", tok, (&rpc.CreateAppointmentRequest{
		Name:     "Ravi Shankar",
		Date:     "2025-06-20",
		TimeSlot: "09:00 AM - 10:00 AM",
	}).Marshal())
	data, code := splitFrames(t, w.Body.Bytes())
	if code != codes.OK {
		t.Fatalf("create grpc-status %v", code)
	}
	cr := &rpc.CreateAppointmentResponse{}
	if err := cr.Unmarshal(data); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if cr.Appointment == nil || cr.Appointment.Status != "pending" {
		t.Fatalf("created appointment: %+v", cr.Appointment)
	}

	w = call(t, h, "ListDay", tok, (&rpc.ListDayRequest{Date: "2025-06-20"}).Marshal())
	data, code = splitFrames(t, w.Body.Bytes())
	if code != codes.OK {
		t.Fatalf("list grpc-status %v", code)
	}
	lr := &rpc.ListDayResponse{}
	if err := lr.Unmarshal(data); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(lr.Slots) != 24 || lr.Total != 1 {
		t.Errorf("slots=%d total=%d", len(lr.Slots), lr.Total)
	}
}

func TestLogoutClosesSession(t *testing.T) {
	h, sess := newServer(t, nil)
	tok := login(t, h)

	w := call(t, h, "Logout", tok, (&rpc.LogoutRequest{}).Marshal())
	if _, code := splitFrames(t, w.Body.Bytes()); code != codes.OK {
		t.Fatalf("logout grpc-status %v", code)
	}
	if sess.Active() {
		t.Fatal("session still active")
	}

	// the token is still cryptographically valid but the session is gone
	w = call(t, h, "ListDay", tok, (&rpc.ListDayRequest{Date: "2025-06-15"}).Marshal())
	if _, code := splitFrames(t, w.Body.Bytes()); code != codes.Unauthenticated {
		t.Errorf("grpc-status %v, want Unauthenticated after logout", code)
	}
}

func TestLoginRateLimited(t *testing.T) {
	h, _ := newServer(t, middleware.NewRateLimiter(1, 2))

	body := (&rpc.LoginRequest{Username: "admin", Password: "nope"}).Marshal()
	var limited bool
	for i := 0; i < 5; i++ {
		w := call(t, h, "Login", "", body)
		if _, code := splitFrames(t, w.Body.Bytes()); code == codes.ResourceExhausted {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("burst of logins never hit the rate limit")
	}
}

func TestRejectsNonGrpcWeb(t *testing.T) {
	h, _ := newServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, grpcweb.ServicePath+"Login", bytes.NewReader(frame(nil)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("status %d, want 415", w.Code)
	}
}

func TestUnknownMethod(t *testing.T) {
	h, _ := newServer(t, nil)
	tok := login(t, h)

	w := call(t, h, "Reboot", tok, nil)
	if _, code := splitFrames(t, w.Body.Bytes()); code != codes.Unimplemented {
		t.Errorf("grpc-status %v, want Unimplemented", code)
	}
}

func TestTruncatedFrame(t *testing.T) {
	h, _ := newServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, grpcweb.ServicePath+"Login", strings.NewReader("ab"))
	req.Header.Set("Content-Type", "application/grpc-web+proto")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if _, code := splitFrames(t, w.Body.Bytes()); code != codes.InvalidArgument {
		t.Errorf("grpc-status %v, want InvalidArgument", code)
	}
}
