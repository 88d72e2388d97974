package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testContext(remoteAddr string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	c.Request.RemoteAddr = remoteAddr
	return c
}

func TestKeyByUserID(t *testing.T) {
	c := testContext("203.0.113.9:4321")
	c.Set("userID", int64(42))
	if got := KeyByUserID()(c); got != "rl:user:42" {
		t.Fatalf("key = %q, want rl:user:42", got)
	}
}

func TestKeyByUserIDAnonymousFallsBackToIP(t *testing.T) {
	c := testContext("203.0.113.9:4321")
	if got := KeyByUserID()(c); got != "rl:user:anon:ip:203.0.113.9" {
		t.Fatalf("key = %q", got)
	}
}

func TestAllowPrivateIP(t *testing.T) {
	cases := []struct {
		ip   string
		want bool
	}{
		{"127.0.0.1", true},
		{"10.1.2.3", true},
		{"192.168.0.5", true},
		{"203.0.113.9", false},
		{"not-an-ip", false},
	}
	allow := AllowPrivateIP()
	for _, tc := range cases {
		c := testContext(tc.ip + ":1234")
		c.Set("real_ip", tc.ip)
		if got := allow(c); got != tc.want {
			t.Fatalf("AllowPrivateIP(%s) = %v, want %v", tc.ip, got, tc.want)
		}
	}
}

func TestRateLimitNoopWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(nil, 1, time.Minute, KeyByUserID(), AllowPrivateIP()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}
}
