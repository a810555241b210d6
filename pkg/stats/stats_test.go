package stats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/teamwallet/teamwallet/pkg/config"
	"github.com/teamwallet/teamwallet/pkg/test"
)

func TestStatsServerServesMetrics(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Stats.ListenAddr = fmt.Sprintf("127.0.0.1:%d", test.RandomPort())
	ctx := config.WithContext(context.TODO(), cfg)

	s, err := NewStatsServer(ctx)
	if err != nil {
		t.Fatal(err)
	}
	go s.ListenAndServe() //nolint:errcheck
	defer s.Close()       //nolint:errcheck

	var res *http.Response
	for i := 0; i < 10; i++ {
		res, err = http.Get("http://" + cfg.Stats.ListenAddr + "/metrics")
		if err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close() //nolint:errcheck

	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET /metrics => %d, want 200", res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("metrics output missing standard go collector series")
	}
}
