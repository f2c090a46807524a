package advisor_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mcatur/sol/internal/advisor"
	"github.com/mcatur/sol/internal/catalog"
	"github.com/mcatur/sol/internal/profile"
)

// fakeClock advances only when something sleeps or a fake client burns time.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) totalSlept() time.Duration {
	var total time.Duration
	for _, d := range c.slept {
		total += d
	}
	return total
}

// fakeClient returns a canned response, optionally advancing the clock to
// simulate call latency.
type fakeClient struct {
	content string
	err     error
	latency time.Duration
	clock   *fakeClock
	calls   int
}

func (f *fakeClient) Complete(_ context.Context, _ []advisor.Message) (string, error) {
	f.calls++
	if f.latency > 0 {
		f.clock.now = f.clock.now.Add(f.latency)
	}
	return f.content, f.err
}

func testConfig(t *testing.T) *advisor.Config {
	t.Helper()
	cfg := &advisor.Config{
		BaseURL: "http://localhost:9999",
		APIKey:  "test-key",
	}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("config finalize: %v", err)
	}
	return cfg
}

func testProfile() *profile.Profile {
	p := profile.New()
	p.Set(catalog.QuestionName, profile.Answer{Kind: catalog.KindText, Text: "Ana"})
	p.Set(catalog.QuestionBudget, profile.Answer{Kind: catalog.KindNumber, Number: 5000})
	p.Set(catalog.QuestionPeople, profile.Answer{Kind: catalog.KindNumber, Number: 2})
	p.Set(catalog.QuestionCabin, profile.Answer{Kind: catalog.KindChoice, Text: "Varanda"})
	return p
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validResponse(t *testing.T) string {
	t.Helper()

	offer := func(tier string, recommended bool) map[string]any {
		return map[string]any{
			"type":           tier,
			"isRecommended":  recommended,
			"magneticName":   "Rota " + tier,
			"ship":           "Costa Favolosa",
			"duration":       "5 Noites",
			"itinerary":      "Santos, Búzios, Santos",
			"cabinType":      "Varanda",
			"estimatedPrice": "R$ 4.900",
			"totalValue":     "R$ 6.100",
			"whyThis":        "Combina com o perfil.",
			"imageUrl":       "https://example.com/ship.jpg",
			"guarantee":      "Garantia Sol.",
			"bonusStack": []map[string]any{
				{"name": "Guia de Bordo", "value": "R$ 90", "description": "Dicas dos navios."},
				{"name": "Voucher", "value": "R$ 120", "description": "Crédito a bordo."},
			},
		}
	}

	data, err := json.Marshal(map[string]any{
		"solIntro":           "Olá, Ana!",
		"tradeOffs":          "Priorizei o roteiro.",
		"typicalDay":         "Dia de sol e mar.",
		"conversionTrigger":  "Cabines limitadas.",
		"fastActionBonus":    "Bônus por decidir hoje.",
		"preferenceQuestion": "Qual prefere, Ana?",
		"recommendations": []map[string]any{
			offer("ECONOMY", false),
			offer("IDEAL", true),
			offer("UPGRADE", false),
		},
	})
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	return string(data)
}

func TestGenerateUnavailableWithoutClient(t *testing.T) {
	cfg := &advisor.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("config finalize: %v", err)
	}

	sys := advisor.New(cfg, nil, newFakeClock(), discard())

	_, err := sys.Generate(context.Background(), testProfile())
	if !errors.Is(err, advisor.ErrUnavailable) {
		t.Errorf("Generate error = %v, want ErrUnavailable", err)
	}
}

func TestGenerateUsesRemoteResult(t *testing.T) {
	clock := newFakeClock()
	client := &fakeClient{content: validResponse(t), clock: clock}

	sys := advisor.New(testConfig(t), client, clock, discard())

	c, err := sys.Generate(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if client.calls != 1 {
		t.Errorf("client calls = %d, want 1", client.calls)
	}
	if c.Recommended().Name != "Rota IDEAL" {
		t.Errorf("recommended = %q, want remote offer", c.Recommended().Name)
	}
}

func TestGeneratePacingFloor(t *testing.T) {
	t.Run("instant remote call is held back", func(t *testing.T) {
		clock := newFakeClock()
		client := &fakeClient{content: validResponse(t), clock: clock}

		sys := advisor.New(testConfig(t), client, clock, discard())
		if _, err := sys.Generate(context.Background(), testProfile()); err != nil {
			t.Fatalf("Generate error: %v", err)
		}

		if got := clock.totalSlept(); got != 4500*time.Millisecond {
			t.Errorf("slept %v, want 4.5s", got)
		}
	})

	t.Run("slow remote call adds no delay", func(t *testing.T) {
		clock := newFakeClock()
		client := &fakeClient{content: validResponse(t), clock: clock, latency: 6 * time.Second}

		sys := advisor.New(testConfig(t), client, clock, discard())
		if _, err := sys.Generate(context.Background(), testProfile()); err != nil {
			t.Fatalf("Generate error: %v", err)
		}

		if got := clock.totalSlept(); got != 0 {
			t.Errorf("slept %v, want 0", got)
		}
	})

	t.Run("partial latency sleeps the remainder", func(t *testing.T) {
		clock := newFakeClock()
		client := &fakeClient{content: validResponse(t), clock: clock, latency: 3 * time.Second}

		sys := advisor.New(testConfig(t), client, clock, discard())
		if _, err := sys.Generate(context.Background(), testProfile()); err != nil {
			t.Fatalf("Generate error: %v", err)
		}

		if got := clock.totalSlept(); got != 1500*time.Millisecond {
			t.Errorf("slept %v, want 1.5s", got)
		}
	})
}

func TestGenerateFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
	}{
		{"call failure", &fakeClient{err: errors.New("connection refused")}},
		{"malformed response", &fakeClient{content: "desculpe, tivemos um problema"}},
		{"valid JSON wrong shape", &fakeClient{content: `{"solIntro":"oi"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			tt.client.clock = clock

			sys := advisor.New(testConfig(t), tt.client, clock, discard())

			c, err := sys.Generate(context.Background(), testProfile())
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}

			// Fallback consultations keep the visitor's name and all
			// structural invariants.
			if !strings.Contains(c.Recommended().Name, "Ana") {
				t.Errorf("fallback recommended = %q, want name interpolated", c.Recommended().Name)
			}
			if len(c.Offers) != 3 {
				t.Errorf("offers = %d, want 3", len(c.Offers))
			}
			if got := clock.totalSlept(); got != 4500*time.Millisecond {
				t.Errorf("slept %v, want full pacing floor", got)
			}
		})
	}
}
