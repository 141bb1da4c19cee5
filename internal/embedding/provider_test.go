package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/ldnexus/match-engine/internal/talent"
	"go.uber.org/zap"
)

type stubClient struct {
	mu    sync.Mutex
	calls int
	texts []string

	vector []float32
	errs   []error
}

func (s *stubClient) Embed(_ context.Context, text string) ([]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	s.texts = append(s.texts, text)

	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return nil, err
		}
	}

	return s.vector, nil
}

func (s *stubClient) Name() string  { return "stub" }
func (s *stubClient) Model() string { return "stub-model" }

func (s *stubClient) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestProvider(c client) *Provider {
	return NewProvider(c, zap.NewNop(), WithMaxRetries(0))
}

func TestProviderStartsInvalid(t *testing.T) {
	t.Parallel()

	stub := &stubClient{vector: []float32{1, 2, 3}}
	provider := newTestProvider(stub)

	if provider.Available() {
		t.Fatalf("provider must be invalid before Init")
	}

	if vec := provider.EmbedText(context.Background(), "some text"); vec != nil {
		t.Fatalf("expected nil before Init, got %v", vec)
	}

	if stub.callCount() != 0 {
		t.Fatalf("expected no API traffic before Init, got %d calls", stub.callCount())
	}
}

func TestProviderInitProbe(t *testing.T) {
	t.Parallel()

	stub := &stubClient{vector: []float32{1, 2, 3}}
	provider := newTestProvider(stub)

	if err := provider.Init(context.Background()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}

	if !provider.Available() {
		t.Fatalf("provider must be valid after a successful probe")
	}

	if vec := provider.EmbedText(context.Background(), "hello"); len(vec) != 3 {
		t.Fatalf("expected a 3-dim vector, got %v", vec)
	}
}

func TestProviderInitFailureDisables(t *testing.T) {
	t.Parallel()

	stub := &stubClient{errs: []error{errors.New("network down")}}
	provider := newTestProvider(stub)

	if err := provider.Init(context.Background()); err == nil {
		t.Fatalf("expected init error")
	}

	if provider.Available() {
		t.Fatalf("provider must stay invalid after a failed probe")
	}
}

func TestProviderBlankTextIsPreconditionMiss(t *testing.T) {
	t.Parallel()

	stub := &stubClient{vector: []float32{1}}
	provider := newTestProvider(stub)
	if err := provider.Init(context.Background()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}

	before := stub.callCount()
	if vec := provider.EmbedText(context.Background(), "   \t\n"); vec != nil {
		t.Fatalf("expected nil for blank text, got %v", vec)
	}
	if stub.callCount() != before {
		t.Fatalf("blank text must not reach the API")
	}
}

func TestProviderAuthFailureFlipsInvalid(t *testing.T) {
	t.Parallel()

	stub := &stubClient{
		vector: []float32{1},
		errs:   []error{nil, fmt.Errorf("%w: key expired", ErrUnauthorized)},
	}
	provider := newTestProvider(stub)
	if err := provider.Init(context.Background()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}

	if vec := provider.EmbedText(context.Background(), "text"); vec != nil {
		t.Fatalf("expected nil on auth failure, got %v", vec)
	}

	if provider.Available() {
		t.Fatalf("provider must be invalid after an auth failure")
	}

	before := stub.callCount()
	if vec := provider.EmbedText(context.Background(), "more text"); vec != nil {
		t.Fatalf("expected nil after provider went invalid")
	}
	if stub.callCount() != before {
		t.Fatalf("calls after an auth failure must short-circuit without API traffic")
	}
}

func TestProviderTransientFailureKeepsValid(t *testing.T) {
	t.Parallel()

	stub := &stubClient{
		vector: []float32{1},
		errs:   []error{nil, errors.New("503 unavailable")},
	}
	provider := newTestProvider(stub)
	if err := provider.Init(context.Background()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}

	if vec := provider.EmbedText(context.Background(), "text"); vec != nil {
		t.Fatalf("expected nil on transient failure, got %v", vec)
	}

	if !provider.Available() {
		t.Fatalf("a transient failure must not invalidate the provider")
	}

	if vec := provider.EmbedText(context.Background(), "again"); len(vec) != 1 {
		t.Fatalf("expected the next call to succeed, got %v", vec)
	}
}

func TestProviderRetriesTransientErrors(t *testing.T) {
	t.Parallel()

	stub := &stubClient{
		vector: []float32{1, 2},
		errs:   []error{errors.New("flaky"), nil},
	}
	provider := NewProvider(stub, zap.NewNop(), WithMaxRetries(1))

	if err := provider.Init(context.Background()); err != nil {
		t.Fatalf("expected the retry to recover the probe, got %v", err)
	}

	if stub.callCount() != 2 {
		t.Fatalf("expected 2 attempts, got %d", stub.callCount())
	}
}

func TestEmbedProfileJoinsNonEmptyFields(t *testing.T) {
	t.Parallel()

	stub := &stubClient{vector: []float32{1}}
	provider := newTestProvider(stub)
	if err := provider.Init(context.Background()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}

	profile := &talent.Profile{
		Title:         "L&D Manager",
		Bio:           "",
		IndustryFocus: "Corporate Training",
	}

	if vec := provider.EmbedProfile(context.Background(), profile); vec == nil {
		t.Fatalf("expected a vector")
	}

	sent := stub.texts[len(stub.texts)-1]
	if sent != "L&D Manager\nCorporate Training" {
		t.Fatalf("unexpected embedded text: %q", sent)
	}
}

func TestEmbedJobJoinsAllFields(t *testing.T) {
	t.Parallel()

	stub := &stubClient{vector: []float32{1}}
	provider := newTestProvider(stub)
	if err := provider.Init(context.Background()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}

	job := &talent.Job{
		Title:        "Training Lead",
		Description:  "Own the onboarding curriculum",
		Requirements: "5 years experience",
		JobType:      "full-time",
		Location:     "Dubai",
	}

	if vec := provider.EmbedJob(context.Background(), job); vec == nil {
		t.Fatalf("expected a vector")
	}

	sent := stub.texts[len(stub.texts)-1]
	for _, field := range []string{"Training Lead", "onboarding curriculum", "5 years experience", "full-time", "Dubai"} {
		if !strings.Contains(sent, field) {
			t.Fatalf("embedded text missing %q: %q", field, sent)
		}
	}
}

func TestNilProviderIsSafe(t *testing.T) {
	t.Parallel()

	var provider *Provider

	if provider.Available() {
		t.Fatalf("nil provider must report unavailable")
	}
	if vec := provider.EmbedProfile(context.Background(), &talent.Profile{Title: "x"}); vec != nil {
		t.Fatalf("nil provider must return nil")
	}
}
