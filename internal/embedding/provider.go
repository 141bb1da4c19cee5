package embedding

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ldnexus/match-engine/internal/logger"
	"github.com/ldnexus/match-engine/internal/talent"
	"github.com/ldnexus/match-engine/internal/util"
	"go.uber.org/zap"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultRetryDelay     = 500 * time.Millisecond
	probeText             = "liveness probe"
	fieldSeparator        = "\n"
)

// Provider turns profiles and jobs into semantic vectors through a Client.
// It owns a process-wide validity flag: once the credential is known to be
// bad the provider short-circuits every later call until the process is
// restarted or Init succeeds again. The flag has a single writer and its
// transitions are idempotent, so concurrent readers need no locking beyond
// the atomic itself.
type Provider struct {
	client     client
	timeout    time.Duration
	maxRetries int
	logger     *zap.Logger

	valid atomic.Bool
}

// client is the narrow surface the provider needs from a concrete backend.
type client interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Name() string
	Model() string
}

// ProviderOption customizes a Provider.
type ProviderOption func(*Provider)

// WithRequestTimeout bounds every outbound embedding call. Timeouts are
// treated as transient failures.
func WithRequestTimeout(d time.Duration) ProviderOption {
	return func(p *Provider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithMaxRetries sets how many times a transient failure is retried per call.
func WithMaxRetries(n int) ProviderOption {
	return func(p *Provider) {
		if n >= 0 {
			p.maxRetries = n
		}
	}
}

// NewProvider wraps the client. The provider starts invalid; call Init once
// at startup to probe the credential.
func NewProvider(c client, log *zap.Logger, opts ...ProviderOption) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	if c != nil {
		log = logger.WithProviderFields(log, c.Name(), c.Model())
	}

	p := &Provider{
		client:     c,
		timeout:    defaultRequestTimeout,
		maxRetries: 1,
		logger:     log,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Init probes the backend with one trivial embedding request and marks the
// provider valid on success. Runs once per process lifecycle.
func (p *Provider) Init(ctx context.Context) error {
	if p == nil || p.client == nil {
		return errors.New("embedding client is not configured")
	}

	if _, err := p.embed(ctx, probeText); err != nil {
		p.valid.Store(false)
		p.logger.Warn("embedding provider probe failed; falling back to heuristic scoring", zap.Error(err))
		return err
	}

	p.valid.Store(true)
	p.logger.Info("embedding provider is ready")
	return nil
}

// Available reports whether the provider passed its credential probe and has
// not seen an auth failure since.
func (p *Provider) Available() bool {
	return p != nil && p.valid.Load()
}

// EmbedText returns the vector for the text, or nil when the provider is
// unavailable or the text is blank. Blank input is a precondition miss, not
// an error. Transient failures return nil for this call only; an auth
// failure flips the provider back to invalid so later calls short-circuit.
func (p *Provider) EmbedText(ctx context.Context, text string) []float32 {
	if !p.Available() {
		return nil
	}

	if strings.TrimSpace(text) == "" {
		return nil
	}

	vec, err := p.embed(ctx, text)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			p.valid.Store(false)
			p.logger.Warn("embedding credentials rejected; disabling provider", zap.Error(err))
		} else {
			p.logger.Debug("embedding request failed", zap.Error(err))
		}
		return nil
	}

	return vec
}

// EmbedProfile embeds the descriptive fields of a professional profile.
func (p *Provider) EmbedProfile(ctx context.Context, profile *talent.Profile) []float32 {
	if profile == nil {
		return nil
	}
	return p.EmbedText(ctx, joinFields(profile.Title, profile.Bio, profile.IndustryFocus))
}

// EmbedJob embeds the descriptive fields of a job posting.
func (p *Provider) EmbedJob(ctx context.Context, job *talent.Job) []float32 {
	if job == nil {
		return nil
	}
	return p.EmbedText(ctx, joinFields(job.Title, job.Description, job.Requirements, job.JobType, job.Location))
}

func (p *Provider) embed(ctx context.Context, text string) ([]float32, error) {
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			if err := util.WaitFor(ctx, defaultRetryDelay); err != nil {
				return nil, err
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, p.timeout)
		vec, err := p.client.Embed(callCtx, text)
		cancel()

		if err == nil {
			return vec, nil
		}

		lastErr = err
		if errors.Is(err, ErrUnauthorized) || ctx.Err() != nil {
			break
		}
	}

	return nil, lastErr
}

func joinFields(fields ...string) string {
	nonEmpty := make([]string, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			nonEmpty = append(nonEmpty, field)
		}
	}
	return strings.Join(nonEmpty, fieldSeparator)
}
