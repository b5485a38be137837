// Package llmtest provides a scripted language model for tests.
package llmtest

import (
	"context"
	"strings"
	"sync"

	"sentence-analyzer/internal/models"
)

// Reply is one scripted answer.
type Reply struct {
	Text string
	Err  error
}

// Provider answers prompts from a script. Route matches a prompt substring to
// a reply; unmatched prompts consume Queue in order.
type Provider struct {
	mu      sync.Mutex
	Routes  map[string]Reply
	Queue   []Reply
	prompts []string
	params  []models.ModelParams
}

func New() *Provider {
	return &Provider{Routes: make(map[string]Reply)}
}

// On registers a reply for any prompt containing marker.
func (p *Provider) On(marker, text string) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Routes[marker] = Reply{Text: text}
	return p
}

// OnError registers a failure for any prompt containing marker.
func (p *Provider) OnError(marker string, err error) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Routes[marker] = Reply{Err: err}
	return p
}

// Enqueue appends replies used for prompts no route matches.
func (p *Provider) Enqueue(replies ...Reply) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Queue = append(p.Queue, replies...)
	return p
}

func (p *Provider) Name() string {
	return "fake"
}

func (p *Provider) Generate(_ context.Context, prompt string, params models.ModelParams) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.prompts = append(p.prompts, prompt)
	p.params = append(p.params, params)

	for marker, reply := range p.Routes {
		if strings.Contains(prompt, marker) {
			return reply.Text, reply.Err
		}
	}
	if len(p.Queue) > 0 {
		reply := p.Queue[0]
		p.Queue = p.Queue[1:]
		return reply.Text, reply.Err
	}
	return "", nil
}

// Calls returns the number of Generate calls so far.
func (p *Provider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.prompts)
}

// Prompts returns a copy of every prompt received.
func (p *Provider) Prompts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.prompts...)
}

// Params returns a copy of the model params of every call.
func (p *Provider) Params() []models.ModelParams {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.ModelParams(nil), p.params...)
}
