// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"sentence-analyzer/internal/catalog"
	"sentence-analyzer/internal/common/config"
	"sentence-analyzer/internal/common/database"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/llm"
	"sentence-analyzer/internal/pipeline"
	"sentence-analyzer/internal/prompts"
	"sentence-analyzer/internal/rpc/endpointpb"
	"sentence-analyzer/internal/rpc/sentencepb"
	"sentence-analyzer/internal/service"
)

const (
	catalogFile = "../../configs/endpoints.yaml"
	callerEmail = "john@example.com"
	sentence    = "schedule a meeting tomorrow at 2pm with John"
)

// fakeOllama answers /api/generate according to which prompt template it sees.
type fakeOllama struct {
	calls atomic.Int32
}

func (f *fakeOllama) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)

	var req struct {
		Model  string `json:"model"`
		Prompt string `json:"prompt"`
	}
	body, _ := io.ReadAll(r.Body)
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var answer string
	switch {
	case strings.Contains(req.Prompt, "Map these input fields"):
		answer = `{"location": "\"office\""}`
	case strings.Contains(req.Prompt, "choose the action"):
		answer = "The action is:\n\"schedule meeting\""
	case strings.Contains(req.Prompt, "Extract the actions"):
		answer = "```json\n{\"endpoints\": [{\"action\": \"schedule meeting\", \"fields\": {\"time\": \"tomorrow at 2pm\", \"with\": \"John\",}}]}\n```"
	default:
		http.Error(w, "unexpected prompt", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"model": req.Model, "response": answer, "done": true})
}

type environment struct {
	client sentencepb.SentenceServiceClient
	ollama *fakeOllama
	redis  *miniredis.Miniredis
}

func dialer(lis *bufconn.Listener) grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

// startEnvironment wires the whole service: a remote catalog served from the
// catalog file, a Redis cache in front of it, an Ollama-compatible model
// server and the analysis service itself.
func startEnvironment(t *testing.T) *environment {
	t.Helper()
	log := logger.NewNoOpLogger()

	// Remote endpoint service.
	catalogLis := bufconn.Listen(1 << 20)
	catalogSrv := grpc.NewServer()
	endpointpb.RegisterEndpointServiceServer(catalogSrv, catalog.NewServer(catalog.NewFileSource(catalogFile), 2, log))
	go func() { _ = catalogSrv.Serve(catalogLis) }()
	t.Cleanup(catalogSrv.Stop)

	remote := catalog.NewRemoteSource("passthrough:///catalog", 5*time.Second,
		dialer(catalogLis), grpc.WithTransportCredentials(insecure.NewCredentials()))
	t.Cleanup(func() { _ = remote.Close() })

	mr := miniredis.RunT(t)
	cache := database.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = cache.Close() })

	source := catalog.NewCachedSource(
		catalog.NewFallbackSource(remote, catalog.NewFileSource(catalogFile), log),
		cache, time.Minute, log)

	// Model server.
	ollama := &fakeOllama{}
	modelSrv := httptest.NewServer(ollama)
	t.Cleanup(modelSrv.Close)

	cfg := &config.Config{}
	cfg.Providers.Default = llm.ProviderOllama
	cfg.Providers.HTTPTimeout = 5000
	cfg.Providers.Ollama.Host = modelSrv.URL
	cfg.Models.SentenceToJSON = config.ModelConfig{Name: "extraction", Ollama: "llama3.1:8b"}
	cfg.Models.FindEndpoint = config.ModelConfig{Name: "matcher", Ollama: "llama3.1:8b"}
	cfg.Models.MatchFields = config.ModelConfig{Name: "fields", Ollama: "llama3.1:8b"}

	provider, err := llm.New(cfg.Providers, "", log)
	require.NoError(t, err)

	engine := service.BuildEngine(cfg, provider, source, prompts.Default(log), log,
		pipeline.WithSleep(func(context.Context, time.Duration) error { return nil }))

	// Analysis service.
	lis := bufconn.Listen(1 << 20)
	srv, _ := service.NewGRPCServer(config.ServerConfig{}, service.New(engine, cfg.Identity, log), log)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///analyzer", dialer(lis),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &environment{
		client: sentencepb.NewSentenceServiceClient(conn),
		ollama: ollama,
		redis:  mr,
	}
}

func (e *environment) analyze(t *testing.T, email, text string) (*sentencepb.SentenceResponse, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, "email", email, "client-id", "e2e")

	stream, err := e.client.AnalyzeSentence(ctx, &sentencepb.SentenceRequest{Sentence: text})
	require.NoError(t, err)
	return stream.Recv()
}

func TestFullE2E(t *testing.T) {
	env := startEnvironment(t)

	t.Log("🚀 Analyzing sentence through the full service...")
	resp, err := env.analyze(t, callerEmail, sentence)
	require.NoError(t, err)

	assert.Equal(t, "schedule_meeting", resp.EndpointId)
	assert.Equal(t, "Schedule a meeting with one or more participants", resp.EndpointDescription)
	assert.JSONEq(t,
		`{"endpoints":[{"action":"schedule meeting","fields":{"time":"tomorrow at 2pm","with":"John"}}]}`,
		resp.JsonOutput)

	values := make(map[string]string)
	for _, p := range resp.Parameters {
		values[p.Name] = p.GetSemanticValue()
	}
	assert.Equal(t, "tomorrow at 2pm", values["time"])
	assert.Equal(t, "John", values["participants"])
	assert.Equal(t, "office", values["location"])
	assert.Equal(t, int32(3), env.ollama.calls.Load())
	t.Log("✅ schedule_meeting resolved with time and participants")

	assert.True(t, env.redis.Exists(catalog.CacheKey(callerEmail)), "catalog cached for the caller")

	_, err = env.analyze(t, callerEmail, sentence)
	require.NoError(t, err)
	assert.Equal(t, int32(6), env.ollama.calls.Load())
	t.Log("✅ second request served from the cached catalog")
}

func TestE2E_InvalidIdentityMakesNoModelCalls(t *testing.T) {
	env := startEnvironment(t)

	_, err := env.analyze(t, "not-an-email", sentence)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, int32(0), env.ollama.calls.Load())
}
