package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chirpnest/chirpy/internal/auth"
	domainauth "github.com/chirpnest/chirpy/internal/domain/auth"
	"github.com/chirpnest/chirpy/internal/domain/chirp"
	"github.com/chirpnest/chirpy/internal/domain/user"
)

const (
	testSecret   = "handler-test-secret"
	testPolkaKey = "f271c81ff7084ee5b99a5091b42d486e"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]user.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.users {
		if rec.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &rec, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.users {
		if rec.Email == email {
			out := rec
			return &out, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *memUserRepo) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	for id, rec := range r.users {
		if id != u.ID && rec.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) UpgradeToChirpyRed(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	rec.IsChirpyRed = true
	r.users[id] = rec
	return nil
}

func (r *memUserRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[uuid.UUID]user.User)
	return nil
}

type memTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]domainauth.RefreshToken
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: make(map[string]domainauth.RefreshToken)}
}

func (r *memTokenRepo) Create(_ context.Context, t *domainauth.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[t.Token] = *t
	return nil
}

func (r *memTokenRepo) FindValid(_ context.Context, token string) (*domainauth.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.tokens[token]
	if !ok || !rec.Live(time.Now().UTC()) {
		return nil, domainauth.ErrTokenNotFound
	}
	out := rec
	return &out, nil
}

func (r *memTokenRepo) Revoke(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.tokens[token]
	if !ok || rec.RevokedAt != nil {
		return nil
	}
	now := time.Now().UTC()
	rec.RevokedAt = &now
	rec.UpdatedAt = now
	r.tokens[token] = rec
	return nil
}

type memChirpRepo struct {
	mu     sync.Mutex
	chirps []chirp.Chirp
}

func newMemChirpRepo() *memChirpRepo { return &memChirpRepo{} }

func (r *memChirpRepo) Create(_ context.Context, c *chirp.Chirp) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = uuid.New()
	// strictly increasing timestamps keep the list order deterministic
	c.CreatedAt = time.Now().UTC().Add(time.Duration(len(r.chirps)) * time.Millisecond)
	c.UpdatedAt = c.CreatedAt
	r.chirps = append(r.chirps, *c)
	return nil
}

func (r *memChirpRepo) GetByID(_ context.Context, id uuid.UUID) (*chirp.Chirp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.chirps {
		if rec.ID == id {
			out := rec
			return &out, nil
		}
	}
	return nil, chirp.ErrNotFound
}

func (r *memChirpRepo) List(_ context.Context, authorID *uuid.UUID, order chirp.Sort) ([]*chirp.Chirp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*chirp.Chirp
	for i := range r.chirps {
		if authorID != nil && r.chirps[i].UserID != *authorID {
			continue
		}
		rec := r.chirps[i]
		out = append(out, &rec)
	}
	if order == chirp.SortDesc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func (r *memChirpRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.chirps {
		if rec.ID == id {
			r.chirps = append(r.chirps[:i], r.chirps[i+1:]...)
			return nil
		}
	}
	return chirp.ErrNotFound
}

type testServer struct {
	mux    http.Handler
	uc     *auth.Usecase
	users  *memUserRepo
	chirps *memChirpRepo
	tokens *memTokenRepo
}

func newTestServer(t *testing.T, env string) *testServer {
	t.Helper()
	users := newMemUserRepo()
	tokens := newMemTokenRepo()
	chirps := newMemChirpRepo()
	uc := auth.NewUsecase(users, tokens, auth.Config{Secret: []byte(testSecret)})
	h := NewHandler(uc, users, chirps, Opts{
		Logger:   zap.NewNop(),
		Metrics:  newMetrics(prometheus.NewRegistry()),
		Env:      env,
		PolkaKey: testPolkaKey,
		AppDir:   t.TempDir(),
	})
	return &testServer{mux: h.Routes(), uc: uc, users: users, chirps: chirps, tokens: tokens}
}

// do issues a request against the in-memory mux. A non-empty token is sent
// as a bearer Authorization header; a non-nil body is JSON-encoded.
func (ts *testServer) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.mux.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into))
}

type sessionResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	IsChirpyRed  bool      `json:"is_chirpy_red"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
}

func (ts *testServer) register(t *testing.T, email, password string) sessionResponse {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/users", "", credentialsRequest{Email: email, Password: password})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp sessionResponse
	decodeBody(t, w, &resp)
	return resp
}

func (ts *testServer) login(t *testing.T, email, password string) sessionResponse {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/login", "", credentialsRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code)
	var resp sessionResponse
	decodeBody(t, w, &resp)
	return resp
}
