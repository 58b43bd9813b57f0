package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/dmitrijs2005/privachat/internal/dbx"
	"github.com/dmitrijs2005/privachat/internal/server/config"
	"github.com/dmitrijs2005/privachat/internal/server/models"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/envelopes"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/friendrequests"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/identities"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/refreshtokens"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// memStore backs every fake repository. Transactions are not simulated:
// sqlmock only checks that Begin/Commit/Rollback happen.
type memStore struct {
	mu         sync.Mutex
	seq        int
	identities map[string]*models.Identity
	tokens     map[string]*models.RefreshToken
	requests   map[string]*models.FriendRequest
	contacts   map[[2]string]time.Time
	envelopes  map[string]*models.Envelope

	// fail makes the named operation return the error.
	fail map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		identities: map[string]*models.Identity{},
		tokens:     map[string]*models.RefreshToken{},
		requests:   map[string]*models.FriendRequest{},
		contacts:   map[[2]string]time.Time{},
		envelopes:  map[string]*models.Envelope{},
		fail:       map[string]error{},
	}
}

func (m *memStore) next() time.Time {
	m.seq++
	return time.Date(2024, 1, 1, 0, 0, m.seq, 0, time.UTC)
}

func (m *memStore) byUsername(username string) *models.Identity {
	for _, i := range m.identities {
		if i.Username == username {
			return i
		}
	}
	return nil
}

// addIdentity registers username directly and returns its id.
func (m *memStore) addIdentity(username string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	m.identities[id] = &models.Identity{
		ID: id, Username: username, PublicKey: make([]byte, 32),
		DisplayName: username, CreatedAt: m.next(),
	}
	return id
}

type memIdentities struct{ *memStore }

func (r memIdentities) Create(_ context.Context, i *models.Identity) (*models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail["identities.Create"]; err != nil {
		return nil, err
	}
	if r.byUsername(i.Username) != nil {
		return nil, common.ErrorConflict
	}
	i.ID = uuid.NewString()
	i.CreatedAt = r.next()
	r.identities[i.ID] = i
	return i, nil
}

func (r memIdentities) GetByUsername(_ context.Context, username string) (*models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail["identities.GetByUsername"]; err != nil {
		return nil, err
	}
	if i := r.byUsername(username); i != nil {
		return i, nil
	}
	return nil, common.ErrorNotFound
}

func (r memIdentities) GetByID(_ context.Context, id string) (*models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.identities[id]; ok {
		return i, nil
	}
	return nil, common.ErrorNotFound
}

func (r memIdentities) UpdateProfile(_ context.Context, id, displayName, about string) (*models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.identities[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	i.DisplayName, i.About = displayName, about
	return i, nil
}

func (r memIdentities) Search(_ context.Context, query, excludingID string, limit int) ([]*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Profile
	for _, i := range r.identities {
		if i.ID == excludingID || !strings.Contains(strings.ToLower(i.Username), strings.ToLower(query)) {
			continue
		}
		if _, ok := r.contacts[[2]string{excludingID, i.ID}]; ok {
			continue
		}
		out = append(out, i.Profile())
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Username < out[b].Username })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memTokens struct{ *memStore }

func (r memTokens) Create(_ context.Context, userID, token string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail["tokens.Create"]; err != nil {
		return err
	}
	r.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (r memTokens) Consume(_ context.Context, token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail["tokens.Consume"]; err != nil {
		return nil, err
	}
	t, ok := r.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.tokens, token)
	return t, nil
}

func (r memTokens) PurgeExpired(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail["tokens.PurgeExpired"]; err != nil {
		return 0, err
	}
	var n int64
	now := time.Now()
	for k, t := range r.tokens {
		if t.UserID == userID && t.Expires.Before(now) {
			delete(r.tokens, k)
			n++
		}
	}
	return n, nil
}

type memRequests struct{ *memStore }

func (r memRequests) Create(_ context.Context, senderID, recipientID string) (*models.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, fr := range r.requests {
		if fr.SenderID == senderID && fr.RecipientID == recipientID && fr.Status == models.FriendRequestPending {
			return nil, common.ErrorConflict
		}
	}
	fr := &models.FriendRequest{
		ID: uuid.NewString(), SenderID: senderID, RecipientID: recipientID,
		SenderUsername: r.identities[senderID].Username, RecipientUsername: r.identities[recipientID].Username,
		Status: models.FriendRequestPending, CreatedAt: r.next(),
	}
	r.requests[fr.ID] = fr
	cp := *fr
	return &cp, nil
}

func (r memRequests) Get(_ context.Context, id string) (*models.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fr, ok := r.requests[id]; ok {
		cp := *fr
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (r memRequests) GetForUpdate(ctx context.Context, id string) (*models.FriendRequest, error) {
	return r.Get(ctx, id)
}

func (r memRequests) HasPending(_ context.Context, senderID, recipientID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, fr := range r.requests {
		if fr.SenderID == senderID && fr.RecipientID == recipientID && fr.Status == models.FriendRequestPending {
			return true, nil
		}
	}
	return false, nil
}

func (r memRequests) ListPending(_ context.Context, recipientID string) ([]*models.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.FriendRequest
	for _, fr := range r.requests {
		if fr.RecipientID == recipientID && fr.Status == models.FriendRequestPending {
			cp := *fr
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

func (r memRequests) Resolve(_ context.Context, id string, status models.FriendRequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fr, ok := r.requests[id]
	if !ok || fr.Status != models.FriendRequestPending {
		return common.ErrorConflict
	}
	fr.Status = status
	now := r.next()
	fr.RespondedAt = &now
	return nil
}

func (r memRequests) ResolvePending(_ context.Context, senderID, recipientID string, status models.FriendRequestStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, fr := range r.requests {
		if fr.SenderID == senderID && fr.RecipientID == recipientID && fr.Status == models.FriendRequestPending {
			fr.Status = status
			now := r.next()
			fr.RespondedAt = &now
			n++
		}
	}
	return n, nil
}

type memContacts struct{ *memStore }

func (r memContacts) Add(_ context.Context, ownerID, contactID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail["contacts.Add"]; err != nil {
		return err
	}
	if _, ok := r.contacts[[2]string{ownerID, contactID}]; !ok {
		r.contacts[[2]string{ownerID, contactID}] = r.next()
	}
	return nil
}

func (r memContacts) Exists(_ context.Context, ownerID, contactID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.contacts[[2]string{ownerID, contactID}]
	return ok, nil
}

func (r memContacts) ExistsByUsername(_ context.Context, owner, contact string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, c := r.byUsername(owner), r.byUsername(contact)
	if o == nil || c == nil {
		return false, nil
	}
	_, ok := r.contacts[[2]string{o.ID, c.ID}]
	return ok, nil
}

func (r memContacts) List(_ context.Context, ownerID string) ([]*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Contact
	for k, since := range r.contacts {
		if k[0] != ownerID {
			continue
		}
		i := r.identities[k[1]]
		out = append(out, &models.Contact{UserID: i.ID, Username: i.Username, DisplayName: i.DisplayName, Since: since})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Username < out[b].Username })
	return out, nil
}

type memEnvelopes struct{ *memStore }

func (r memEnvelopes) Create(_ context.Context, e *models.Envelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail["envelopes.Create"]; err != nil {
		return err
	}
	cp := *e
	r.envelopes[e.ID] = &cp
	return nil
}

func (r memEnvelopes) Get(_ context.Context, id string) (*models.Envelope, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.envelopes[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (r memEnvelopes) GetForUpdate(ctx context.Context, id string) (*models.Envelope, error) {
	return r.Get(ctx, id)
}

// conversation returns the envelopes between a and b oldest first.
func (r memEnvelopes) conversation(a, b string, keep func(*models.Envelope) bool) []*models.Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Envelope
	for _, e := range r.envelopes {
		if !(e.Sender == a && e.Recipient == b || e.Sender == b && e.Recipient == a) || !keep(e) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r memEnvelopes) ListConversation(_ context.Context, a, b string, after time.Time, limit int) ([]*models.Envelope, error) {
	out := r.conversation(a, b, func(e *models.Envelope) bool { return e.CreatedAt.After(after) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memEnvelopes) ListRecent(_ context.Context, a, b string, before time.Time, limit int) ([]*models.Envelope, error) {
	out := r.conversation(a, b, func(e *models.Envelope) bool { return before.IsZero() || e.CreatedAt.Before(before) })
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r memEnvelopes) SetReactions(_ context.Context, id string, reactions []models.Reaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.envelopes[id]
	if !ok {
		return common.ErrorNotFound
	}
	e.Reactions = reactions
	return nil
}

type fakeRepoManager struct{ store *memStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Identities(dbx.DBTX) identities.Repository    { return memIdentities{m.store} }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return memTokens{m.store}
}
func (m *fakeRepoManager) FriendRequests(dbx.DBTX) friendrequests.Repository {
	return memRequests{m.store}
}
func (m *fakeRepoManager) Contacts(dbx.DBTX) contacts.Repository   { return memContacts{m.store} }
func (m *fakeRepoManager) Envelopes(dbx.DBTX) envelopes.Repository { return memEnvelopes{m.store} }

// env is a fresh store plus a sqlmock DB that tolerates any number of
// transactions.
type env struct {
	db    *sql.DB
	mock  sqlmock.Sqlmock
	store *memStore
	rm    *fakeRepoManager
	cfg   *config.Config
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := newMemStore()
	return &env{
		db:    db,
		mock:  mock,
		store: store,
		rm:    &fakeRepoManager{store: store},
		cfg: &config.Config{
			SecretKey:                    "k",
			AccessTokenValidityDuration:  time.Hour,
			RefreshTokenValidityDuration: 2 * time.Hour,
			S3Bucket:                     "privachat",
			S3Region:                     "us-east-1",
			S3RootUser:                   "minio",
			S3RootPassword:               "minio123",
			S3BaseEndpoint:               "http://127.0.0.1:9000",
		},
	}
}

func (e *env) expectCommit() {
	e.mock.ExpectBegin()
	e.mock.ExpectCommit()
}

func (e *env) expectRollback() {
	e.mock.ExpectBegin()
	e.mock.ExpectRollback()
}

func (e *env) addEnvelope(sender, recipient string) *models.Envelope {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	env := &models.Envelope{
		ID: uuid.NewString(), Sender: sender, Recipient: recipient,
		Ciphertext: []byte(fmt.Sprintf("ct-%d", e.store.seq)), IV: []byte("iv"),
		EncryptedKey: []byte("ek"), SenderEncryptedKey: []byte("sek"),
		CreatedAt: e.store.next(),
	}
	e.store.envelopes[env.ID] = env
	return env
}
