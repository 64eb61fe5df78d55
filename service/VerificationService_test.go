package service

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verify-server/model"
)

// fakeStore implements repository.CodeStore with scriptable failures.
type fakeStore struct {
	mu        sync.Mutex
	connected bool
	failSet   bool

	data map[string]string
	ttls map[string]time.Duration

	getCalls int
	setCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		connected: true,
		data:      map[string]string{},
		ttls:      map[string]time.Duration{},
	}
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	val, ok := f.data[key]
	return val, ok
}

func (f *fakeStore) Exists(ctx context.Context, key string) (bool, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok, true
}

func (f *fakeStore) SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.failSet {
		return false
	}
	f.data[key] = value
	f.ttls[key] = ttl
	return true
}

func (f *fakeStore) Ping(ctx context.Context) bool { return f.connected }
func (f *fakeStore) IsConnected() bool             { return f.connected }
func (f *fakeStore) Quit()                         {}

// fakeDispatcher records the last dispatch and can be told to fail.
type fakeDispatcher struct {
	fail bool

	calls int
	to    string
	body  string
}

func (f *fakeDispatcher) Dispatch(to, subject, body string) (string, error) {
	f.calls++
	f.to = to
	f.body = body
	if f.fail {
		return "", errors.New("smtp: connection refused")
	}
	return "<receipt@test>", nil
}

var sixDigits = regexp.MustCompile(`^[0-9]{6}$`)

// TestIssueCodeSuccess covers the happy path: a 6-digit code lands under the
// owner key with the policy TTL and the same code goes out in the mail.
func TestIssueCodeSuccess(t *testing.T) {
	store := newFakeStore()
	dispatcher := &fakeDispatcher{}
	svc := NewVerificationService(store, dispatcher)

	outcome := svc.IssueCode(context.Background(), "user@example.com")
	assert.Equal(t, model.ErrSuccess, outcome)

	code, ok := store.data["verify_code_user@example.com"]
	require.True(t, ok, "code must be persisted")
	assert.Regexp(t, sixDigits, code)
	assert.Equal(t, 300*time.Second, store.ttls["verify_code_user@example.com"])

	assert.Equal(t, 1, dispatcher.calls)
	assert.Equal(t, "user@example.com", dispatcher.to)
	assert.Contains(t, dispatcher.body, code)
}

// TestIssueCodeInvalidEmail verifies rejects happen before any dependency is
// touched.
func TestIssueCodeInvalidEmail(t *testing.T) {
	for _, email := range []string{"", "not-an-email", "user@nodot"} {
		store := newFakeStore()
		dispatcher := &fakeDispatcher{}
		svc := NewVerificationService(store, dispatcher)

		outcome := svc.IssueCode(context.Background(), email)

		assert.Equal(t, model.ErrInvalidEmail, outcome, "email %q", email)
		assert.Zero(t, store.getCalls, "store must not be read")
		assert.Zero(t, store.setCalls, "store must not be written")
		assert.Zero(t, dispatcher.calls, "nothing may be dispatched")
	}
}

// TestIssueCodeStoreDisconnected verifies the fail-fast branch: no
// generation, no persistence, no dispatch.
func TestIssueCodeStoreDisconnected(t *testing.T) {
	store := newFakeStore()
	store.connected = false
	dispatcher := &fakeDispatcher{}
	svc := NewVerificationService(store, dispatcher)

	outcome := svc.IssueCode(context.Background(), "user@example.com")

	assert.Equal(t, model.ErrRedis, outcome)
	assert.Zero(t, store.getCalls)
	assert.Zero(t, store.setCalls)
	assert.Zero(t, dispatcher.calls)
}

// TestIssueCodePersistFailure maps a failed write to the store outcome and
// never dispatches an unpersisted code.
func TestIssueCodePersistFailure(t *testing.T) {
	store := newFakeStore()
	store.failSet = true
	dispatcher := &fakeDispatcher{}
	svc := NewVerificationService(store, dispatcher)

	outcome := svc.IssueCode(context.Background(), "user@example.com")

	assert.Equal(t, model.ErrRedis, outcome)
	assert.Zero(t, dispatcher.calls, "a code that was not persisted must not be sent")
}

// TestIssueCodeDispatchFailure verifies the accepted inconsistency: dispatch
// fails, the outcome is the generic exception, and the persisted code stays.
func TestIssueCodeDispatchFailure(t *testing.T) {
	store := newFakeStore()
	dispatcher := &fakeDispatcher{fail: true}
	svc := NewVerificationService(store, dispatcher)

	outcome := svc.IssueCode(context.Background(), "user@example.com")

	assert.Equal(t, model.ErrException, outcome)
	code, ok := store.data["verify_code_user@example.com"]
	require.True(t, ok, "persist is not rolled back on dispatch failure")
	assert.Regexp(t, sixDigits, code)
}

// TestIssueCodeOverwrites verifies a second issuance replaces the stored
// code rather than blocking on the unexpired one.
func TestIssueCodeOverwrites(t *testing.T) {
	store := newFakeStore()
	dispatcher := &fakeDispatcher{}
	svc := NewVerificationService(store, dispatcher)

	require.Equal(t, model.ErrSuccess, svc.IssueCode(context.Background(), "user@example.com"))
	first := store.data["verify_code_user@example.com"]

	require.Equal(t, model.ErrSuccess, svc.IssueCode(context.Background(), "user@example.com"))
	second := store.data["verify_code_user@example.com"]

	assert.Equal(t, 2, store.setCalls)
	assert.Regexp(t, sixDigits, first)
	assert.Regexp(t, sixDigits, second)
	assert.Contains(t, dispatcher.body, second, "the latest code is the live one")
}
