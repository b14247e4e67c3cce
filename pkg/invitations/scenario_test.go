// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/access"
	"github.com/canonical/agency-service/pkg/notifications"
)

// memStore backs the invitation, access and notification services with maps
// so that whole flows can be exercised without a database.
type memStore struct {
	mu sync.Mutex

	users         map[string]*types.User
	invitations   map[string]*types.Invitation
	subAccounts   map[string]*types.SubAccount
	permissions   []*types.Permission
	notifications []*types.Notification
	tasks         map[string]types.Role
	seq           int
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[string]*types.User),
		invitations: make(map[string]*types.Invitation),
		subAccounts: make(map[string]*types.SubAccount),
		tasks:       make(map[string]types.Role),
	}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s%d", prefix, m.seq)
}

func (m *memStore) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) CreateTeamUser(_ context.Context, u *types.User) (*types.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.users[u.ID]; ok {
		if existing.AgencyID == "" {
			existing.AgencyID, existing.Role = u.AgencyID, u.Role
			c := *existing
			return &c, true, nil
		}
		c := *existing
		return &c, false, nil
	}

	c := *u
	m.users[u.ID] = &c
	return u, true, nil
}

func (m *memStore) UpsertRoleSyncTask(_ context.Context, userID string, role types.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks[userID] = role
	return nil
}

func (m *memStore) CreateInvitation(_ context.Context, i *types.Invitation) (*types.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.invitations {
		if existing.Email == i.Email && existing.Status == types.InvitationPending {
			return nil, storage.ErrDuplicateKey
		}
	}

	c := *i
	c.ID = m.nextID("i")
	c.Status = types.InvitationPending
	m.invitations[c.ID] = &c
	return &c, nil
}

func (m *memStore) GetInvitationByID(_ context.Context, id string) (*types.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i, ok := m.invitations[id]; ok {
		c := *i
		return &c, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) GetPendingInvitationByEmail(_ context.Context, email string) (*types.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, i := range m.invitations {
		if i.Email == email && i.Status == types.InvitationPending {
			c := *i
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) ListInvitationsByAgencyID(_ context.Context, agencyID string) ([]*types.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*types.Invitation{}
	for _, i := range m.invitations {
		if i.AgencyID == agencyID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *memStore) transition(id string, status types.InvitationStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.invitations[id]
	if !ok || i.Status != types.InvitationPending {
		return false, nil
	}
	i.Status = status
	return true, nil
}

func (m *memStore) AcceptInvitation(_ context.Context, id string) (bool, error) {
	return m.transition(id, types.InvitationAccepted)
}

func (m *memStore) CancelInvitation(_ context.Context, id string) (bool, error) {
	return m.transition(id, types.InvitationCancelled)
}

func (m *memStore) GetSubAccountByID(_ context.Context, id string) (*types.SubAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.subAccounts[id]; ok {
		return s, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) ListSubAccountsByAgencyID(_ context.Context, agencyID string) ([]*types.SubAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*types.SubAccount{}
	for _, s := range m.subAccounts {
		if s.AgencyID == agencyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) GetEffectivePermission(_ context.Context, email, subAccountID string) (*types.Permission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.permissions) - 1; i >= 0; i-- {
		p := m.permissions[i]
		if p.Email == email && p.SubAccountID == subAccountID {
			return p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) ListEffectivePermissions(ctx context.Context, email, agencyID string) ([]*types.Permission, error) {
	subs, _ := m.ListSubAccountsByAgencyID(ctx, agencyID)

	out := []*types.Permission{}
	for _, s := range subs {
		if p, err := m.GetEffectivePermission(ctx, email, s.ID); err == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) CreateNotification(_ context.Context, n *types.Notification) (*types.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := *n
	c.ID = m.nextID("n")
	m.notifications = append(m.notifications, &c)
	return &c, nil
}

func (m *memStore) ListNotifications(_ context.Context, agencyID, subAccountID string, _, _ int64) ([]*types.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*types.Notification{}
	for _, n := range m.notifications {
		if n.AgencyID == agencyID && (subAccountID == "" || n.SubAccountID == subAccountID) {
			out = append(out, n)
		}
	}
	return out, nil
}

type fakeKratos struct {
	identities map[string]string
	roles      map[string]types.Role
}

func (k *fakeKratos) GetIdentityIDByEmail(_ context.Context, email string) (string, error) {
	return k.identities[email], nil
}

func (k *fakeKratos) CreateIdentity(_ context.Context, email string) (string, error) {
	id := "k-" + email
	k.identities[email] = id
	return id, nil
}

func (k *fakeKratos) CreateRecoveryLink(_ context.Context, identityID string, _ string) (string, string, error) {
	return "https://login.example.com/recovery?id=" + identityID, "000000", nil
}

func (k *fakeKratos) Sync(_ context.Context, userID string, role types.Role) error {
	k.roles[userID] = role
	return nil
}

type noopMirror struct{}

func (noopMirror) AssignAgencyRole(context.Context, string, string, types.Role) error { return nil }

type world struct {
	store       *memStore
	kratos      *fakeKratos
	access      *access.Service
	invitations *Service
}

func newWorld() *world {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("agency-service", logger)

	store := newMemStore()
	kratos := &fakeKratos{identities: map[string]string{}, roles: map[string]types.Role{}}
	acc := access.NewService(store, tracer, monitor, logger)
	notifier := notifications.NewService(store, acc, tracer, monitor, logger)

	return &world{
		store:       store,
		kratos:      kratos,
		access:      acc,
		invitations: NewService(store, store, acc, notifier, kratos, noopMirror{}, kratos, nil, "24h", tracer, monitor, logger),
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	w := newWorld()
	w.store.users["owner"] = &types.User{ID: "owner", Email: "alice@x.com", Role: types.RoleAgencyOwner, AgencyID: "a1"}
	w.store.invitations["i1"] = &types.Invitation{ID: "i1", Email: "bob@x.com", AgencyID: "a1", Role: types.RoleSubAccountUser, Status: types.InvitationPending}

	rc := types.RequestContext{Caller: &types.Identity{ID: "u1", Email: "bob@x.com", FirstName: "Bob"}}

	first, err := w.invitations.Reconcile(context.Background(), rc)
	require.NoError(t, err)

	second, err := w.invitations.Reconcile(context.Background(), rc)
	require.NoError(t, err)

	assert.Equal(t, "a1", first)
	assert.Equal(t, first, second)
	assert.Len(t, w.store.users, 2)
	assert.Len(t, w.store.notifications, 1)
	assert.Equal(t, "Bob has accepted the invitation", w.store.notifications[0].Message)
	assert.Equal(t, types.InvitationAccepted, w.store.invitations["i1"].Status)
	assert.Equal(t, types.RoleSubAccountUser, w.kratos.roles["u1"])
}

func TestInviteAndGrantFlow(t *testing.T) {
	w := newWorld()
	ctx := context.Background()

	alice := &types.Identity{ID: "owner", Email: "alice@x.com"}
	w.store.users["owner"] = &types.User{ID: "owner", Email: "alice@x.com", Role: types.RoleAgencyOwner, AgencyID: "a1"}
	w.store.subAccounts["s1"] = &types.SubAccount{ID: "s1", AgencyID: "a1", Name: "Shop"}

	invite, err := w.invitations.CreateInvitation(ctx, types.RequestContext{Caller: alice, Scope: types.AgencyScope("a1")}, "bob@x.com", types.RoleSubAccountUser)
	require.NoError(t, err)
	assert.Equal(t, "https://login.example.com/recovery?id=k-bob@x.com", invite.Link)

	_, err = w.invitations.CreateInvitation(ctx, types.RequestContext{Caller: alice, Scope: types.AgencyScope("a1")}, "bob@x.com", types.RoleSubAccountUser)
	assert.ErrorIs(t, err, ErrInvitationPending)

	bob := &types.Identity{ID: "u1", Email: "bob@x.com"}
	sub := types.RequestContext{Caller: bob, Scope: types.SubAccountScope("a1", "s1")}

	d, err := w.access.Authorize(ctx, sub)
	require.NoError(t, err)
	assert.Equal(t, access.ReasonNotProvisioned, d.Reason)

	agencyID, err := w.invitations.Reconcile(ctx, types.RequestContext{Caller: bob})
	require.NoError(t, err)
	assert.Equal(t, "a1", agencyID)

	d, err = w.access.Authorize(ctx, sub)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonNoGrant, d.Reason)

	w.store.permissions = append(w.store.permissions, &types.Permission{ID: "p1", Email: "bob@x.com", SubAccountID: "s1", Access: true})

	d, err = w.access.Authorize(ctx, sub)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	w.store.permissions = append(w.store.permissions, &types.Permission{ID: "p2", Email: "bob@x.com", SubAccountID: "s1", Access: false})

	d, err = w.access.Authorize(ctx, sub)
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	messages := []string{}
	for _, n := range w.store.notifications {
		messages = append(messages, n.Message)
	}
	assert.Equal(t, []string{"alice@x.com invited bob@x.com", "bob@x.com has accepted the invitation"}, messages)
}

func TestEmailCaseDoesNotSplitIdentities(t *testing.T) {
	w := newWorld()
	ctx := context.Background()

	alice := &types.Identity{ID: "owner", Email: "Alice@X.com"}
	w.store.users["owner"] = &types.User{ID: "owner", Email: "alice@x.com", Role: types.RoleAgencyOwner, AgencyID: "a1"}
	w.store.subAccounts["s1"] = &types.SubAccount{ID: "s1", AgencyID: "a1", Name: "Shop"}

	_, err := w.invitations.CreateInvitation(ctx, types.RequestContext{Caller: alice, Scope: types.AgencyScope("a1")}, "Bob@X.com", types.RoleSubAccountUser)
	require.NoError(t, err)

	bob := &types.Identity{ID: "u1", Email: " BOB@x.com"}

	agencyID, err := w.invitations.Reconcile(ctx, types.RequestContext{Caller: bob})
	require.NoError(t, err)
	assert.Equal(t, "a1", agencyID)
	assert.Equal(t, "bob@x.com", w.store.users["u1"].Email)

	w.store.permissions = append(w.store.permissions, &types.Permission{ID: "p1", Email: "bob@x.com", SubAccountID: "s1", Access: true})

	d, err := w.access.Authorize(ctx, types.RequestContext{Caller: bob, Scope: types.SubAccountScope("a1", "s1")})
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}
