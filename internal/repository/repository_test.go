package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/hackathon-hub/internal/codec"
	"github.com/yukikurage/hackathon-hub/internal/constants"
	"github.com/yukikurage/hackathon-hub/internal/models"
	"github.com/yukikurage/hackathon-hub/internal/storage"
)

// RepositoryTestSuite exercises the repositories against an in-memory backend
type RepositoryTestSuite struct {
	suite.Suite
	backend        *storage.MemoryBackend
	store          *storage.LocalStorage
	hackathons     HackathonRepository
	session        SessionRepository
	participations ParticipationRepository
	accounts       AccountRepository
}

// SetupTest runs before each test
func (suite *RepositoryTestSuite) SetupTest() {
	suite.backend = storage.NewMemoryBackend()
	suite.store = storage.New(suite.backend)
	suite.hackathons = NewHackathonRepository(suite.store)
	suite.session = NewSessionRepository(suite.store)
	suite.participations = NewParticipationRepository(suite.store, suite.hackathons, suite.session)
	suite.accounts = NewAccountRepository(suite.store)
}

func (suite *RepositoryTestSuite) createHackathon(id, title, hostID string) models.Hackathon {
	h := models.Hackathon{
		ID:          id,
		Title:       title,
		Description: title + " description",
		Category:    models.CategoryAIML,
		BannerURL:   "https://example.com/" + id + ".png",
		FormLink:    "https://forms.example.com/" + id,
		CreatedAt:   "2025-03-01T10:00:00Z",
		HostID:      hostID,
	}
	suite.Require().NoError(suite.hackathons.Create(&h))
	return h
}

func (suite *RepositoryTestSuite) signIn(id string) models.User {
	user := models.User{ID: id, Name: "User " + id, Email: id + "@example.com", Role: models.RoleParticipant}
	suite.Require().NoError(suite.session.Set(&user))
	return user
}

func (suite *RepositoryTestSuite) TestEmptyStore() {
	hackathons, err := suite.hackathons.List()
	suite.Require().NoError(err)
	suite.NotNil(hackathons)
	suite.Empty(hackathons)

	ids, err := suite.participations.ListHackathonIDs("anyone")
	suite.Require().NoError(err)
	suite.Empty(ids)

	joined, err := suite.participations.Has("anyone", "h1")
	suite.Require().NoError(err)
	suite.False(joined)

	user, err := suite.session.Get()
	suite.Require().NoError(err)
	suite.Nil(user)

	found, err := suite.hackathons.FindByID("h1")
	suite.Require().NoError(err)
	suite.Nil(found)
}

func (suite *RepositoryTestSuite) TestCreate_KeepsCreationOrder() {
	h1 := suite.createHackathon("h1", "First", "host")
	h2 := suite.createHackathon("h2", "Second", "host")

	hackathons, err := suite.hackathons.List()
	suite.Require().NoError(err)
	suite.Equal([]models.Hackathon{h1, h2}, hackathons)
}

func (suite *RepositoryTestSuite) TestCreate_DoesNotCheckUniqueness() {
	suite.createHackathon("dup", "One", "host")
	suite.createHackathon("dup", "Two", "host")

	hackathons, err := suite.hackathons.List()
	suite.Require().NoError(err)
	suite.Len(hackathons, 2)

	found, err := suite.hackathons.FindByID("dup")
	suite.Require().NoError(err)
	suite.Equal("One", found.Title)
}

func (suite *RepositoryTestSuite) TestUpdate_ReplacesOnlyMatchingEntry() {
	h1 := suite.createHackathon("h1", "First", "host")
	h2 := suite.createHackathon("h2", "Second", "host")
	h3 := suite.createHackathon("h3", "Third", "host")

	edited := h2
	edited.Title = "Second, renamed"
	edited.Category = models.CategoryIoT
	suite.Require().NoError(suite.hackathons.Update(&edited))

	hackathons, err := suite.hackathons.List()
	suite.Require().NoError(err)
	suite.Equal([]models.Hackathon{h1, edited, h3}, hackathons)
}

func (suite *RepositoryTestSuite) TestUpdate_MissingIsNoOp() {
	h1 := suite.createHackathon("h1", "First", "host")

	suite.Require().NoError(suite.hackathons.Update(&models.Hackathon{ID: "nope", Title: "ghost"}))

	hackathons, err := suite.hackathons.List()
	suite.Require().NoError(err)
	suite.Equal([]models.Hackathon{h1}, hackathons)
}

func (suite *RepositoryTestSuite) TestDelete_RemovesMatchingEntriesInOrder() {
	h1 := suite.createHackathon("h1", "First", "host")
	suite.createHackathon("h2", "Second", "host")
	h3 := suite.createHackathon("h3", "Third", "host")
	suite.createHackathon("h2", "Second again", "host")

	suite.Require().NoError(suite.hackathons.Delete("h2"))

	hackathons, err := suite.hackathons.List()
	suite.Require().NoError(err)
	suite.Equal([]models.Hackathon{h1, h3}, hackathons)

	suite.Require().NoError(suite.hackathons.Delete("missing"))
	hackathons, err = suite.hackathons.List()
	suite.Require().NoError(err)
	suite.Len(hackathons, 2)
}

func (suite *RepositoryTestSuite) TestParticipation_Lifecycle() {
	suite.createHackathon("h1", "First", "host")
	suite.signIn("u1")

	has := func() bool {
		joined, err := suite.participations.Has("u1", "h1")
		suite.Require().NoError(err)
		return joined
	}

	suite.False(has())
	suite.Require().NoError(suite.participations.Add("u1", "h1"))
	suite.True(has())
	suite.Require().NoError(suite.participations.Remove("u1", "h1"))
	suite.False(has())

	suite.Require().NoError(suite.participations.Add("u1", "h1"))
	suite.Require().NoError(suite.participations.Remove("u1", "h1"))
	suite.Require().NoError(suite.participations.Add("u1", "h1"))
	suite.True(has())
}

func (suite *RepositoryTestSuite) TestParticipation_AddIsIdempotent() {
	suite.createHackathon("h1", "First", "host")
	suite.signIn("u1")

	suite.Require().NoError(suite.participations.Add("u1", "h1"))
	suite.Require().NoError(suite.participations.Add("u1", "h1"))

	ids, err := suite.participations.ListHackathonIDs("u1")
	suite.Require().NoError(err)
	suite.Equal([]string{"h1"}, ids)

	h, err := suite.hackathons.FindByID("h1")
	suite.Require().NoError(err)
	suite.Require().Len(h.Participants, 1)
	suite.Equal("u1", h.Participants[0].ID)
}

func (suite *RepositoryTestSuite) TestParticipation_JoinScenario() {
	suite.createHackathon("h1", "X", "u1")
	participant := suite.signIn("u2")

	suite.Require().NoError(suite.participations.Add("u2", "h1"))

	joined, err := suite.participations.Has("u2", "h1")
	suite.Require().NoError(err)
	suite.True(joined)

	h, err := suite.hackathons.FindByID("h1")
	suite.Require().NoError(err)
	suite.Equal([]models.User{participant}, h.Participants)
}

func (suite *RepositoryTestSuite) TestParticipation_MirrorsSessionUser() {
	suite.createHackathon("h1", "X", "host")
	sessionUser := suite.signIn("u2")

	suite.Require().NoError(suite.participations.Add("u1", "h1"))

	joined, err := suite.participations.Has("u1", "h1")
	suite.Require().NoError(err)
	suite.True(joined)

	joined, err = suite.participations.Has("u2", "h1")
	suite.Require().NoError(err)
	suite.False(joined)

	h, err := suite.hackathons.FindByID("h1")
	suite.Require().NoError(err)
	suite.Equal([]models.User{sessionUser}, h.Participants)
}

func (suite *RepositoryTestSuite) TestParticipation_AddWithoutHackathonKeepsIndex() {
	suite.signIn("u1")

	suite.Require().NoError(suite.participations.Add("u1", "missing"))

	joined, err := suite.participations.Has("u1", "missing")
	suite.Require().NoError(err)
	suite.True(joined)
}

func (suite *RepositoryTestSuite) TestParticipation_AddWithoutSessionSkipsMirror() {
	suite.createHackathon("h1", "First", "host")

	suite.Require().NoError(suite.participations.Add("u1", "h1"))

	joined, err := suite.participations.Has("u1", "h1")
	suite.Require().NoError(err)
	suite.True(joined)

	h, err := suite.hackathons.FindByID("h1")
	suite.Require().NoError(err)
	suite.Empty(h.Participants)
}

func (suite *RepositoryTestSuite) TestParticipation_RemoveNonMemberIsNoOp() {
	suite.createHackathon("h1", "First", "host")
	suite.createHackathon("h2", "Second", "host")
	suite.signIn("u1")
	suite.Require().NoError(suite.participations.Add("u1", "h1"))

	suite.Require().NoError(suite.participations.Remove("u1", "h2"))
	suite.Require().NoError(suite.participations.Remove("stranger", "h1"))

	ids, err := suite.participations.ListHackathonIDs("u1")
	suite.Require().NoError(err)
	suite.Equal([]string{"h1"}, ids)

	h, err := suite.hackathons.FindByID("h1")
	suite.Require().NoError(err)
	suite.Len(h.Participants, 1)
}

func (suite *RepositoryTestSuite) TestParticipation_RemoveDropsOnlyThatUser() {
	suite.createHackathon("h1", "First", "host")
	suite.signIn("u1")
	suite.Require().NoError(suite.participations.Add("u1", "h1"))
	other := suite.signIn("u2")
	suite.Require().NoError(suite.participations.Add("u2", "h1"))

	suite.Require().NoError(suite.participations.Remove("u1", "h1"))

	h, err := suite.hackathons.FindByID("h1")
	suite.Require().NoError(err)
	suite.Equal([]models.User{other}, h.Participants)

	joined, err := suite.participations.Has("u2", "h1")
	suite.Require().NoError(err)
	suite.True(joined)
}

func (suite *RepositoryTestSuite) TestParticipation_SnapshotIsNotRefreshed() {
	suite.createHackathon("h1", "First", "host")
	user := suite.signIn("u1")
	suite.Require().NoError(suite.participations.Add("u1", "h1"))

	user.Name = "Renamed"
	suite.Require().NoError(suite.session.Set(&user))

	h, err := suite.hackathons.FindByID("h1")
	suite.Require().NoError(err)
	suite.Require().Len(h.Participants, 1)
	suite.Equal("User u1", h.Participants[0].Name)
}

func (suite *RepositoryTestSuite) TestSession_SetAndClear() {
	user := suite.signIn("u1")

	got, err := suite.session.Get()
	suite.Require().NoError(err)
	suite.Equal(&user, got)

	raw, ok, err := suite.backend.GetItem(constants.StorageKeyCurrentUser)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Contains(raw, `"id":"u1"`)

	suite.Require().NoError(suite.session.Set(nil))
	got, err = suite.session.Get()
	suite.Require().NoError(err)
	suite.Nil(got)
}

func (suite *RepositoryTestSuite) TestAccounts_SaveAndFind() {
	account := models.Account{
		User:         models.User{ID: "u1", Name: "Ana", Email: "Ana@Example.com", Role: models.RoleHost},
		PasswordHash: "hash",
	}
	suite.Require().NoError(suite.accounts.Save(&account))

	found, err := suite.accounts.FindByEmail("  ana@example.COM ")
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal("u1", found.User.ID)

	missing, err := suite.accounts.FindByEmail("bob@example.com")
	suite.Require().NoError(err)
	suite.Nil(missing)
}

func (suite *RepositoryTestSuite) TestMalformedData_Surfaces() {
	suite.Require().NoError(suite.backend.SetItem(constants.StorageKeyHackathons, "{broken"))
	suite.Require().NoError(suite.backend.SetItem(constants.StorageKeyParticipations, "[]"))
	suite.Require().NoError(suite.backend.SetItem(constants.StorageKeyCurrentUser, "42"))

	_, err := suite.hackathons.List()
	suite.ErrorIs(err, codec.ErrMalformedRecord)
	suite.ErrorIs(suite.hackathons.Create(&models.Hackathon{ID: "h1"}), codec.ErrMalformedRecord)

	_, err = suite.participations.Has("u1", "h1")
	suite.ErrorIs(err, codec.ErrMalformedRecord)

	_, err = suite.session.Get()
	suite.ErrorIs(err, codec.ErrMalformedRecord)

	raw, _, err := suite.backend.GetItem(constants.StorageKeyHackathons)
	suite.Require().NoError(err)
	suite.Equal("{broken", raw, "malformed data must not be reset implicitly")
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func TestRepositories_UnavailableStorage(t *testing.T) {
	for name, store := range map[string]*storage.LocalStorage{
		"nil storage":    nil,
		"no backend set": storage.New(nil),
	} {
		t.Run(name, func(t *testing.T) {
			hackathons := NewHackathonRepository(store)
			session := NewSessionRepository(store)
			participations := NewParticipationRepository(store, hackathons, session)
			accounts := NewAccountRepository(store)

			h := models.Hackathon{ID: "h1", Title: "X"}
			if err := hackathons.Create(&h); err != nil {
				t.Fatalf("create: %v", err)
			}
			if err := hackathons.Update(&h); err != nil {
				t.Fatalf("update: %v", err)
			}
			if err := hackathons.Delete("h1"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			list, err := hackathons.List()
			if err != nil || len(list) != 0 {
				t.Fatalf("expected empty list, got %v (%v)", list, err)
			}
			found, err := hackathons.FindByID("h1")
			if err != nil || found != nil {
				t.Fatalf("expected absent hackathon, got %v (%v)", found, err)
			}

			if err := session.Set(&models.User{ID: "u1"}); err != nil {
				t.Fatalf("set session: %v", err)
			}
			user, err := session.Get()
			if err != nil || user != nil {
				t.Fatalf("expected no session user, got %v (%v)", user, err)
			}

			if err := participations.Add("u1", "h1"); err != nil {
				t.Fatalf("add: %v", err)
			}
			joined, err := participations.Has("u1", "h1")
			if err != nil || joined {
				t.Fatalf("expected no participation, got %v (%v)", joined, err)
			}
			if err := participations.Remove("u1", "h1"); err != nil {
				t.Fatalf("remove: %v", err)
			}

			if err := accounts.Save(&models.Account{User: models.User{Email: "a@b.c"}}); err != nil {
				t.Fatalf("save account: %v", err)
			}
			account, err := accounts.FindByEmail("a@b.c")
			if err != nil || account != nil {
				t.Fatalf("expected no account, got %v (%v)", account, err)
			}
		})
	}
}

// countingBackend counts writes per key.
type countingBackend struct {
	*storage.MemoryBackend
	mu     sync.Mutex
	writes map[string]int
}

func (b *countingBackend) SetItem(key, value string) error {
	b.mu.Lock()
	b.writes[key]++
	b.mu.Unlock()
	return b.MemoryBackend.SetItem(key, value)
}

func (b *countingBackend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes[key]
}

func TestParticipation_RemoveNonMemberSkipsWrites(t *testing.T) {
	backend := &countingBackend{MemoryBackend: storage.NewMemoryBackend(), writes: map[string]int{}}
	store := storage.New(backend)
	hackathons := NewHackathonRepository(store)
	session := NewSessionRepository(store)
	participations := NewParticipationRepository(store, hackathons, session)

	require.NoError(t, hackathons.Create(&models.Hackathon{ID: "h1", Title: "Empty"}))
	require.NoError(t, hackathons.Create(&models.Hackathon{ID: "h2", Title: "Joined"}))
	require.NoError(t, session.Set(&models.User{ID: "u1", Name: "One"}))
	require.NoError(t, participations.Add("u1", "h2"))

	hackathonWrites := backend.count(constants.StorageKeyHackathons)
	indexWrites := backend.count(constants.StorageKeyParticipations)

	require.NoError(t, participations.Remove("u1", "h1"))
	require.NoError(t, participations.Remove("stranger", "h2"))

	assert.Equal(t, hackathonWrites, backend.count(constants.StorageKeyHackathons))
	assert.Equal(t, indexWrites, backend.count(constants.StorageKeyParticipations))

	require.NoError(t, participations.Remove("u1", "h2"))
	assert.Equal(t, hackathonWrites+1, backend.count(constants.StorageKeyHackathons))
	assert.Equal(t, indexWrites+1, backend.count(constants.StorageKeyParticipations))

	h, err := hackathons.FindByID("h2")
	require.NoError(t, err)
	assert.Empty(t, h.Participants)
}
