package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hackathon-hub/internal/models"
)

func TestDecodeHackathons_EmptyValues(t *testing.T) {
	for _, raw := range []string{"", "   ", "null", "[]"} {
		hackathons, err := DecodeHackathons(raw)
		require.NoError(t, err, raw)
		assert.NotNil(t, hackathons, raw)
		assert.Empty(t, hackathons, raw)
	}
}

func TestDecodeHackathons_UsesStoredFieldNames(t *testing.T) {
	raw := `[{"id":"h1","title":"AI Innovation Challenge","description":"d","category":"AI/ML",` +
		`"bannerUrl":"https://img","formLink":"https://forms","createdAt":"2025-01-01T00:00:00Z",` +
		`"hostId":"host_1","participants":[{"id":"u2","name":"Ana","email":"ana@example.com","role":"participant"}]}]`

	hackathons, err := DecodeHackathons(raw)
	require.NoError(t, err)
	require.Len(t, hackathons, 1)

	h := hackathons[0]
	assert.Equal(t, "h1", h.ID)
	assert.Equal(t, "https://img", h.BannerURL)
	assert.Equal(t, "https://forms", h.FormLink)
	assert.Equal(t, "host_1", h.HostID)
	require.Len(t, h.Participants, 1)
	assert.Equal(t, models.RoleParticipant, h.Participants[0].Role)
}

func TestEncodeHackathons_OmitsUnsetParticipants(t *testing.T) {
	raw, err := EncodeHackathons([]models.Hackathon{{ID: "h1", Title: "X"}})
	require.NoError(t, err)
	assert.NotContains(t, raw, "participants")
	assert.Contains(t, raw, `"bannerUrl":""`)

	raw, err = EncodeHackathons(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestDecodeUser(t *testing.T) {
	user, err := DecodeUser("")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = DecodeUser("null")
	require.NoError(t, err)
	assert.Nil(t, user)

	raw, err := EncodeUser(models.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: models.RoleHost})
	require.NoError(t, err)

	user, err = DecodeUser(raw)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, user.IsHost())
}

func TestDecodeParticipations(t *testing.T) {
	p, err := DecodeParticipations("")
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Empty(t, p)

	p, err = DecodeParticipations(`{"u1":["h1","h2"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"h1", "h2"}, p["u1"])
}

func TestDecodeAccounts(t *testing.T) {
	a, err := DecodeAccounts("null")
	require.NoError(t, err)
	assert.NotNil(t, a)

	raw, err := EncodeAccounts(Accounts{"ana@example.com": {User: models.User{ID: "u1"}, PasswordHash: "x"}})
	require.NoError(t, err)

	a, err = DecodeAccounts(raw)
	require.NoError(t, err)
	assert.Equal(t, "x", a["ana@example.com"].PasswordHash)
}

func TestDecode_MalformedRecord(t *testing.T) {
	_, err := DecodeHackathons("{not json")
	require.ErrorIs(t, err, ErrMalformedRecord)

	_, err = DecodeHackathons(`{"id":"h1"}`)
	require.ErrorIs(t, err, ErrMalformedRecord)

	_, err = DecodeUser("[1,2]")
	require.ErrorIs(t, err, ErrMalformedRecord)

	_, err = DecodeParticipations(`{"u1":"h1"}`)
	require.ErrorIs(t, err, ErrMalformedRecord)

	_, err = DecodeAccounts("42")
	require.ErrorIs(t, err, ErrMalformedRecord)
}
