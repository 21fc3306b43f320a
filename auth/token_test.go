package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(t *testing.T, sessionTTL, tableTTL time.Duration) *Issuer {
	t.Helper()
	creds, err := NewStaticCredentials("admin", "s3cret")
	require.NoError(t, err)
	return NewIssuer([]byte("test-secret"), creds, sessionTTL, tableTTL)
}

func TestSessionRoundtrip(t *testing.T) {
	issuer := newTestIssuer(t, time.Hour, time.Hour)

	token, err := issuer.IssueSession("admin")
	require.NoError(t, err)

	username, err := issuer.VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestTableRoundtrip(t *testing.T) {
	issuer := newTestIssuer(t, time.Hour, time.Hour)

	token, err := issuer.IssueTable("table-12")
	require.NoError(t, err)

	location, err := issuer.VerifyTable(token)
	require.NoError(t, err)
	assert.Equal(t, "table-12", location)
}

func TestVerifyMissingToken(t *testing.T) {
	issuer := newTestIssuer(t, time.Hour, time.Hour)

	_, err := issuer.VerifySession("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = issuer.VerifyTable("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := newTestIssuer(t, 0, 0)

	token, err := issuer.IssueSession("admin")
	require.NoError(t, err)
	_, err = issuer.VerifySession(token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	tableToken, err := issuer.IssueTable("table-12")
	require.NoError(t, err)
	_, err = issuer.VerifyTable(tableToken)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyMalformedToken(t *testing.T) {
	issuer := newTestIssuer(t, time.Hour, time.Hour)

	_, err := issuer.VerifySession("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	// Signed with a different secret
	other := NewIssuer([]byte("other-secret"), issuer.creds, time.Hour, time.Hour)
	forged, err := other.IssueSession("admin")
	require.NoError(t, err)
	_, err = issuer.VerifySession(forged)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerifyUnknownSubject(t *testing.T) {
	issuer := newTestIssuer(t, time.Hour, time.Hour)

	token, err := issuer.IssueSession("ghost")
	require.NoError(t, err)

	_, err = issuer.VerifySession(token)
	assert.ErrorIs(t, err, ErrUnknownSubject)
}

// The two token kinds share one signing mechanism but must never be accepted
// interchangeably.
func TestTokenKindsNotInterchangeable(t *testing.T) {
	issuer := newTestIssuer(t, time.Hour, time.Hour)

	session, err := issuer.IssueSession("admin")
	require.NoError(t, err)
	_, err = issuer.VerifyTable(session)
	assert.ErrorIs(t, err, ErrTokenMalformed)

	table, err := issuer.IssueTable("table-12")
	require.NoError(t, err)
	_, err = issuer.VerifySession(table)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
