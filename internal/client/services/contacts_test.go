package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/privachat/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService(t *testing.T) {
	f := newFakeServer()
	f.loggedIn = "alice"
	svc := NewContactService(f)
	ctx := context.Background()

	_, err := svc.Search(ctx, "  ")
	assert.ErrorIs(t, err, client.ErrInvalidArgument)

	users, err := svc.Search(ctx, " bo ")
	require.NoError(t, err)
	assert.Equal(t, "bo", f.lastSearch)
	assert.Len(t, users, 1)

	r, err := svc.Request(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", r.RecipientUsername)
	assert.Equal(t, "pending", r.Status)

	pending, err := svc.Pending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	r, err = svc.Respond(ctx, "req-1", true)
	require.NoError(t, err)
	assert.Equal(t, DecisionAccept, f.lastDecided)
	assert.Equal(t, "req-1", r.Id)

	_, err = svc.Respond(ctx, "req-2", false)
	require.NoError(t, err)
	assert.Equal(t, DecisionReject, f.lastDecided)

	contacts, err := svc.Contacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", contacts[0].Username)
}
