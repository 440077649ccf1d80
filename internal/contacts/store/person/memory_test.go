package person

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacts/internal/contacts/models"
	"contacts/internal/sentinel"
	id "contacts/pkg/domain"
)

func newPerson(t *testing.T, name string) *models.Person {
	t.Helper()
	p, err := models.NewPerson(id.NewPersonID(), models.PersonDetails{
		Name:  name,
		Email: name + "@example.com",
	}, time.Now())
	require.NoError(t, err)
	return p
}

func TestCreate_ThenFind(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	p := newPerson(t, "ann")

	require.NoError(t, store.Create(ctx, p))

	found, err := store.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", found.Name)
}

func TestCreate_DuplicateIDRejected(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	p := newPerson(t, "ann")
	require.NoError(t, store.Create(ctx, p))

	err := store.Create(ctx, p)
	assert.ErrorIs(t, err, sentinel.ErrAlreadyUsed)
}

func TestCreate_StoresCopy(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	p := newPerson(t, "ann")
	require.NoError(t, store.Create(ctx, p))

	p.Name = "changed after insert"

	found, err := store.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", found.Name)
}

func TestUpdate(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		err := store.Update(ctx, newPerson(t, "ghost"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("replaces record", func(t *testing.T) {
		p := newPerson(t, "ann")
		require.NoError(t, store.Create(ctx, p))

		p.Name = "anna"
		require.NoError(t, store.Update(ctx, p))

		found, err := store.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "anna", found.Name)
	})
}

func TestDelete(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	p := newPerson(t, "ann")
	require.NoError(t, store.Create(ctx, p))

	require.NoError(t, store.Delete(ctx, p.ID))
	assert.ErrorIs(t, store.Delete(ctx, p.ID), ErrNotFound)

	_, err := store.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListAll_InsertionOrder(t *testing.T) {
	a, b, c := newPerson(t, "a"), newPerson(t, "b"), newPerson(t, "c")
	store := NewInMemory(WithSeed(a, b))
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, c))
	require.NoError(t, store.Delete(ctx, a.ID))

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, b.ID, all[0].ID)
	assert.Equal(t, c.ID, all[1].ID)
}
