package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (e *env) compilations(t *testing.T) *CompilationService {
	t.Helper()
	return NewCompilationService(e.store.Compilations(), e.store.Events(), e.catalog, newTestLogger(t))
}

func TestCompilationService_Create(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	svc := e.compilations(t)
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	first := e.event(t, owner.ID, 0, false, domain.EventStatePublished)
	second := e.event(t, owner.ID, 0, false, domain.EventStatePublished)

	_, err := e.requests.Create(ctx, alice.ID, second.ID)
	require.NoError(t, err)

	view, err := svc.Create(ctx, domain.CreateCompilationInput{
		Title:  "  Weekend picks ",
		Events: []string{second.ID, strings.ToUpper(first.ID), second.ID},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "Weekend picks", view.Title)
	assert.False(t, view.Pinned)
	assert.Equal(t, []string{second.ID, first.ID}, view.EventIDs)
	require.Len(t, view.Events, 2)
	assert.Equal(t, second.ID, view.Events[0].ID)
	assert.Equal(t, 1, view.Events[0].ConfirmedRequests)
	assert.Equal(t, first.ID, view.Events[1].ID)
}

func TestCompilationService_Create_Validation(t *testing.T) {
	e := newEnv(t)
	svc := e.compilations(t)

	tests := []struct {
		name    string
		input   domain.CreateCompilationInput
		wantErr error
	}{
		{"blank title", domain.CreateCompilationInput{Title: "   "}, domain.ErrCompilationTitle},
		{"long title", domain.CreateCompilationInput{Title: strings.Repeat("я", 51)}, domain.ErrCompilationTitle},
		{"unknown event", domain.CreateCompilationInput{Title: "ok", Events: []string{"missing"}}, domain.ErrEventNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCompilationService_Update(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	svc := e.compilations(t)
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 0, false, domain.EventStatePublished)

	created, err := svc.Create(ctx, domain.CreateCompilationInput{Title: "Summer", Events: []string{ev.ID}})
	require.NoError(t, err)

	blank, pinned := " ", true
	view, err := svc.Update(ctx, strings.ToUpper(created.ID), domain.CompilationPatch{Title: &blank, Pinned: &pinned})
	require.NoError(t, err)
	assert.Equal(t, "Summer", view.Title)
	assert.True(t, view.Pinned)
	assert.Len(t, view.Events, 1)

	view, err = svc.Update(ctx, created.ID, domain.CompilationPatch{Events: []string{}})
	require.NoError(t, err)
	assert.Empty(t, view.Events)

	stored, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Pinned)
	assert.Empty(t, stored.EventIDs)

	_, err = svc.Update(ctx, "missing", domain.CompilationPatch{Pinned: &pinned})
	assert.ErrorIs(t, err, domain.ErrCompilationNotFound)
}

func TestCompilationService_ListAndDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	svc := e.compilations(t)
	yes, no := true, false

	for _, in := range []domain.CreateCompilationInput{
		{Title: "One", Pinned: &yes},
		{Title: "Two"},
		{Title: "Three", Pinned: &yes},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, nil, domain.Page{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pinned, err := svc.List(ctx, &yes, domain.Page{Size: 10})
	require.NoError(t, err)
	assert.Len(t, pinned, 2)

	unpinned, err := svc.List(ctx, &no, domain.Page{Size: 10})
	require.NoError(t, err)
	require.Len(t, unpinned, 1)
	assert.Equal(t, "Two", unpinned[0].Title)

	_, err = svc.List(ctx, nil, domain.Page{From: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPage)

	require.NoError(t, svc.Delete(ctx, unpinned[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, unpinned[0].ID), domain.ErrCompilationNotFound)
	_, err = svc.GetByID(ctx, unpinned[0].ID)
	assert.ErrorIs(t, err, domain.ErrCompilationNotFound)
}

func TestCompilationService_Create_RepoError(t *testing.T) {
	e := newEnv(t)
	repo := mocks.NewMockCompilationRepo(t)
	repoErr := errors.New("db down")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	svc := NewCompilationService(repo, e.store.Events(), e.catalog, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateCompilationInput{Title: "ok"})

	assert.ErrorIs(t, err, repoErr)
}
