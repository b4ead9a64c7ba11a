package service

//go:generate mockgen -source=../ports/ports.go -destination=../mocks/mocks.go -package=mocks DocumentStore,GrantStore,AuditPublisher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"docregistry/internal/registry/mocks"
	"docregistry/internal/registry/models"
	id "docregistry/pkg/domain"
	dErrors "docregistry/pkg/domain-errors"
	"docregistry/pkg/requestcontext"
)

func failureFixture(t *testing.T) (*gomock.Controller, *mocks.MockDocumentStore, *mocks.MockGrantStore, *Service, context.Context) {
	t.Helper()
	ctrl := gomock.NewController(t)
	docs := mocks.NewMockDocumentStore(ctrl)
	grants := mocks.NewMockGrantStore(ctrl)

	svc, err := New(docs, grants, id.NewIdentity())
	require.NoError(t, err)

	ctx := requestcontext.WithCaller(context.Background(), id.NewIdentity())
	ctx = requestcontext.WithHeight(ctx, 1)
	return ctrl, docs, grants, svc, ctx
}

// TestStoreFailuresBecomeInternal verifies unexpected store errors surface as
// CodeInternal, never leak store internals as other codes.
func TestStoreFailuresBecomeInternal(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		_, docs, _, svc, ctx := failureFixture(t)
		docs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk on fire"))

		_, err := svc.Create(ctx, "name", 100, "desc", []string{"a"})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("grant write after create", func(t *testing.T) {
		_, docs, grants, svc, ctx := failureFixture(t)
		caller := requestcontext.Caller(ctx)
		doc, err := models.NewDocument(1, "name", caller, 100, 1, "desc", []string{"a"})
		require.NoError(t, err)

		docs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(doc, nil)
		grants.EXPECT().Set(gomock.Any(), doc.ID, caller, true).Return(errors.New("matrix unavailable"))

		_, err = svc.Create(ctx, "name", 100, "desc", []string{"a"})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("get document grant check", func(t *testing.T) {
		_, docs, grants, svc, ctx := failureFixture(t)
		caller := requestcontext.Caller(ctx)
		doc, err := models.NewDocument(1, "name", caller, 100, 1, "desc", []string{"a"})
		require.NoError(t, err)

		docs.EXPECT().FindByID(gomock.Any(), doc.ID).Return(doc, nil)
		grants.EXPECT().Check(gomock.Any(), doc.ID, caller).Return(false, errors.New("matrix unavailable"))

		_, err = svc.GetDocument(ctx, doc.ID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("statistics counter read", func(t *testing.T) {
		_, docs, _, svc, ctx := failureFixture(t)
		docs.EXPECT().TotalCreated(gomock.Any()).Return(uint64(0), errors.New("counter corrupt"))

		_, err := svc.GetStatistics(ctx)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

// TestAuditFailureDoesNotFailOperation verifies a failing audit publisher is
// logged and swallowed: the mutation has already committed.
func TestAuditFailureDoesNotFailOperation(t *testing.T) {
	ctrl := gomock.NewController(t)
	docs := mocks.NewMockDocumentStore(ctrl)
	grants := mocks.NewMockGrantStore(ctrl)
	publisher := mocks.NewMockAuditPublisher(ctrl)

	caller := id.NewIdentity()
	doc, err := models.NewDocument(1, "name", caller, 100, 1, "desc", []string{"a"})
	require.NoError(t, err)

	svc, err := New(docs, grants, id.NewIdentity(), WithAuditPublisher(publisher))
	require.NoError(t, err)

	docs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(doc, nil)
	grants.EXPECT().Set(gomock.Any(), doc.ID, caller, true).Return(nil)
	publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("sink full"))

	ctx := requestcontext.WithCaller(context.Background(), caller)
	docID, err := svc.Create(ctx, "name", 100, "desc", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, doc.ID, docID)
}
