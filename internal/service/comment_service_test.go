package service_test

import (
	"context"
	"testing"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/mocks"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService(t *testing.T) (service.CommentService, *mocks.MockPostStore, *mocks.MockCommentStore) {
	t.Helper()

	posts := &mocks.MockPostStore{
		GetByIDFn: func(ctx context.Context, id int64) (*domain.Post, error) {
			if id > 2 {
				return nil, store.ErrPostNotFound
			}
			return &domain.Post{ID: id}, nil
		},
	}
	comments := &mocks.MockCommentStore{
		GetByIDFn: func(ctx context.Context, id int64) (*domain.Comment, error) {
			if id != 10 {
				return nil, store.ErrCommentNotFound
			}
			return &domain.Comment{ID: 10, PostID: 1, Name: "A", Email: "a@example.com", Body: "first comment"}, nil
		},
	}

	svc, err := service.NewCommentService(posts, comments, nil)
	require.NoError(t, err)
	return svc, posts, comments
}

func validComment() *domain.Comment {
	return &domain.Comment{Name: "Bob", Email: "bob@example.com", Body: "Great read, thanks"}
}

func TestCommentService_Create(t *testing.T) {
	t.Parallel()
	svc, _, comments := newCommentService(t)
	comments.CreateFn = func(ctx context.Context, c *domain.Comment) error {
		c.ID = 11
		return nil
	}

	created, err := svc.Create(context.Background(), 1, validComment())
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, int64(1), created.PostID)

	_, err = svc.Create(context.Background(), 3, validComment())
	assert.ErrorIs(t, err, store.ErrPostNotFound)

	short := validComment()
	short.Body = "too short"
	_, err = svc.Create(context.Background(), 1, short)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCommentService_AddressedThroughPost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		postID    int64
		commentID int64
		wantErr   error
	}{
		{name: "owned", postID: 1, commentID: 10},
		{name: "other post", postID: 2, commentID: 10, wantErr: service.ErrCommentNotInPost},
		{name: "missing post", postID: 3, commentID: 10, wantErr: store.ErrPostNotFound},
		{name: "missing comment", postID: 1, commentID: 11, wantErr: store.ErrCommentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _, comments := newCommentService(t)
			var deleted []int64
			comments.DeleteFn = func(ctx context.Context, id int64) error {
				deleted = append(deleted, id)
				return nil
			}

			_, getErr := svc.Get(context.Background(), tt.postID, tt.commentID)
			_, updateErr := svc.Update(context.Background(), tt.postID, tt.commentID, validComment())
			deleteErr := svc.Delete(context.Background(), tt.postID, tt.commentID)

			if tt.wantErr == nil {
				assert.NoError(t, getErr)
				assert.NoError(t, updateErr)
				assert.NoError(t, deleteErr)
				assert.Equal(t, []int64{tt.commentID}, deleted)
				return
			}
			assert.ErrorIs(t, getErr, tt.wantErr)
			assert.ErrorIs(t, updateErr, tt.wantErr)
			assert.ErrorIs(t, deleteErr, tt.wantErr)
			assert.Empty(t, deleted)
		})
	}
}

func TestCommentService_ListByPost(t *testing.T) {
	t.Parallel()
	svc, _, comments := newCommentService(t)
	comments.ListByPostFn = func(ctx context.Context, postID int64) ([]domain.Comment, error) {
		return []domain.Comment{{ID: 10, PostID: postID}}, nil
	}

	list, err := svc.ListByPost(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListByPost(context.Background(), 5)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}
