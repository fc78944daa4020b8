package gormstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/category"
	"github.com/xiebiao/library/internal/domain/shared"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/optional"
)

func seedAuthor(t *testing.T, s stores) *author.Author {
	t.Helper()
	a := author.NewAuthor("A", "B", nil)
	require.NoError(t, s.authors.Create(context.Background(), a))
	return a
}

func TestBookRoundTrip(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()
	a := seedAuthor(t, s)
	c := category.NewCategory("Roman")
	require.NoError(t, s.categories.Create(ctx, c))

	b := book.NewBook("Kar", "9789750802942", a.ID, &c.ID, ptr(2002))
	require.NoError(t, s.books.Create(ctx, b))
	assert.NotZero(t, b.ID)

	got, err := s.books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestBookCreateConstraints(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()
	a := seedAuthor(t, s)

	require.NoError(t, s.books.Create(ctx, book.NewBook("T", "X1", a.ID, nil, nil)))

	err := s.books.Create(ctx, book.NewBook("T2", "X1", a.ID, nil, nil))
	assert.ErrorIs(t, err, book.ErrISBNDuplicate)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConstraint))

	err = s.books.Create(ctx, book.NewBook("T3", "X3", 999, nil, nil))
	assert.ErrorIs(t, err, book.ErrAuthorRefNotFound)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForeignKey))

	err = s.books.Create(ctx, book.NewBook("T4", "X4", a.ID, ptr(uint(999)), nil))
	assert.ErrorIs(t, err, book.ErrCategoryRefNotFound)

	assert.Equal(t, int64(1), count(t, s.db, &BookModel{}))
}

func TestBookPartialUpdate(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()
	a := seedAuthor(t, s)
	b := book.NewBook("T", "X1", a.ID, nil, ptr(1999))
	require.NoError(t, s.books.Create(ctx, b))

	// 空补丁不改变记录
	same, err := s.books.Update(ctx, b.ID, book.Patch{})
	require.NoError(t, err)
	assert.Equal(t, b, same)

	updated, err := s.books.Update(ctx, b.ID, book.Patch{Title: ptr("New Title")})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "X1", updated.ISBN)
	assert.Equal(t, 1999, *updated.PublicationYear)

	cleared, err := s.books.Update(ctx, b.ID, book.Patch{PublicationYear: optional.Null[int]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.PublicationYear)

	got, err := s.books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, cleared, got)
}

func TestBookUpdateErrors(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()
	a := seedAuthor(t, s)
	first := book.NewBook("T", "X1", a.ID, nil, nil)
	second := book.NewBook("T", "X2", a.ID, nil, nil)
	require.NoError(t, s.books.Create(ctx, first))
	require.NoError(t, s.books.Create(ctx, second))

	_, err := s.books.Update(ctx, 999, book.Patch{Title: ptr("x")})
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	_, err = s.books.Update(ctx, second.ID, book.Patch{ISBN: ptr("X1")})
	assert.ErrorIs(t, err, book.ErrISBNDuplicate)

	_, err = s.books.Update(ctx, second.ID, book.Patch{AuthorID: ptr(uint(404))})
	assert.ErrorIs(t, err, book.ErrAuthorRefNotFound)

	// 失败的更新不留下部分修改
	got, err := s.books.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestBookListAndListByAuthor(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()
	a1 := seedAuthor(t, s)
	a2 := seedAuthor(t, s)
	for i, isbn := range []string{"I1", "I2", "I3"} {
		authorID := a1.ID
		if i == 1 {
			authorID = a2.ID
		}
		require.NoError(t, s.books.Create(ctx, book.NewBook("T", isbn, authorID, nil, nil)))
	}

	all, err := s.books.List(ctx, shared.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "I1", all[0].ISBN)

	page, err := s.books.List(ctx, shared.ListParams{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "I2", page[0].ISBN)

	empty, err := s.books.List(ctx, shared.ListParams{Skip: 10, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)

	byAuthor, err := s.books.ListByAuthor(ctx, a1.ID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 2)
	assert.Equal(t, []string{"I1", "I3"}, []string{byAuthor[0].ISBN, byAuthor[1].ISBN})
}

func TestCategoryDeleteDetachesBooks(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()
	a := seedAuthor(t, s)
	c := category.NewCategory("Şiir")
	require.NoError(t, s.categories.Create(ctx, c))
	b := book.NewBook("T", "X1", a.ID, &c.ID, nil)
	require.NoError(t, s.books.Create(ctx, b))

	require.NoError(t, s.categories.Delete(ctx, c.ID))

	got, err := s.books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)

	_, err = s.categories.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	assert.ErrorIs(t, s.categories.Delete(ctx, c.ID), category.ErrCategoryNotFound)
}

func TestCategoryNameUnique(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()
	require.NoError(t, s.categories.Create(ctx, category.NewCategory("Roman")))

	err := s.categories.Create(ctx, category.NewCategory("Roman"))
	assert.ErrorIs(t, err, category.ErrNameDuplicate)

	_, err = s.categories.Update(ctx, 404, category.Patch{Name: ptr("Deneme")})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
