package gormstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/patron"
	"github.com/xiebiao/library/pkg/optional"
)

func TestDeleteAuthorCascadesBooksAndLoans(t *testing.T) {
	f := newLoanFixture(t, 1)
	ctx := context.Background()

	other := seedAuthor(t, f.stores)
	kept := book.NewBook("Other", "X2", other.ID, nil, nil)
	require.NoError(t, f.books.Create(ctx, kept))

	l, err := f.svc.Create(ctx, loan.NewLoan(f.patronRows[0].ID, f.book.ID, today, nil))
	require.NoError(t, err)
	keptLoan, err := f.svc.Create(ctx, loan.NewLoan(f.patronRows[0].ID, kept.ID, today, nil))
	require.NoError(t, err)

	require.NoError(t, f.authors.Delete(ctx, f.book.AuthorID))

	_, err = f.books.FindByID(ctx, f.book.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	_, err = f.loans.FindByID(ctx, l.ID)
	assert.ErrorIs(t, err, loan.ErrLoanNotFound)

	// 其他作者的数据不受影响
	_, err = f.books.FindByID(ctx, kept.ID)
	assert.NoError(t, err)
	_, err = f.loans.FindByID(ctx, keptLoan.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, f.authors.Delete(ctx, f.book.AuthorID), author.ErrAuthorNotFound)
}

func TestDeleteBookCascadesLoans(t *testing.T) {
	f := newLoanFixture(t, 1)
	ctx := context.Background()
	l, err := f.svc.Create(ctx, loan.NewLoan(f.patronRows[0].ID, f.book.ID, today, nil))
	require.NoError(t, err)

	require.NoError(t, f.books.Delete(ctx, f.book.ID))

	_, err = f.loans.FindByID(ctx, l.ID)
	assert.ErrorIs(t, err, loan.ErrLoanNotFound)
	assert.Zero(t, count(t, f.db, &LoanModel{}))
}

func TestDeletePatronCascadesLoans(t *testing.T) {
	f := newLoanFixture(t, 2)
	ctx := context.Background()
	done := today.AddDate(0, 0, 2)

	_, err := f.svc.Create(ctx, loan.NewLoan(f.patronRows[0].ID, f.book.ID, today, &done))
	require.NoError(t, err)
	other, err := f.svc.Create(ctx, loan.NewLoan(f.patronRows[1].ID, f.book.ID, today, nil))
	require.NoError(t, err)

	require.NoError(t, f.patrons.Delete(ctx, f.patronRows[0].ID))

	assert.Equal(t, int64(1), count(t, f.db, &LoanModel{}))
	_, err = f.loans.FindByID(ctx, other.ID)
	assert.NoError(t, err)
	assert.ErrorIs(t, f.patrons.Delete(ctx, f.patronRows[0].ID), patron.ErrPatronNotFound)
}

func TestPatronAndAuthorUpdates(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()

	a := author.NewAuthor("Orhan", "Pamuk", ptr("bio"))
	require.NoError(t, s.authors.Create(ctx, a))
	updated, err := s.authors.Update(ctx, a.ID, author.Patch{Biography: optional.Null[string]()})
	require.NoError(t, err)
	assert.Equal(t, &author.Author{ID: a.ID, FirstName: "Orhan", LastName: "Pamuk"}, updated)

	p := patron.NewPatron("U", "V", "u@v.com", nil)
	require.NoError(t, s.patrons.Create(ctx, p))
	require.NoError(t, s.patrons.Create(ctx, patron.NewPatron("X", "Y", "x@y.com", ptr(false))))

	err = s.patrons.Create(ctx, patron.NewPatron("Z", "W", "u@v.com", nil))
	assert.ErrorIs(t, err, patron.ErrEmailDuplicate)

	inactive, err := s.patrons.Update(ctx, p.ID, patron.Patch{Active: ptr(false)})
	require.NoError(t, err)
	assert.False(t, inactive.Active)
	assert.Equal(t, "u@v.com", inactive.Email)

	_, err = s.patrons.Update(ctx, p.ID, patron.Patch{Email: ptr("x@y.com")})
	assert.ErrorIs(t, err, patron.ErrEmailDuplicate)
}
