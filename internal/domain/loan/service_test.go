package loan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/shared"
	"github.com/xiebiao/library/pkg/optional"
)

// fakeRepo 内存借阅仓储
type fakeRepo struct {
	loans     map[uint]*Loan
	books     map[uint]bool
	nextID    uint
	locked    []uint
	txChecked bool
}

func newFakeRepo(bookIDs ...uint) *fakeRepo {
	r := &fakeRepo{loans: map[uint]*Loan{}, books: map[uint]bool{}}
	for _, id := range bookIDs {
		r.books[id] = true
	}
	return r
}

func (r *fakeRepo) List(context.Context, shared.ListParams) ([]*Loan, error) { return nil, nil }

func (r *fakeRepo) FindByID(_ context.Context, id uint) (*Loan, error) {
	l, ok := r.loans[id]
	if !ok {
		return nil, ErrLoanNotFound
	}
	return l, nil
}

func (r *fakeRepo) Create(ctx context.Context, l *Loan) error {
	r.txChecked = ctx.Value(txKey{}) != nil
	r.nextID++
	l.ID = r.nextID
	r.loans[l.ID] = l
	return nil
}

func (r *fakeRepo) Update(_ context.Context, id uint, p Patch) (*Loan, error) {
	l, ok := r.loans[id]
	if !ok {
		return nil, ErrLoanNotFound
	}
	return l, l.Apply(p)
}

func (r *fakeRepo) Delete(context.Context, uint) error { return nil }

func (r *fakeRepo) LockBook(_ context.Context, bookID uint) error {
	if !r.books[bookID] {
		return ErrBookRefNotFound
	}
	r.locked = append(r.locked, bookID)
	return nil
}

func (r *fakeRepo) HasOpenLoan(_ context.Context, bookID uint) (bool, error) {
	for _, l := range r.loans {
		if l.BookID == bookID && l.IsOpen() {
			return true, nil
		}
	}
	return false, nil
}

type txKey struct{}

type fakeTx struct{ calls int }

func (f *fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(context.WithValue(ctx, txKey{}, true))
}

func TestCreateRejectsWhenBookOnLoan(t *testing.T) {
	repo := newFakeRepo(1)
	tx := &fakeTx{}
	svc := NewService(repo, tx)
	ctx := context.Background()

	first, err := svc.Create(ctx, NewLoan(1, 1, today, nil))
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.ID)
	assert.Nil(t, first.ReturnDate)
	assert.True(t, repo.txChecked, "插入必须发生在事务内")

	_, err = svc.Create(ctx, NewLoan(2, 1, today, nil))
	assert.ErrorIs(t, err, ErrBookOnLoan)
	assert.Len(t, repo.loans, 1)
	assert.Equal(t, []uint{1, 1}, repo.locked)
	assert.Equal(t, 2, tx.calls)
}

func TestCreateValidatesBeforeTouchingStore(t *testing.T) {
	repo := newFakeRepo(1)
	tx := &fakeTx{}
	svc := NewService(repo, tx)

	_, err := svc.Create(context.Background(), NewLoan(1, 1, today, &yesterday))
	assert.ErrorIs(t, err, ErrReturnBeforeCheckout)
	assert.Zero(t, tx.calls)
	assert.Empty(t, repo.locked)
}

func TestCreateUnknownBook(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeTx{})
	_, err := svc.Create(context.Background(), NewLoan(1, 42, today, nil))
	assert.ErrorIs(t, err, ErrBookRefNotFound)
}

func TestReturnedBookCanBeLentAgain(t *testing.T) {
	repo := newFakeRepo(1)
	svc := NewService(repo, &fakeTx{})
	ctx := context.Background()

	first, err := svc.Create(ctx, NewLoan(1, 1, today, nil))
	require.NoError(t, err)

	_, err = svc.Update(ctx, first.ID, Patch{ReturnDate: optional.Of(inFive)})
	require.NoError(t, err)

	second, err := svc.Create(ctx, NewLoan(2, 1, today, nil))
	require.NoError(t, err)
	assert.Equal(t, uint(2), second.ID)
}
