package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/shared"
	"github.com/xiebiao/library/pkg/optional"
)

var day = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

type fakeService struct {
	loans     map[uint]*loan.Loan
	createErr error
	gets      int
}

func (s *fakeService) List(context.Context, shared.ListParams) ([]*loan.Loan, error) { return nil, nil }

func (s *fakeService) Get(_ context.Context, id uint) (*loan.Loan, error) {
	s.gets++
	l, ok := s.loans[id]
	if !ok {
		return nil, loan.ErrLoanNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *fakeService) Create(_ context.Context, l *loan.Loan) (*loan.Loan, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	l.ID = uint(len(s.loans) + 1)
	s.loans[l.ID] = l
	return l, nil
}

func (s *fakeService) Update(_ context.Context, id uint, p loan.Patch) (*loan.Loan, error) {
	l, ok := s.loans[id]
	if !ok {
		return nil, loan.ErrLoanNotFound
	}
	if err := l.Apply(p); err != nil {
		return nil, err
	}
	cp := *l
	return &cp, nil
}

func (s *fakeService) Delete(context.Context, uint) error { return nil }

type recordingPublisher struct {
	events []loan.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev loan.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)
	return nil
}

func newFakes() (*fakeService, *recordingPublisher) {
	return &fakeService{loans: map[uint]*loan.Loan{}}, &recordingPublisher{}
}

func TestCheckoutPublishesEvent(t *testing.T) {
	svc, pub := newFakes()
	uc := NewCheckoutUseCase(svc, pub, zap.NewNop())

	created, err := uc.Execute(context.Background(), loan.NewLoan(1, 2, day, nil))
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	require.Len(t, pub.events, 1)
	assert.Equal(t, loan.EventCheckedOut, pub.events[0].Type)
	assert.Equal(t, "2024-03-01", pub.events[0].CheckoutDate)
	assert.Nil(t, pub.events[0].ReturnDate)
}

func TestCheckoutWithReturnDatePublishesBoth(t *testing.T) {
	svc, pub := newFakes()
	uc := NewCheckoutUseCase(svc, pub, zap.NewNop())
	ret := day.AddDate(0, 0, 3)

	_, err := uc.Execute(context.Background(), loan.NewLoan(1, 2, day, &ret))
	require.NoError(t, err)
	require.Len(t, pub.events, 2)
	assert.Equal(t, loan.EventReturned, pub.events[1].Type)
	assert.Equal(t, "2024-03-04", *pub.events[1].ReturnDate)
}

func TestCheckoutRejected(t *testing.T) {
	svc, pub := newFakes()
	svc.createErr = loan.ErrBookOnLoan
	uc := NewCheckoutUseCase(svc, pub, zap.NewNop())

	_, err := uc.Execute(context.Background(), loan.NewLoan(1, 2, day, nil))
	assert.ErrorIs(t, err, loan.ErrBookOnLoan)
	assert.Empty(t, pub.events)
}

func TestCheckoutIgnoresPublishFailure(t *testing.T) {
	svc, pub := newFakes()
	pub.err = errors.New("broker down")
	uc := NewCheckoutUseCase(svc, pub, zap.NewNop())

	created, err := uc.Execute(context.Background(), loan.NewLoan(1, 2, day, nil))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestUpdateReturnPublishesOnce(t *testing.T) {
	svc, pub := newFakes()
	svc.loans[1] = loan.NewLoan(1, 2, day, nil)
	svc.loans[1].ID = 1
	uc := NewUpdateLoanUseCase(svc, pub, zap.NewNop())

	ret := day.AddDate(0, 0, 5)
	updated, err := uc.Execute(context.Background(), 1, loan.Patch{ReturnDate: optional.Of(ret)})
	require.NoError(t, err)
	assert.False(t, updated.IsOpen())
	require.Len(t, pub.events, 1)
	assert.Equal(t, loan.EventReturned, pub.events[0].Type)

	// 已归还的借阅修改归还日期不再发布
	later := ret.AddDate(0, 0, 1)
	_, err = uc.Execute(context.Background(), 1, loan.Patch{ReturnDate: optional.Of(later)})
	require.NoError(t, err)
	assert.Len(t, pub.events, 1)
}

func TestUpdateWithoutReturnSkipsLookup(t *testing.T) {
	svc, pub := newFakes()
	svc.loans[1] = loan.NewLoan(1, 2, day, nil)
	uc := NewUpdateLoanUseCase(svc, pub, zap.NewNop())

	patron := uint(9)
	updated, err := uc.Execute(context.Background(), 1, loan.Patch{PatronID: &patron})
	require.NoError(t, err)
	assert.Equal(t, uint(9), updated.PatronID)
	assert.Zero(t, svc.gets)
	assert.Empty(t, pub.events)
}

func TestUpdateErrors(t *testing.T) {
	svc, pub := newFakes()
	svc.loans[1] = loan.NewLoan(1, 2, day, nil)
	uc := NewUpdateLoanUseCase(svc, pub, zap.NewNop())

	_, err := uc.Execute(context.Background(), 42, loan.Patch{ReturnDate: optional.Of(day)})
	assert.ErrorIs(t, err, loan.ErrLoanNotFound)

	_, err = uc.Execute(context.Background(), 1, loan.Patch{ReturnDate: optional.Of(day.AddDate(0, 0, -1))})
	assert.ErrorIs(t, err, loan.ErrReturnBeforeCheckout)
	assert.Empty(t, pub.events)
}

func TestRejectReason(t *testing.T) {
	assert.Equal(t, "on_loan", rejectReason(loan.ErrBookOnLoan))
	assert.Equal(t, "invalid", rejectReason(loan.ErrReturnBeforeCheckout))
	assert.Equal(t, "not_found", rejectReason(loan.ErrBookRefNotFound))
	assert.Equal(t, "error", rejectReason(errors.New("boom")))
}
