package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

type note struct {
	ID   uint
	Text string
}

type notePatch struct {
	Text *string
}

func (p notePatch) Validate() error { return RequiredIfSet("text", p.Text) }

var errNoteNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeNotFound, "note不存在")

// memRepo 内存仓储，只用于测试编排逻辑
type memRepo struct {
	rows       map[uint]*note
	nextID     uint
	lastParams ListParams
	updates    int
}

func newMemRepo() *memRepo { return &memRepo{rows: map[uint]*note{}} }

func (r *memRepo) List(_ context.Context, _ ListParams) ([]*note, error) { return nil, nil }

func (r *memRepo) FindByID(_ context.Context, id uint) (*note, error) {
	n, ok := r.rows[id]
	if !ok {
		return nil, errNoteNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *memRepo) Create(_ context.Context, n *note) error {
	r.nextID++
	n.ID = r.nextID
	cp := *n
	r.rows[n.ID] = &cp
	return nil
}

func (r *memRepo) Update(_ context.Context, id uint, p notePatch) (*note, error) {
	r.updates++
	n, ok := r.rows[id]
	if !ok {
		return nil, errNoteNotFound
	}
	if p.Text != nil {
		n.Text = *p.Text
	}
	cp := *n
	return &cp, nil
}

func (r *memRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.rows[id]; !ok {
		return errNoteNotFound
	}
	delete(r.rows, id)
	return nil
}

type listRecorder struct{ *memRepo }

func (r listRecorder) List(_ context.Context, p ListParams) ([]*note, error) {
	r.lastParams = p
	return nil, nil
}

func validateNote(n *note) error { return Required("text", n.Text) }

func TestListParamsNormalize(t *testing.T) {
	assert.Equal(t, ListParams{Skip: 0, Limit: DefaultLimit}, ListParams{}.Normalize())
	assert.Equal(t, ListParams{Skip: 0, Limit: MaxLimit}, ListParams{Skip: -3, Limit: 10000}.Normalize())
	assert.Equal(t, ListParams{Skip: 5, Limit: 20}, ListParams{Skip: 5, Limit: 20}.Normalize())
}

func TestCRUDServiceListNormalizesAndNeverReturnsNil(t *testing.T) {
	repo := listRecorder{newMemRepo()}
	svc := NewCRUDService[note, notePatch](repo, validateNote)

	items, err := svc.List(context.Background(), ListParams{Limit: -1})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, DefaultLimit, repo.lastParams.Limit)
}

func TestCRUDServiceCreateValidates(t *testing.T) {
	repo := listRecorder{newMemRepo()}
	svc := NewCRUDService[note, notePatch](repo, validateNote)

	_, err := svc.Create(context.Background(), &note{Text: "  "})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Empty(t, repo.rows)

	created, err := svc.Create(context.Background(), &note{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCRUDServiceUpdateRejectsBlankBeforeStore(t *testing.T) {
	repo := listRecorder{newMemRepo()}
	svc := NewCRUDService[note, notePatch](repo, validateNote)
	created, err := svc.Create(context.Background(), &note{Text: "hello"})
	require.NoError(t, err)

	blank := ""
	_, err = svc.Update(context.Background(), created.ID, notePatch{Text: &blank})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Equal(t, 0, repo.updates)

	_, err = svc.Update(context.Background(), 99, notePatch{})
	assert.ErrorIs(t, err, errNoteNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 99), errNoteNotFound)
	assert.NoError(t, svc.Delete(context.Background(), created.ID))
}
