package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/shared"
)

func TestDateJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01"`), &d))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d.Time)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-01"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`"2024-03-01T10:00:00Z"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"01.03.2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240301`), &d))
}

func TestUpdateLoanRequestReturnDateStates(t *testing.T) {
	var absent UpdateLoanRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.ToPatch().ReturnDate.Set)

	var cleared UpdateLoanRequest
	require.NoError(t, json.Unmarshal([]byte(`{"return_date":null}`), &cleared))
	p := cleared.ToPatch()
	assert.True(t, p.ReturnDate.Set)
	assert.False(t, p.ReturnDate.Valid)

	var returned UpdateLoanRequest
	require.NoError(t, json.Unmarshal([]byte(`{"return_date":"2024-03-06","checkout_date":"2024-03-01"}`), &returned))
	p = returned.ToPatch()
	assert.True(t, p.Returns())
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), p.ReturnDate.Value)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *p.CheckoutDate)
}

func TestCreateLoanRequestToEntity(t *testing.T) {
	var req CreateLoanRequest
	require.NoError(t, json.Unmarshal([]byte(`{"patron_id":1,"book_id":2,"checkout_date":"2024-03-01"}`), &req))
	l := req.ToEntity()
	assert.True(t, l.IsOpen())
	assert.Equal(t, uint(2), l.BookID)
}

func TestLoanResponseJSON(t *testing.T) {
	ret := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	l := &loan.Loan{ID: 1, PatronID: 1, BookID: 1, CheckoutDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ReturnDate: &ret}

	out, err := json.Marshal(NewLoanResponse(l))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"patron_id":1,"book_id":1,"checkout_date":"2024-03-01","return_date":"2024-03-06"}`, string(out))

	l.ReturnDate = nil
	out, err = json.Marshal(NewLoanResponse(l))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"return_date":null`)
}

func TestUpdateBookRequestClearsCategory(t *testing.T) {
	var req UpdateBookRequest
	require.NoError(t, json.Unmarshal([]byte(`{"category_id":null,"title":"Kar"}`), &req))
	p := req.ToPatch()
	assert.True(t, p.CategoryID.Set)
	assert.False(t, p.CategoryID.Valid)
	assert.False(t, p.PublicationYear.Set)
	assert.Equal(t, "Kar", *p.Title)
}

func TestListQueryParams(t *testing.T) {
	assert.Equal(t, shared.ListParams{Skip: 0, Limit: shared.DefaultLimit}, ListQuery{}.Params())
	assert.Equal(t, shared.ListParams{Skip: 5, Limit: shared.MaxLimit}, ListQuery{Skip: 5, Limit: 9999}.Params())
}
