package spending

import (
	"fmt"
	"testing"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func ids(txns []domain.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.TransactionID
	}
	return out
}

func TestLastN_SelectsChronologicallyLatest(t *testing.T) {
	// ten distinct dates, shuffled
	order := []int{4, 9, 1, 7, 0, 3, 8, 2, 6, 5}
	var txns []domain.Transaction
	for _, day := range order {
		txns = append(txns, txn(fmt.Sprintf("t%d", day), fmt.Sprintf("2024-01-%02d", day+1), "-1", "Food"))
	}

	got := LastN(txns, 3)
	assert.Equal(t, []string{"t7", "t8", "t9"}, ids(got))
}

func TestLastN_TiesKeepInputOrder(t *testing.T) {
	txns := []domain.Transaction{
		txn("a", "2024-01-02", "-1", "Food"),
		txn("b", "2024-01-03", "-1", "Food"),
		txn("c", "2024-01-03", "-1", "Food"),
		txn("d", "2024-01-01", "-1", "Food"),
		txn("e", "2024-01-03", "-1", "Food"),
	}
	assert.Equal(t, []string{"c", "e"}, ids(LastN(txns, 2)))
	assert.Equal(t, []string{"b", "c", "e"}, ids(LastN(txns, 3)))
}

func TestLastN_Bounds(t *testing.T) {
	txns := []domain.Transaction{
		txn("a", "2024-01-02", "-1", "Food"),
		txn("b", "", "-1", "Food"),
	}
	assert.Equal(t, []string{"a", "b"}, ids(LastN(txns, 0)), "no window keeps input order")
	assert.Equal(t, []string{"b", "a"}, ids(LastN(txns, 10)), "undated sorts first")
	assert.Empty(t, LastN(nil, 3))

	LastN(txns, 1)
	assert.Equal(t, "a", txns[0].TransactionID, "input must not be reordered")
}

func TestLatestDate(t *testing.T) {
	_, ok := LatestDate([]domain.Transaction{txn("x", "garbage", "1", "")})
	assert.False(t, ok)

	latest, ok := LatestDate([]domain.Transaction{
		txn("a", "2024-02-01", "1", ""),
		txn("b", "2024-03-15", "1", ""),
		txn("c", "not-a-date", "1", ""),
	})
	assert.True(t, ok)
	assert.Equal(t, "b", latest.TransactionID)
}
