package cache

import (
	"context"
	"slices"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ecobudget_backend/internal/core/ports/repositories"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TransactionCache is a read-through cache in front of a transaction repository.
// Every analysis endpoint reloads the full document, so repeated reads within the
// TTL are served from memory. Appends drop the user's entry.
type TransactionCache struct {
	next portsrepo.TransactionRepositoryFacade
	lru  *expirable.LRU[string, []domain.Transaction]
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionCache)(nil)

// NewTransactionCache wraps next. size <= 0 means unbounded and ttl <= 0 means entries never expire.
func NewTransactionCache(next portsrepo.TransactionRepositoryFacade, size int, ttl time.Duration) *TransactionCache {
	return &TransactionCache{
		next: next,
		lru:  expirable.NewLRU[string, []domain.Transaction](size, nil, ttl),
	}
}

func (c *TransactionCache) LoadTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if cached, ok := c.lru.Get(userID); ok {
		return slices.Clone(cached), nil
	}

	txns, err := c.next.LoadTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.lru.Add(userID, slices.Clone(txns))
	return txns, nil
}

func (c *TransactionCache) AppendTransaction(ctx context.Context, userID string, txns ...domain.Transaction) (int, error) {
	c.lru.Remove(userID)
	count, err := c.next.AppendTransaction(ctx, userID, txns...)
	// a load racing the append may have re-populated the entry
	c.lru.Remove(userID)
	return count, err
}

// Invalidate drops the cached document of userID.
func (c *TransactionCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

// Len reports the number of cached users.
func (c *TransactionCache) Len() int {
	return c.lru.Len()
}
