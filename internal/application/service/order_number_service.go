package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"github.com/sangkips/abs-inventory-api/pkg/apperror"
)

const (
	orderNumberPrefix = "ORD"
	maxDailySequence  = 999
)

// NextOrderNumber is the advisory next number for a day
type NextOrderNumber struct {
	OrderNumber string `json:"order_number"`
	Date        string `json:"date"`
	Sequence    int    `json:"sequence"`
}

// OrderNumberService suggests ORD-YYYYMMDD-NNN numbers. The suggestion is not
// reserved; the unique index on order_number decides between racing creates.
type OrderNumberService struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
}

// NewOrderNumberService creates a new order number service
func NewOrderNumberService(orderRepo repository.OrderRepository) *OrderNumberService {
	return &OrderNumberService{orderRepo: orderRepo, now: time.Now}
}

// Next returns the next order number for today
func (s *OrderNumberService) Next(ctx context.Context) (*NextOrderNumber, error) {
	return s.NextFor(ctx, s.now())
}

// NextFor returns the next order number for the calendar day of date
func (s *OrderNumberService) NextFor(ctx context.Context, date time.Time) (*NextOrderNumber, error) {
	day := date.Format("20060102")
	prefix := fmt.Sprintf("%s-%s-", orderNumberPrefix, day)

	numbers, err := s.orderRepo.ListOrderNumbers(ctx, prefix)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	seq := nextSequence(prefix, numbers)
	if seq > maxDailySequence {
		return nil, apperror.ErrSequenceExhausted
	}

	return &NextOrderNumber{
		OrderNumber: fmt.Sprintf("%s%03d", prefix, seq),
		Date:        day,
		Sequence:    seq,
	}, nil
}

// nextSequence returns one more than the greatest numeric suffix after prefix.
// Suffixes that are not plain digits are ignored.
func nextSequence(prefix string, numbers []string) int {
	highest := 0
	for _, n := range numbers {
		suffix, ok := strings.CutPrefix(n, prefix)
		if !ok || suffix == "" {
			continue
		}
		v, err := strconv.Atoi(suffix)
		if err != nil || v < 0 {
			continue
		}
		if v > highest {
			highest = v
		}
	}
	return highest + 1
}
