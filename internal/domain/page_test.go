package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msomdec/gallery-db/internal/domain"
)

func TestNewPage_TotalPages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{total: 0, size: 3, want: 0},
		{total: 1, size: 3, want: 1},
		{total: 3, size: 3, want: 1},
		{total: 4, size: 3, want: 2},
		{total: 10, size: 1, want: 10},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.size), func(t *testing.T) {
			p := domain.NewPage([]int{}, domain.PageRequest{Page: 0, Size: tt.size}, tt.total)
			assert.Equal(t, tt.want, p.TotalPages)
		})
	}
}

func TestNewPage_NilContentIsEmpty(t *testing.T) {
	p := domain.NewPage[int](nil, domain.PageRequest{Page: 5, Size: 3}, 4)

	assert.NotNil(t, p.Content)
	assert.True(t, p.IsEmpty())
	assert.Equal(t, 5, p.Number)
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, int64(0), domain.PageRequest{Page: 0, Size: 3}.Offset())
	assert.Equal(t, int64(6), domain.PageRequest{Page: 2, Size: 3}.Offset())
}

func TestPageRequest_PastEnd(t *testing.T) {
	tests := []struct {
		name  string
		req   domain.PageRequest
		total int64
		want  bool
	}{
		{name: "empty set", req: domain.PageRequest{Page: 0, Size: 3}, total: 0, want: true},
		{name: "first page", req: domain.PageRequest{Page: 0, Size: 3}, total: 1, want: false},
		{name: "last partial page", req: domain.PageRequest{Page: 1, Size: 3}, total: 4, want: false},
		{name: "one past last", req: domain.PageRequest{Page: 2, Size: 3}, total: 4, want: true},
		{name: "huge page", req: domain.PageRequest{Page: 4611686018427387904, Size: 4}, total: 1, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.PastEnd(tt.total))
		})
	}
}

func TestValidationError_IsInvalidInput(t *testing.T) {
	err := domain.NewValidationError(map[string]error{
		"size": errors.New("must be no less than 1"),
		"page": errors.New("must be no less than 0"),
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, "validation error: page must be no less than 0, size must be no less than 1", err.Error())
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("upload: %w", &domain.StorageError{Op: "save gallery", Err: cause})

	var se *domain.StorageError
	assert.True(t, errors.As(err, &se))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "save gallery", se.Op)
}
