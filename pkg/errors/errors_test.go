package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/pkg/errors"
)

func TestPredicates(t *testing.T) {
	assert.True(t, errors.IsNotFound(errors.NotFound("movie not found")))
	assert.True(t, errors.IsBadRequest(errors.BadRequest("bad")))
	assert.True(t, errors.IsConflict(errors.Conflict("dup")))
	assert.True(t, errors.IsInternal(errors.Internal("boom", stderrors.New("io"))))
	assert.False(t, errors.IsNotFound(stderrors.New("plain")))
	assert.False(t, errors.IsNotFound(nil))
}

func TestPredicates_Wrapped(t *testing.T) {
	err := fmt.Errorf("loading show: %w", errors.NotFoundf("show %d not found", 7))

	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "show 7 not found")
}

func TestFromDatabase(t *testing.T) {
	assert.NoError(t, errors.FromDatabase(nil, "movie"))

	notFound := errors.FromDatabase(gorm.ErrRecordNotFound, "movie")
	assert.True(t, errors.IsNotFound(notFound))
	assert.Equal(t, "NOT_FOUND: movie not found", notFound.Error())

	conflict := errors.FromDatabase(stderrors.New("UNIQUE constraint failed: genres.id"), "genre")
	assert.True(t, errors.IsConflict(conflict))

	internal := errors.FromDatabase(stderrors.New("connection reset"), "game")
	assert.True(t, errors.IsInternal(internal))

	typed := errors.BadRequest("refused")
	assert.Same(t, typed, errors.FromDatabase(typed, "game"))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, errors.IsDuplicateError(gorm.ErrDuplicatedKey))
	assert.True(t, errors.IsDuplicateError(stderrors.New(`ERROR: duplicate key value violates unique constraint "genres_pkey"`)))
	assert.False(t, errors.IsDuplicateError(stderrors.New("syntax error")))
	assert.False(t, errors.IsDuplicateError(nil))
}
