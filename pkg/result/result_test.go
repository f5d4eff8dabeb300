package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/narwhalmedia/catalog/pkg/result"
)

func TestNew_IsOK(t *testing.T) {
	r := result.New[result.Void]()

	assert.Equal(t, result.StatusOK, r.Status)
	assert.True(t, r.IsOK())
	assert.Empty(t, r.Events)
}

func TestAddEvent_RaisesStatus(t *testing.T) {
	r := result.New[int]()

	r.AddEvent(result.NewEvent(result.SeverityInfo, "INFO", "Info."))
	assert.Equal(t, result.StatusOK, r.Status)

	r.AddEvent(result.WarnEvent("WARN", "Warn."))
	assert.Equal(t, result.StatusWarn, r.Status)

	r.AddEvent(result.ErrorEvent("ERR", "Error."))
	assert.Equal(t, result.StatusError, r.Status)

	r.AddEvent(result.WarnEvent("WARN", "Warn."))
	assert.Equal(t, result.StatusError, r.Status, "warning must not lower an error")
	assert.Len(t, r.Events, 4)
}

func TestError(t *testing.T) {
	r := result.Error[string]("CHEAT_NOT_MOVABLE", "Cheat can't be moved up.")

	assert.True(t, r.IsError())
	assert.Equal(t, []result.Event{
		{Severity: result.SeverityError, Key: "CHEAT_NOT_MOVABLE", Message: "Cheat can't be moved up."},
	}, r.Events)
}

func TestMerge_KeepsOrderAndWorstStatus(t *testing.T) {
	dst := result.From[int](result.WarnEvent("A", "a"))
	src := result.From[result.Void](result.ErrorEvent("B", "b"), result.ErrorEvent("C", "c"))

	merged := result.Merge(dst, src)

	assert.Same(t, dst, merged)
	assert.Equal(t, result.StatusError, merged.Status)
	keys := make([]string, 0, len(merged.Events))
	for _, e := range merged.Events {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"A", "B", "C"}, keys)
}

func TestMerge_Nil(t *testing.T) {
	dst := result.Of(42)

	assert.Same(t, dst, result.Merge[int, result.Void](dst, nil))
	assert.Equal(t, 42, dst.Data)
}

func TestConvert(t *testing.T) {
	src := result.Error[result.Void]("MOVIE_NULL", "Movie mustn't be null.")

	converted := result.Convert[*int](src)

	assert.Equal(t, result.StatusError, converted.Status)
	assert.Nil(t, converted.Data)
	assert.Equal(t, src.Events, converted.Events)
}
