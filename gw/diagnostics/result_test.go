package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapReturnsValueAndFlushesWarnings(t *testing.T) {
	warnings := NewWarningList(NewWarningDetail(WarnOutdatedVersion, "update available"))
	result := OkWith(42, warnings)

	sink := &recordingSink{}
	value := result.Unwrap(sink)

	assert.Equal(t, 42, value)
	require.Len(t, sink.warns, 1)
	assert.Equal(t, 0, warnings.Len())
	assert.Nil(t, sink.exitCode)
}

func TestUnwrapOnFailureDisplaysAndExits(t *testing.T) {
	result := Fail[int](NewError(KindConfigReading, "missing config"))

	sink := &recordingSink{}
	result.Unwrap(sink)

	require.Len(t, sink.errs, 1)
	assert.Contains(t, sink.errs[0], "missing config")
	require.NotNil(t, sink.exitCode)
	assert.Equal(t, 1, *sink.exitCode)
}

func TestResolveReturnsErrorWithoutTerminating(t *testing.T) {
	result := Fail[string](NewError(KindNetwork, "connection refused"))

	sink := &recordingSink{}
	value, failure := result.Resolve(sink)

	assert.Empty(t, value)
	require.NotNil(t, failure)
	assert.Equal(t, KindNetwork, failure.Kind)
	assert.Nil(t, sink.exitCode)
	assert.Empty(t, sink.errs)
}

func TestResolveSuccessDisplaysWarnings(t *testing.T) {
	result := OkWith("data", SingleWarning(NewWarning(WarnResourceExhaustion)))

	sink := &recordingSink{}
	value, failure := result.Resolve(sink)

	assert.Equal(t, "data", value)
	assert.Nil(t, failure)
	assert.Len(t, sink.warns, 1)
}

func TestIsOkIsErrDoNotConsume(t *testing.T) {
	ok := Ok(1)
	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())

	failed := Fail[int](NewError(KindGeneralError, "boom"))
	assert.False(t, failed.IsOk())
	assert.True(t, failed.IsErr())
}

func TestGetOkGetErrFlushWarnings(t *testing.T) {
	sink := &recordingSink{}

	value, ok := OkWith(7, SingleWarning(NewWarning(WarnGeneric))).GetOk(sink)
	require.True(t, ok)
	assert.Equal(t, 7, value)
	assert.Len(t, sink.warns, 1)

	failure := Fail[int](NewError(KindTimedOut, "slow")).GetErr(sink)
	require.NotNil(t, failure)
	assert.Equal(t, KindTimedOut, failure.Kind)

	_, ok = Fail[int](NewError(KindTimedOut, "slow")).GetOk(sink)
	assert.False(t, ok)

	assert.Nil(t, Ok(3).GetErr(sink))
}
