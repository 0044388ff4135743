package ecsig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrSigInvalidLen, "ErrSigInvalidLen"},
		{ErrSigInvalidHex, "ErrSigInvalidHex"},
		{ErrSigRIsZero, "ErrSigRIsZero"},
		{ErrSigRTooBig, "ErrSigRTooBig"},
		{ErrSigSIsZero, "ErrSigSIsZero"},
		{ErrSigSTooBig, "ErrSigSTooBig"},
		{ErrPrivateScalarInvalid, "ErrPrivateScalarInvalid"},
		{ErrRandomSource, "ErrRandomSource"},
		{ErrAttemptsExhausted, "ErrAttemptsExhausted"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, test.in.Error())
	}
}

func TestError(t *testing.T) {
	assert.Equal(t, "some error", Error{Description: "some error"}.Error())
	assert.Equal(t, "r is zero", makeError(ErrSigRIsZero, "r is zero").Error())
}

func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrSigRIsZero == ErrSigRIsZero",
		err:       ErrSigRIsZero,
		target:    ErrSigRIsZero,
		wantMatch: true,
		wantAs:    ErrSigRIsZero,
	}, {
		name:      "Error.ErrSigRIsZero == ErrSigRIsZero",
		err:       makeError(ErrSigRIsZero, ""),
		target:    ErrSigRIsZero,
		wantMatch: true,
		wantAs:    ErrSigRIsZero,
	}, {
		name:      "Error.ErrSigRIsZero == Error.ErrSigRIsZero",
		err:       makeError(ErrSigRIsZero, ""),
		target:    makeError(ErrSigRIsZero, ""),
		wantMatch: true,
		wantAs:    ErrSigRIsZero,
	}, {
		name:      "ErrSigSTooBig != ErrSigRTooBig",
		err:       ErrSigSTooBig,
		target:    ErrSigRTooBig,
		wantMatch: false,
		wantAs:    ErrSigSTooBig,
	}, {
		name:      "Error.ErrAttemptsExhausted != ErrRandomSource",
		err:       makeError(ErrAttemptsExhausted, ""),
		target:    ErrRandomSource,
		wantMatch: false,
		wantAs:    ErrAttemptsExhausted,
	}, {
		name:      "Error.ErrSigInvalidHex != Error.ErrSigInvalidLen",
		err:       makeError(ErrSigInvalidHex, ""),
		target:    makeError(ErrSigInvalidLen, ""),
		wantMatch: false,
		wantAs:    ErrSigInvalidHex,
	}}

	for _, test := range tests {
		assert.Equal(t, test.wantMatch, errors.Is(test.err, test.target), test.name)

		var kind ErrorKind
		if assert.True(t, errors.As(test.err, &kind), test.name) {
			assert.Equal(t, test.wantAs, kind, test.name)
		}
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("device unplugged")
	err := wrapError(ErrRandomSource, cause, "reading random bytes: device unplugged")

	assert.True(t, errors.Is(err, ErrRandomSource))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrAttemptsExhausted))

	var kind ErrorKind
	assert.True(t, errors.As(err, &kind))
	assert.Equal(t, ErrRandomSource, kind)
}
