package errors

import (
	stderr "errors"
	"testing"

	"github.com/eaugeas/ordtree/logs"
	"github.com/stretchr/testify/assert"
)

func TestErrorNewf(t *testing.T) {
	err := Newf(3, "black height %d != %d", 2, 3)

	assert.Equal(t, 3, err.ErrorCode)
	assert.Equal(t, "black height 2 != 3", err.Error())
}

func TestErrorLog(t *testing.T) {
	fields := logs.MapFields{}

	New(1, "red root").Log(fields)

	assert.Equal(t, logs.MapFields{
		"error_code":  1,
		"description": "red root",
	}, fields)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, 5, Code(New(5, "")))
	assert.Equal(t, 0, Code(stderr.New("plain")))
	assert.Equal(t, 0, Code(nil))
}
