package tree

import (
	"testing"

	"github.com/eaugeas/ordtree/errors"
	"github.com/stretchr/testify/assert"
)

func TestVerifyOK(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	assert.Nil(t, tree.Verify())
}

func TestVerifyRedRoot(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	tree.root.red = true

	assert.Equal(t, ErrCodeRedRoot, errors.Code(tree.Verify()))
}

func TestVerifyRedViolation(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	// 2 is red, make its child red as well
	tree.root.link[left].link[left].red = true

	assert.Equal(t, ErrCodeRedViolation, errors.Code(tree.Verify()))
}

func TestVerifyBlackHeight(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	tree.root.link[right].link[right].red = false

	assert.Equal(t, ErrCodeBlackHeight, errors.Code(tree.Verify()))
}

func TestVerifyParentLink(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	tree.root.link[right].parent = nil

	assert.Equal(t, ErrCodeParentLink, errors.Code(tree.Verify()))
}

func TestVerifyOrder(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	tree.root.value = 100

	assert.Equal(t, ErrCodeOrder, errors.Code(tree.Verify()))
}

func TestVerifyLen(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	tree.len++

	assert.Equal(t, ErrCodeLen, errors.Code(tree.Verify()))

	tree.Destroy()
	tree.len = 1
	assert.Equal(t, ErrCodeLen, errors.Code(tree.Verify()))
}

func TestHeight(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	assert.Equal(t, 4, tree.Height())
}
