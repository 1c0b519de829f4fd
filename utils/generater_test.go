package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderReference(t *testing.T) {
	ref := GenerateOrderReference()
	assert.True(t, strings.HasPrefix(ref, "CMD-"))
	assert.Len(t, ref, 12)

	// References are random; two in a row should differ
	assert.NotEqual(t, ref, GenerateOrderReference())
}

func TestGeneratePaymentReference(t *testing.T) {
	ref := GeneratePaymentReference()
	assert.True(t, strings.HasPrefix(ref, "PAY-"))
	assert.Len(t, ref, 12)
	assert.Equal(t, strings.ToUpper(ref), ref)
}
