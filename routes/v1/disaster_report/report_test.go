package disaster_report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFilter(t *testing.T) {
	assert.Nil(t, statusFilter(""))

	single := statusFilter("pending")
	assert.NotNil(t, single)
	assert.Equal(t, 1, single.Len())

	multi := statusFilter("pending,resolved")
	assert.NotNil(t, multi)
	assert.Equal(t, 1, multi.Len())
}
