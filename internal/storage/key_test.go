package storage

import (
	"testing"

	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	owner := entity.NewRef(entity.TypeServiceOrder, 5)
	assert.Equal(t, "service_order/5/abc.pdf", ObjectKey(owner, "abc", "Report.PDF"))
	assert.Equal(t, "service_order/5/abc", ObjectKey(owner, "abc", "README"))
}
