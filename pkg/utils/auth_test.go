package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/workflow-go/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetUserIDFromContext(c)
	assert.Error(t, err)

	c.Set("claims", "not-claims")
	_, err = GetUserIDFromContext(c)
	assert.Error(t, err)

	c.Set("claims", &types.Claims{UserID: 7, Username: "dana"})
	id, err := GetUserIDFromContext(c)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), id)

	name, err := GetUserNameFromContext(c)
	assert.NoError(t, err)
	assert.Equal(t, "dana", name)
}
