package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerRegistradoYValido(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))
	assert.Equal(t, "2.0", spec["swagger"])

	paths, ok := spec["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/{family}/next-number")
	assert.Contains(t, paths, "/api/{family}-templates/{id}/item")
}
