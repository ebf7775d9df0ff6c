package controllers_test

import (
	"net/http"
	"testing"

	"github.com/arukavina95/CityVoice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatusesReturnsSeededSet(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, "GET", "/api/statuses", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	require.Len(t, list, 4)
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s["name"].(string))
	}
	assert.ElementsMatch(t, []string{
		models.StatusNew,
		models.StatusInProgress,
		models.StatusResolved,
		models.StatusRejected,
	}, names)
}

func TestGetProblemTypesReturnsSeededSet(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, "GET", "/api/problemtypes", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	assert.Len(t, list, 5)
}
