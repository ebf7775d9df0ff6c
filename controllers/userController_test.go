package controllers_test

import (
	"net/http"
	"testing"

	"github.com/arukavina95/CityVoice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsersAdminOnly(t *testing.T) {
	r := setupRouter(t)
	citizen := createUser(t, "citizen", models.RoleCitizen)
	official := createUser(t, "official", models.RoleOfficial)
	admin := createUser(t, "admin", models.RoleAdministrator)

	anonymous := doRequest(t, r, "GET", "/api/users", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)

	asCitizen := doRequest(t, r, "GET", "/api/users", tokenFor(t, citizen), nil, "")
	assert.Equal(t, http.StatusForbidden, asCitizen.Code)

	asOfficial := doRequest(t, r, "GET", "/api/users", tokenFor(t, official), nil, "")
	assert.Equal(t, http.StatusForbidden, asOfficial.Code)

	asAdmin := doRequest(t, r, "GET", "/api/users", tokenFor(t, admin), nil, "")
	require.Equal(t, http.StatusOK, asAdmin.Code)

	list := decodeList(t, asAdmin)
	require.Len(t, list, 3)
	roleNames := map[string]string{}
	for _, u := range list {
		roleNames[u["username"].(string)] = u["roleName"].(string)
	}
	assert.Equal(t, string(models.RoleCitizen), roleNames["citizen"])
	assert.Equal(t, string(models.RoleOfficial), roleNames["official"])
	assert.Equal(t, string(models.RoleAdministrator), roleNames["admin"])
}

func TestGetUsersRejectsGarbageToken(t *testing.T) {
	r := setupRouter(t)
	createUser(t, "admin", models.RoleAdministrator)

	w := doRequest(t, r, "GET", "/api/users", "not-a-token", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
