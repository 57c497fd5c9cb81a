package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"prospect-finder/internal/common/errors"
)

func TestSearchUsers(t *testing.T) {
	t.Run("sends the search payload", func(t *testing.T) {
		var payload map[string]interface{}
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, SearchUsersEndpoint, r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			w.Write([]byte(`[{"name":"Jane Doe","alias":"jdoe"}]`))
		})

		results, err := client.SearchUsers(context.Background(), "Jane Doe")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "jdoe", results[0].String("alias"))

		assert.Equal(t, "Jane Doe", payload["keywords"])
		assert.Equal(t, float64(1), payload["count"])
		assert.Equal(t, float64(300), payload["timeout"])
	})

	t.Run("object response means no results", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[]}`))
		})

		results, err := client.SearchUsers(context.Background(), "x")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("non object items become nil entities", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[null, {"name":"B"}]`))
		})

		results, err := client.SearchUsers(context.Background(), "x")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Nil(t, results[0])
		assert.Equal(t, "B", results[1].String("name"))
	})

	t.Run("upstream failure is returned", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.SearchUsers(context.Background(), "x")
		assert.True(t, errors.IsType(err, errors.ErrTypeUpstream))
	})
}

func TestGetProfile(t *testing.T) {
	t.Run("requests experience, education and skills", func(t *testing.T) {
		var payload map[string]interface{}
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, GetProfileEndpoint, r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			w.Write([]byte(`{"experience":[{"company":"Acme"}]}`))
		})

		profile, err := client.GetProfile(context.Background(), "jdoe")
		require.NoError(t, err)
		assert.Len(t, profile.Array("experience"), 1)

		assert.Equal(t, map[string]interface{}{
			"user":            "jdoe",
			"with_experience": true,
			"with_education":  true,
			"with_skills":     true,
		}, payload)
	})

	t.Run("non object payload is a failure", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`null`))
		})

		profile, err := client.GetProfile(context.Background(), "jdoe")
		assert.Error(t, err)
		assert.Nil(t, profile)
	})
}

func TestActivityLookups(t *testing.T) {
	var paths []string
	var payloads []map[string]interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		paths = append(paths, r.URL.Path)
		payloads = append(payloads, payload)
		w.Write([]byte(`[{"id":1}]`))
	})

	posts, err := client.GetUserPosts(context.Background(), "urn:li:1")
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	reactions, err := client.GetUserReactions(context.Background(), "urn:li:1")
	require.NoError(t, err)
	assert.Len(t, reactions, 1)

	email, err := client.GetEmailUser(context.Background(), "j@x.com")
	require.NoError(t, err)
	assert.Len(t, email, 1)

	assert.Equal(t, []string{GetUserPostsEndpoint, GetUserReactionsEndpoint, GetEmailUserEndpoint}, paths)
	assert.Equal(t, map[string]interface{}{"urn": "urn:li:1", "count": float64(5)}, payloads[0])
	assert.Equal(t, map[string]interface{}{"urn": "urn:li:1", "count": float64(5)}, payloads[1])
	assert.Equal(t, map[string]interface{}{"email": "j@x.com", "count": float64(1)}, payloads[2])
}

func TestActivityLookups_NonArrayIsFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"posts":[]}`))
	})

	posts, err := client.GetUserPosts(context.Background(), "jdoe")
	assert.Error(t, err)
	assert.Nil(t, posts)
}
