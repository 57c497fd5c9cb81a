package enrichers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"prospect-finder/internal/common/logging"
	"prospect-finder/internal/models"
)

type call struct {
	lookup     string
	identifier string
}

type fakeLookups struct {
	mu    sync.Mutex
	calls []call

	profiles  map[string]models.Entity
	posts     map[string][]interface{}
	reactions map[string][]interface{}
	emails    map[string][]interface{}
}

func (f *fakeLookups) record(lookup, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{lookup, id})
}

func (f *fakeLookups) callsFor(lookup string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for _, c := range f.calls {
		if c.lookup == lookup {
			ids = append(ids, c.identifier)
		}
	}
	return ids
}

func (f *fakeLookups) GetProfile(ctx context.Context, id string) (models.Entity, error) {
	f.record("profile", id)
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("profile %s not found", id)
}

func (f *fakeLookups) GetUserPosts(ctx context.Context, id string) ([]interface{}, error) {
	f.record("posts", id)
	if p, ok := f.posts[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("posts %s not found", id)
}

func (f *fakeLookups) GetUserReactions(ctx context.Context, id string) ([]interface{}, error) {
	f.record("reactions", id)
	if r, ok := f.reactions[id]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("reactions %s not found", id)
}

func (f *fakeLookups) GetEmailUser(ctx context.Context, email string) ([]interface{}, error) {
	f.record("email", email)
	if e, ok := f.emails[email]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("email %s not found", email)
}

func testLogger(t *testing.T, out io.Writer) logging.Logger {
	t.Helper()
	logger, err := logging.NewZapLogger(logging.LogConfig{Level: logging.DebugLevel, Output: out})
	require.NoError(t, err)
	return logger
}

func jdoe() models.Entity {
	return models.Entity{
		"name":  "Jane Doe",
		"alias": "jdoe",
		"url":   "https://www.linkedin.com/in/jdoe",
		"urn":   map[string]interface{}{"type": "fsd_profile", "value": "ACoAAB"},
	}
}

func TestEnrich_FallsBackAcrossIdentifiers(t *testing.T) {
	lookups := &fakeLookups{
		profiles:  map[string]models.Entity{"jdoe": {"skills": []interface{}{"Go"}}},
		posts:     map[string][]interface{}{"fsd_profile:ACoAAB": {"post"}},
		reactions: map[string][]interface{}{},
	}
	var buf bytes.Buffer
	enricher := NewEnricher(lookups, WithLogger(testLogger(t, &buf)))

	bundle := enricher.Enrich(context.Background(), jdoe())

	assert.Equal(t, models.Entity{"skills": []interface{}{"Go"}}, bundle.DetailedProfile)
	assert.Equal(t, []interface{}{"post"}, bundle.Posts)
	assert.Nil(t, bundle.Reactions)
	assert.Nil(t, bundle.EmailInfo)

	assert.Equal(t, []string{"jdoe"}, lookups.callsFor("profile"))
	assert.Equal(t, []string{"jdoe", "https://www.linkedin.com/in/jdoe", "fsd_profile:ACoAAB"}, lookups.callsFor("posts"))
	assert.Len(t, lookups.callsFor("reactions"), 4)
	assert.Empty(t, lookups.callsFor("email"))

	assert.Contains(t, buf.String(), "Enrichment lookup failed")
}

func TestEnrich_EmailLookup(t *testing.T) {
	entity := jdoe()
	entity["email"] = "jane@example.com"

	lookups := &fakeLookups{
		emails: map[string][]interface{}{
			"jane@example.com": {map[string]interface{}{"email": "jane@example.com", "phone": "+33 1"}},
		},
	}
	var buf bytes.Buffer
	bundle := NewEnricher(lookups, WithLogger(testLogger(t, &buf))).Enrich(context.Background(), entity)

	assert.Len(t, bundle.EmailInfo, 1)
	assert.Equal(t, []string{"jane@example.com"}, lookups.callsFor("email"))
}

func TestEnrich_EmailAddressDoesNotTriggerLookup(t *testing.T) {
	entity := jdoe()
	entity["emailAddress"] = "jane@example.com"

	lookups := &fakeLookups{}
	var buf bytes.Buffer
	NewEnricher(lookups, WithLogger(testLogger(t, &buf))).Enrich(context.Background(), entity)

	assert.Empty(t, lookups.callsFor("email"))
}

func TestEnrich_NoIdentifiers(t *testing.T) {
	lookups := &fakeLookups{}
	var buf bytes.Buffer
	bundle := NewEnricher(lookups, WithLogger(testLogger(t, &buf))).Enrich(context.Background(), models.Entity{"name": "X"})

	assert.False(t, bundle.HasDetailedData())
	assert.Empty(t, lookups.calls)
}

func TestEnrich_ConcurrentMatchesSequential(t *testing.T) {
	entity := jdoe()
	entity["email"] = "jane@example.com"

	newLookups := func() *fakeLookups {
		return &fakeLookups{
			profiles:  map[string]models.Entity{"ACoAAB": {"experience": []interface{}{"Acme"}}},
			posts:     map[string][]interface{}{"jdoe": {}},
			reactions: map[string][]interface{}{"https://www.linkedin.com/in/jdoe": {"like"}},
			emails:    map[string][]interface{}{"jane@example.com": {}},
		}
	}

	logger := testLogger(t, io.Discard)
	sequential := NewEnricher(newLookups(), WithLogger(logger)).Enrich(context.Background(), entity)
	concurrent := NewEnricher(newLookups(), WithLogger(logger), WithConcurrency(true)).Enrich(context.Background(), entity)

	assert.Equal(t, sequential, concurrent)
	assert.NotNil(t, concurrent.Posts)
	assert.Empty(t, concurrent.Posts)
}
