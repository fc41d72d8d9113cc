package harvest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// taxonomyServer serves a small ISCED-F-shaped taxonomy:
//
//	scheme -> top -> 06 (no children)
//	              -> 07 -> 071 -> 0711, 0712
//
// The document for 071 also reasserts 071 as its own broader target, which
// the builder must skip.
func taxonomyServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		base := "http://" + r.Host
		docs := map[string]string{
			"/scheme": fmt.Sprintf(`{"@graph": [
				{"@id": "%[1]s/scheme", "skos:hasTopConcept": [{"@id": "%[1]s/top"}]}
			]}`, base),
			"/top": fmt.Sprintf(`{"@graph": [
				{"@id": "%[1]s/top", "skos:prefLabel": [
					{"@language": "en", "@value": "Fields of study"},
					{"@language": "fr", "@value": "Domaines d'études"}
				]},
				{"@id": "%[1]s/c07", "skos:topConceptOf": [{"@id": "%[1]s/scheme"}]},
				{"@id": "%[1]s/c06", "skos:topConceptOf": [{"@id": "%[1]s/scheme"}]}
			]}`, base),
			"/c06": fmt.Sprintf(`{"@graph": [
				{"@id": "%[1]s/c06", "skos:notation": [{"@value": "06"}], "skos:prefLabel": [
					{"@language": "en", "@value": "Information and Communication Technologies"}
				]}
			]}`, base),
			"/c07": fmt.Sprintf(`{"@graph": [
				{"@id": "%[1]s/c07", "skos:notation": [{"@value": "07"}], "skos:prefLabel": [
					{"@language": "en", "@value": "Engineering"},
					{"@language": "fr", "@value": "Ingénierie"}
				]},
				{"@id": "%[1]s/c071", "skos:broader": [{"@id": "%[1]s/c07"}]}
			]}`, base),
			"/c071": fmt.Sprintf(`{"@graph": [
				{"@id": "%[1]s/c071", "skos:notation": [{"@value": "071"}],
				 "skos:broader": [{"@id": "%[1]s/c07"}, {"@id": "%[1]s/c071"}],
				 "skos:prefLabel": [{"@language": "en", "@value": "Engineering trades"}]},
				{"@id": "%[1]s/c0712", "skos:broader": [{"@id": "%[1]s/c071"}]},
				{"@id": "%[1]s/c0711", "skos:broader": [{"@id": "%[1]s/c071"}]}
			]}`, base),
			"/c0711": fmt.Sprintf(`{"@graph": [
				{"@id": "%[1]s/c0711", "skos:notation": [{"@value": "0711"}], "skos:prefLabel": [
					{"@language": "en", "@value": "Chemical engineering"}
				]}
			]}`, base),
			"/c0712": fmt.Sprintf(`{"@graph": [
				{"@id": "%[1]s/c0712", "skos:notation": [{"@value": "0712"}], "skos:prefLabel": [
					{"@language": "en", "@value": "Environmental protection technology"}
				]}
			]}`, base),
		}
		doc, ok := docs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/ld+json")
		_, _ = w.Write([]byte(doc))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBuilder_Build(t *testing.T) {
	srv := taxonomyServer(t)
	client := NewClient(ClientConfig{}, nil)
	builder := NewBuilder(client, srv.URL+"/scheme", nil)

	tree, err := builder.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Fields of study", tree.Labels["en"])
	assert.Equal(t, []string{"06", "07"}, tree.BroadCodes())

	broad := tree.Broad["07"]
	require.NotNil(t, broad)
	assert.Equal(t, "Engineering", broad.Labels["en"])
	assert.Equal(t, []string{"071"}, broad.NarrowCodes())

	narrow := broad.Narrow["071"]
	require.NotNil(t, narrow)
	assert.Equal(t, []string{"0711", "0712"}, narrow.DetailedCodes())
	assert.Equal(t, "Chemical engineering", narrow.Detailed["0711"].Labels["en"])

	assert.Empty(t, tree.Broad["06"].Narrow)
}

func TestBuilder_SelfLoopExcluded(t *testing.T) {
	srv := taxonomyServer(t)
	client := NewClient(ClientConfig{}, nil)
	builder := NewBuilder(client, srv.URL+"/scheme", nil)

	tree, err := builder.Build(context.Background())
	require.NoError(t, err)

	// c071 asserts itself as its own broader target; it must not appear
	// among its own detailed children.
	narrow := tree.Broad["07"].Narrow["071"]
	assert.NotContains(t, narrow.DetailedCodes(), "071")
}

func TestBuilder_OneFetchPerNode(t *testing.T) {
	srv := taxonomyServer(t)
	client := NewClient(ClientConfig{}, nil)
	builder := NewBuilder(client, srv.URL+"/scheme", nil)

	_, err := builder.Build(context.Background())
	require.NoError(t, err)

	// scheme + top + 2 broad + 1 narrow + 2 detailed; the self-loop
	// candidate costs no fetch.
	assert.Equal(t, int64(7), client.Fetches())

	stats := builder.Stats()
	assert.Equal(t, int64(7), stats.Fetches)
	assert.Equal(t, 2, stats.Broad)
	assert.Equal(t, 1, stats.Narrow)
	assert.Equal(t, 2, stats.Detailed)
}

func TestBuilder_FetchFailureAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		base := "http://" + r.Host
		switch r.URL.Path {
		case "/scheme":
			fmt.Fprintf(w, `{"@graph": [{"@id": "%[1]s/scheme", "skos:hasTopConcept": [{"@id": "%[1]s/top"}]}]}`, base)
		default:
			http.Error(w, "unavailable", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{}, nil)
	builder := NewBuilder(client, srv.URL+"/scheme", nil)

	_, err := builder.Build(context.Background())
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
}

func TestBuilder_MissingNotationAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		base := "http://" + r.Host
		switch r.URL.Path {
		case "/scheme":
			fmt.Fprintf(w, `{"@graph": [{"@id": "%[1]s/scheme", "skos:hasTopConcept": [{"@id": "%[1]s/top"}]}]}`, base)
		case "/top":
			fmt.Fprintf(w, `{"@graph": [
				{"@id": "%[1]s/top", "skos:prefLabel": [{"@language": "en", "@value": "Fields"}]},
				{"@id": "%[1]s/bad", "skos:topConceptOf": [{"@id": "%[1]s/scheme"}]}
			]}`, base)
		case "/bad":
			fmt.Fprintf(w, `{"@graph": [{"@id": "%[1]s/bad", "skos:prefLabel": [{"@language": "en", "@value": "No code"}]}]}`, base)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{}, nil)
	builder := NewBuilder(client, srv.URL+"/scheme", nil)

	_, err := builder.Build(context.Background())
	var propErr *MissingPropertyError
	require.True(t, errors.As(err, &propErr))
}
