package census

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srharri3/pumsflow/internal/common"
	"github.com/srharri3/pumsflow/internal/model"
)

func TestDataURL(t *testing.T) {
	tests := []struct {
		name   string
		host   string
		apiKey string
		spec   model.QuerySpec
		want   string
	}{
		{
			name: "default spec",
			host: DefaultHost,
			spec: model.DefaultQuerySpec(),
			want: "https://api.census.gov/data/2022/acs/acs1/pums?get=AGEP,PWGTP,SEX&for=State:17",
		},
		{
			name: "weight appended when absent",
			host: DefaultHost,
			spec: model.QuerySpec{
				Year:            2015,
				NumericVars:     []string{"JWMNP"},
				CategoricalVars: []string{"SCHL"},
				GeoLevel:        model.GeoLevelState,
				GeoSubset:       []string{"06"},
			},
			want: "https://api.census.gov/data/2015/acs/acs1/pums?get=JWMNP,PWGTP,SCHL&for=State:06",
		},
		{
			name: "region level passes through",
			host: DefaultHost,
			spec: model.QuerySpec{
				Year:        2019,
				NumericVars: []string{"PWGTP"},
				GeoLevel:    model.GeoLevelRegion,
				GeoSubset:   []string{"1", "2"},
			},
			want: "https://api.census.gov/data/2019/acs/acs1/pums?get=PWGTP&for=Region:1,2",
		},
		{
			name:   "api key appended last",
			host:   "http://localhost:9999",
			apiKey: "secret",
			spec: model.QuerySpec{
				Year:        2022,
				NumericVars: []string{"PWGTP"},
				GeoLevel:    model.GeoLevelAll,
				GeoSubset:   []string{"17"},
			},
			want: "http://localhost:9999/data/2022/acs/acs1/pums?get=PWGTP&for=State:17&key=secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DataURL(tt.host, tt.apiKey, tt.spec))
		})
	}
}

func TestDictionaryURL(t *testing.T) {
	got := DictionaryURL(DefaultHost, "JWAP", 2021)
	assert.Equal(t, "https://api.census.gov/data/2021/acs/acs1/pums/variables/JWAP.json", got)
}

func TestClient_Rows(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[["AGEP","PWGTP","SEX","state"],["25","88","1","17"],["40","52","2","17"]]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	table, err := client.Rows(context.Background(), model.DefaultQuerySpec())
	require.NoError(t, err)

	assert.Equal(t, "/data/2022/acs/acs1/pums", gotPath)
	assert.Equal(t, "get=AGEP,PWGTP,SEX&for=State:17", gotQuery)

	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"AGEP", "PWGTP", "SEX", "state"}, table.Header())
	assert.Equal(t, []string{"40", "52", "2", "17"}, table.Rows[2])
	assert.Equal(t, -1, table.YearCol)
}

func TestClient_Rows_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no can do", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Rows(context.Background(), model.DefaultQuerySpec())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "no can do")
}

func TestClient_Rows_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Rows(context.Background(), model.DefaultQuerySpec())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrRateLimit))
}

func TestClient_Rows_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Rows(context.Background(), model.DefaultQuerySpec())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_Dictionary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2022/acs/acs1/pums/variables/SEX.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"label":"Sex","values":{"item":{"1":"Male","2":"Female"}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	items, err := client.Dictionary(context.Background(), "SEX", 2022)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1": "Male", "2": "Female"}, items)
}

func TestClient_Dictionary_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Dictionary(context.Background(), "NOPE", 2022)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestClient_Dictionary_NoValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"label":"Age"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Dictionary(context.Background(), "AGEP", 2022)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestNewClient_DefaultHost(t *testing.T) {
	client := NewClient("", "")
	assert.Equal(t, DefaultHost, client.host)
}

func TestMockClient_Defaults(t *testing.T) {
	mock := NewMockClient()

	table, err := mock.Rows(context.Background(), model.DefaultQuerySpec())
	require.NoError(t, err)
	assert.Equal(t, []string{"AGEP", "PWGTP", "SEX", "state"}, table.Header())
	assert.Equal(t, 1, mock.RowsCallCount())

	_, err = mock.Dictionary(context.Background(), "SEX", 2022)
	require.NoError(t, err)
	assert.Equal(t, []DictionaryCall{{Var: "SEX", Year: 2022}}, mock.DictionaryCalls)

	mock.Reset()
	assert.Equal(t, 0, mock.RowsCallCount())
	assert.Equal(t, 0, mock.DictionaryCallCount())
}
