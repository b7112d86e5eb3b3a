package geodata_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"geodash/internal/geodata"
)

func writeZip(t *testing.T, path string, members map[string][]byte) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestFetchFileLocalPassthrough(t *testing.T) {
	f := geodata.NewFetcher(nil, zap.NewNop())
	path, err := f.FetchFile(context.Background(), "/data/districts.csv", t.TempDir(), "districts.csv")
	require.NoError(t, err)
	require.Equal(t, "/data/districts.csv", path)
}

func TestFetchFileDownloads(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("DISTRICT,Rate,Area,x,y\n"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	f := geodata.NewFetcher(ts.Client(), zap.NewNop())
	path, err := f.FetchFile(context.Background(), ts.URL+"/districts.csv", dir, "districts.csv")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "districts.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "DISTRICT,Rate,Area,x,y\n", string(data))
}

func TestFetchFileBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	f := geodata.NewFetcher(ts.Client(), zap.NewNop())
	_, err := f.FetchFile(context.Background(), ts.URL, t.TempDir(), "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status")
}

func TestExtractZipAndFindShapefile(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "boundary.zip")
	writeZip(t, archive, map[string][]byte{
		"regions/readme.txt":  []byte("boundary bundle"),
		"regions/regions.shp": []byte("shp bytes"),
		"regions/regions.dbf": []byte("dbf bytes"),
	})

	out := filepath.Join(dir, "out")
	require.NoError(t, geodata.ExtractZip(archive, out))

	shpPath, err := geodata.FindShapefile(out)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, "regions", "regions.shp"), shpPath)

	data, err := os.ReadFile(shpPath)
	require.NoError(t, err)
	require.Equal(t, "shp bytes", string(data))
}

func TestExtractZipRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "evil.zip")
	writeZip(t, archive, map[string][]byte{
		"../evil.txt": []byte("no"),
	})

	// Either archive/zip's insecure-path check or the explicit member
	// guard must refuse this; nothing may land outside the target dir.
	err := geodata.ExtractZip(archive, filepath.Join(dir, "out"))
	require.Error(t, err)
	require.NoFileExists(t, filepath.Join(dir, "evil.txt"))
}

func TestFindShapefileMissing(t *testing.T) {
	_, err := geodata.FindShapefile(t.TempDir())
	require.ErrorIs(t, err, geodata.ErrNoShapefile)
}

func TestLoadReportsMissingShapefileMember(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "districts.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("DISTRICT,Rate,Area,x,y\nPeace,1,2,3,4\n"), 0o644))
	archive := filepath.Join(dir, "boundary.zip")
	writeZip(t, archive, map[string][]byte{"readme.txt": []byte("no shapes here")})

	f := geodata.NewFetcher(nil, zap.NewNop())
	_, err := f.Load(context.Background(), geodata.Sources{
		DistrictCSV: csvPath,
		BoundaryZip: archive,
	})
	require.ErrorIs(t, err, geodata.ErrNoShapefile)
}

func TestLoadSurfacesDownloadFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	f := geodata.NewFetcher(ts.Client(), zap.NewNop())
	_, err := f.Load(context.Background(), geodata.Sources{
		DistrictCSV: ts.URL + "/districts.csv",
		BoundaryZip: ts.URL + "/boundary.zip",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "district table")
	require.False(t, errors.Is(err, geodata.ErrNoShapefile))
}
