package moddata_test

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"pot-portal/core/api/apitest"
	"pot-portal/core/storage/mocks"
	"pot-portal/feature/moddata"
	"pot-portal/feature/moddata/models"

	"github.com/klauspost/compress/zip"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const mobsJSON = `[{
  "friendlyName":"Blue Slime","netId":1,
  "entries":[{"scale":1.5,"prefix":"Giant","weight":0.2,"stats":{"level":5,"experience":40},"affixes":[{"name":"Tough"}],"requirements":"None"},
             {"prefix":"","weight":1,"stats":{"level":1,"experience":5},"affixes":[],"requirements":""}]
}]`

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestGetMobData(t *testing.T) {
	srv := apitest.NewServer(t).JSON(http.MethodGet, "ModData/Mobs", mobsJSON)
	svc := moddata.NewService(srv.Client(t), nil, "", zap.NewNop())

	mobs, err := svc.GetMobData(context.Background())
	require.NoError(t, err)
	require.Len(t, mobs, 1)
	require.Len(t, mobs[0].Entries, 2)

	giant := mobs[0].Entries[0]
	require.NotNil(t, giant.Scale)
	assert.Equal(t, 1.5, *giant.Scale)
	assert.Equal(t, "Tough", giant.Affixes[0].Name)
	assert.Nil(t, mobs[0].Entries[1].Scale)
	assert.Equal(t, []string{"1", "Blue Slime", "2"}, mobs.Table().Rows[0])
}

func TestExportMobData(t *testing.T) {
	archive := buildZip(t, map[string]string{"BlueSlime.json": `{"netId":1}`})
	srv := apitest.NewServer(t).Handle(http.MethodPost, "ModData/ExportMobs", apitest.Route{
		Body:        string(archive),
		ContentType: "application/zip",
	})
	svc := moddata.NewService(srv.Client(t), nil, "", zap.NewNop())

	blob, err := svc.ExportMobData(context.Background(), []models.MobData{{FriendlyName: "Blue Slime", NetID: 1}})
	require.NoError(t, err)
	assert.Equal(t, archive, blob)
	assert.JSONEq(t, `[{"friendlyName":"Blue Slime","netId":1,"entries":null}]`, srv.Last().Body)

	entries, err := moddata.ArchiveEntries(blob)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "BlueSlime.json", entries[0].Name)
	assert.Equal(t, uint64(len(`{"netId":1}`)), entries[0].Size)
}

func TestExportMobData_NilSendsEmptyArray(t *testing.T) {
	srv := apitest.NewServer(t).Handle(http.MethodPost, "ModData/ExportMobs", apitest.Route{ContentType: "application/zip"})
	svc := moddata.NewService(srv.Client(t), nil, "", zap.NewNop())

	_, err := svc.ExportMobData(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", srv.Last().Body)
}

func TestArchiveEntries_Invalid(t *testing.T) {
	_, err := moddata.ArchiveEntries([]byte("not a zip"))
	assert.ErrorContains(t, err, "invalid export archive")
}

func TestSaveExport_LocalFile(t *testing.T) {
	svc := moddata.NewService(nil, nil, "", zap.NewNop())
	dir := t.TempDir()

	t.Run("Directory", func(t *testing.T) {
		path, err := svc.SaveExport(context.Background(), []byte("zip"), moddata.Destination{Path: dir})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, moddata.ExportFileName), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "zip", string(data))
	})

	t.Run("ExplicitFile", func(t *testing.T) {
		target := filepath.Join(dir, "mobs-2026.zip")
		path, err := svc.SaveExport(context.Background(), []byte("zip"), moddata.Destination{Path: target})
		require.NoError(t, err)
		assert.Equal(t, target, path)
		assert.FileExists(t, target)
	})
}

func TestSaveExport_Object(t *testing.T) {
	store := new(mocks.Client)
	store.On("BucketExists", mock.Anything, "pot-portal").Return(true, nil)
	store.On("PutObject", mock.Anything, "pot-portal", "exports/mob_data.zip", mock.Anything, int64(3),
		minio.PutObjectOptions{ContentType: "application/zip"}).Return(minio.UploadInfo{}, nil)

	svc := moddata.NewService(nil, store, "pot-portal", zap.NewNop())
	location, err := svc.SaveExport(context.Background(), []byte("zip"), moddata.Destination{Object: "exports/mob_data.zip"})
	require.NoError(t, err)
	assert.Equal(t, "pot-portal/exports/mob_data.zip", location)
	store.AssertExpectations(t)
}

func TestSaveExport_ObjectWithoutStorage(t *testing.T) {
	svc := moddata.NewService(nil, nil, "", zap.NewNop())
	_, err := svc.SaveExport(context.Background(), []byte("zip"), moddata.Destination{Object: "x.zip"})
	assert.ErrorContains(t, err, "object storage is not configured")
}
