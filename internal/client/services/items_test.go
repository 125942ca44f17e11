package services

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/whattowear/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_FiltersAndSorts(t *testing.T) {
	now := time.Now()
	fc := &fakeClient{items: []models.Item{
		{ID: "a", Weather: "cold", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "b", Weather: "hot", CreatedAt: now.Add(-time.Hour)},
		{ID: "c", Weather: "cold", CreatedAt: now},
	}}
	svc := NewItemService(fc, nil)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)

	cold, err := svc.List(context.Background(), "cold")
	require.NoError(t, err)
	require.Len(t, cold, 2)
	assert.Equal(t, []string{"c", "a"}, []string{cold[0].ID, cold[1].ID})
}

func TestList_UnknownWeather(t *testing.T) {
	_, err := NewItemService(&fakeClient{}, nil).List(context.Background(), "mild")
	require.Error(t, err)
}

func TestList_ClientError(t *testing.T) {
	fc := &fakeClient{listErr: errors.New("boom")}
	_, err := NewItemService(fc, nil).List(context.Background(), "")
	require.Error(t, err)
}

func TestLikeUnlikeDelete_PassID(t *testing.T) {
	fc := &fakeClient{}
	svc := NewItemService(fc, nil)
	ctx := context.Background()

	it, err := svc.Like(ctx, "i1")
	require.NoError(t, err)
	assert.True(t, it.LikedBy("u1"))

	it, err = svc.Unlike(ctx, "i2")
	require.NoError(t, err)
	assert.Empty(t, it.Likes)
	assert.Equal(t, "i2", fc.lastID)

	_, err = svc.Delete(ctx, "i3")
	require.NoError(t, err)
	assert.Equal(t, "i3", fc.lastID)
}

func TestUploadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coat.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpegbytes"), 0o600))

	fc := &fakeClient{presign: &models.ImageUpload{UploadURL: "http://s3/put", ImageURL: "http://cdn/coat"}}

	var gotURL, gotCT string
	var gotData []byte
	orig := uploadToPresignedURL
	uploadToPresignedURL = func(_ context.Context, _ *http.Client, url string, file []byte, ct string) error {
		gotURL, gotData, gotCT = url, file, ct
		return nil
	}
	defer func() { uploadToPresignedURL = orig }()

	imageURL, err := NewItemService(fc, nil).UploadImage(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/coat", imageURL)
	assert.Equal(t, "http://s3/put", gotURL)
	assert.Equal(t, "image/jpeg", gotCT)
	assert.Equal(t, []byte("jpegbytes"), gotData)
}

func TestUploadImage_Errors(t *testing.T) {
	svc := NewItemService(&fakeClient{presignErr: errors.New("disabled")}, nil)

	_, err := svc.UploadImage(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)

	_, err = svc.UploadImage(context.Background(), t.TempDir())
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	_, err = svc.UploadImage(context.Background(), path)
	require.EqualError(t, err, "disabled")
}
