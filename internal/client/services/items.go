package services

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/dmitrijs2005/whattowear/internal/client/client"
	"github.com/dmitrijs2005/whattowear/internal/client/models"
	"github.com/dmitrijs2005/whattowear/internal/netx"
)

// maxImageBytes bounds files accepted by UploadImage.
const maxImageBytes = 10 << 20

var uploadToPresignedURL = netx.UploadToPresignedURL

// ItemService lists and changes clothing items.
type ItemService interface {
	List(ctx context.Context, weather string) ([]models.Item, error)
	Create(ctx context.Context, in models.NewItem) (*models.Item, error)
	UploadImage(ctx context.Context, path string) (string, error)
	Delete(ctx context.Context, id string) (*models.Item, error)
	Like(ctx context.Context, id string) (*models.Item, error)
	Unlike(ctx context.Context, id string) (*models.Item, error)
}

type itemService struct {
	client client.Client
	http   *http.Client
}

func NewItemService(c client.Client, httpClient *http.Client) ItemService {
	return &itemService{client: c, http: httpClient}
}

// List returns all items, filtered by weather when it is not empty, newest
// first.
func (s *itemService) List(ctx context.Context, weather string) ([]models.Item, error) {
	if weather != "" && !slices.Contains(models.Weathers, weather) {
		return nil, fmt.Errorf("unknown weather %q, want one of %v", weather, models.Weathers)
	}

	all, err := s.client.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	out := all[:0]
	for _, it := range all {
		if weather == "" || it.Weather == weather {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *itemService) Create(ctx context.Context, in models.NewItem) (*models.Item, error) {
	return s.client.CreateItem(ctx, in)
}

// UploadImage sends the file at path to object storage through a presigned
// URL and returns the public URL to store on an item.
func (s *itemService) UploadImage(ctx context.Context, path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() > maxImageBytes {
		return "", fmt.Errorf("%s is larger than %d bytes", path, maxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	up, err := s.client.PresignImage(ctx)
	if err != nil {
		return "", err
	}

	if err := uploadToPresignedURL(ctx, s.http, up.UploadURL, data, contentType(path, data)); err != nil {
		return "", err
	}
	return up.ImageURL, nil
}

func contentType(path string, data []byte) string {
	switch filepath.Ext(path) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	}
	return http.DetectContentType(data)
}

func (s *itemService) Delete(ctx context.Context, id string) (*models.Item, error) {
	return s.client.DeleteItem(ctx, id)
}

func (s *itemService) Like(ctx context.Context, id string) (*models.Item, error) {
	return s.client.LikeItem(ctx, id)
}

func (s *itemService) Unlike(ctx context.Context, id string) (*models.Item, error) {
	return s.client.UnlikeItem(ctx, id)
}
