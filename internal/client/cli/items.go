package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/whattowear/internal/client/models"
)

var errUsageID = errors.New("usage: <command> <item id>")

// Items lists items; an optional argument filters by weather.
func (a *App) Items(ctx context.Context, args []string) error {
	weather := ""
	if len(args) > 0 {
		weather = args[0]
	}

	list, err := a.itemService.List(ctx, weather)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		a.printf("No items\n")
		return nil
	}
	for _, it := range list {
		mark := " "
		if a.user != nil && it.LikedBy(a.user.ID) {
			mark = "*"
		}
		a.printf("%s %s\n", mark, it.String())
	}
	return nil
}

// Add prompts for a new item. An image answer starting with "@" is taken as
// a local file and uploaded first.
func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	weather, err := getSimpleText(a.reader, "Enter weather (cold, warm, hot)", a.out)
	if err != nil {
		return err
	}
	image, err := getSimpleText(a.reader, "Enter image URL (or @path to upload a file)", a.out)
	if err != nil {
		return err
	}

	if path, ok := strings.CutPrefix(image, "@"); ok {
		if image, err = a.itemService.UploadImage(ctx, path); err != nil {
			return err
		}
	}

	it, err := a.itemService.Create(ctx, models.NewItem{Name: name, Weather: weather, ImageURL: image})
	if err != nil {
		return err
	}

	a.printf("Added %s\n", it.ID)
	return nil
}

func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: upload <file>")
	}

	url, err := a.itemService.UploadImage(ctx, args[0])
	if err != nil {
		return err
	}

	a.printf("Uploaded: %s\n", url)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsageID
	}

	it, err := a.itemService.Delete(ctx, args[0])
	if err != nil {
		return err
	}

	a.printf("Deleted %s (%s)\n", it.ID, it.Name)
	return nil
}

func (a *App) Like(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsageID
	}

	it, err := a.itemService.Like(ctx, args[0])
	if err != nil {
		return err
	}

	a.printf("%s now has %d like(s)\n", it.ID, len(it.Likes))
	return nil
}

func (a *App) Unlike(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsageID
	}

	it, err := a.itemService.Unlike(ctx, args[0])
	if err != nil {
		return err
	}

	a.printf("%s now has %d like(s)\n", it.ID, len(it.Likes))
	return nil
}
