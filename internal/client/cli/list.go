package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) ListFiles(ctx context.Context, ideaID string) {
	grouped, err := a.api.ListFiles(ctx, ideaID)
	if err != nil {
		log.Printf("List unsuccessful: %s", err.Error())
		return
	}

	if len(grouped) == 0 {
		fmt.Println("No files")
		return
	}
	for category, files := range grouped {
		fmt.Printf("%s:\n", category)
		for _, f := range files {
			visibility := "public"
			if f.IsPrivate {
				visibility = "private"
			}
			fmt.Printf("  %s  %-40s  %s\n", f.ID, f.DisplayName, visibility)
		}
	}
}

func (a *App) ListImages(ctx context.Context, ideaID string) {
	images, err := a.api.ListImages(ctx, ideaID)
	if err != nil {
		log.Printf("List unsuccessful: %s", err.Error())
		return
	}

	if len(images) == 0 {
		fmt.Println("No images")
		return
	}
	for _, img := range images {
		visibility := "public"
		if img.IsPrivate {
			visibility = "private"
		}
		fmt.Printf("%s  %-40s  %8d bytes  %s\n", img.ID, img.FileName, img.SizeInBytes, visibility)
	}
}
