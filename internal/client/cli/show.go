package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/ooakt0/fyi-bolt-sub000/internal/client/transfer"
)

// Show resolves and presents a single object. Files get a fresh display URL
// printed for the browser; images are fetched through the bounded-retry
// retriever and saved locally, falling back to the placeholder on failure.
func (a *App) Show(ctx context.Context, kind, id string) {
	switch kind {
	case "file":
		url, err := a.api.FileDisplayURL(ctx, id)
		if err != nil {
			log.Printf("Resolve unsuccessful: %s", err.Error())
			return
		}
		fmt.Println(url)

	case "image":
		a.showImage(ctx, id)

	default:
		fmt.Println("Usage: show <file|image> <id>")
	}
}

func (a *App) showImage(ctx context.Context, id string) {
	ideaID, err := GetSimpleText(a.reader, "Enter idea id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	images, err := a.api.ListImages(ctx, ideaID)
	if err != nil {
		log.Printf("List unsuccessful: %s", err.Error())
		return
	}

	var storedURL, fileName string
	for _, img := range images {
		if img.ID == id {
			storedURL = img.ImageURL
			fileName = img.FileName
			break
		}
	}
	if storedURL == "" {
		fmt.Println("Image not found in that idea's gallery")
		return
	}

	r := transfer.NewRetriever(&imageResolver{api: a.api}, a.transport, a.logger)
	res := r.Fetch(ctx, id, storedURL)
	if res.Err != nil {
		fmt.Printf("Could not load image, showing %s\n", res.DisplayURL)
		return
	}

	out := path.Base(fileName)
	if out == "" || out == "." {
		out = id + ".img"
	}
	if err := os.WriteFile(out, res.Data, 0o600); err != nil {
		log.Printf("error saving image: %v", err)
		return
	}
	fmt.Printf("Saved %d bytes to %s\n", len(res.Data), out)
}
